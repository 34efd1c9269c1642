package comment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	// ListByPost returns all comments on a post, oldest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error)
}
