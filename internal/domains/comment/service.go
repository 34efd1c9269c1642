package comment

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Add attaches a new comment to an existing post. Returns
	// post.ErrPostNotFound when the post does not exist.
	Add(ctx context.Context, postID, authorID uuid.UUID, req AddCommentRequest) (*Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error)
}
