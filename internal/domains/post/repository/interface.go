package repository

import (
	"context"

	"github.com/google/uuid"

	"openblog-backend/internal/domains/post/model"
)

// PostRepository is the data access contract for posts. List and Count
// share the same filter so callers can paginate consistently.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.ListFilter, limit, offset int) ([]*model.Post, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
}
