package repository

import (
	"context"

	"github.com/google/uuid"

	"openblog-backend/internal/domains/user/model"
)

// UserRepository is the data access contract for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
