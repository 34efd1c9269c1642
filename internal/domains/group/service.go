package group

import (
	"context"
)

// Service is the business logic contract for groups.
type Service interface {
	Create(ctx context.Context, req CreateGroupRequest) (*Group, error)
	GetBySlug(ctx context.Context, slug string) (*Group, error)
	List(ctx context.Context) ([]*Group, error)
}
