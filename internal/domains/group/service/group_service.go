package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"openblog-backend/internal/domains/group"
	"openblog-backend/internal/shared/utils"
)

type groupService struct {
	groupRepo group.Repository
}

func NewGroupService(groupRepo group.Repository) group.Service {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) Create(ctx context.Context, req group.CreateGroupRequest) (*group.Group, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}
	// A title like "!!!" slugs to nothing and would squat the one
	// empty slug the unique index allows.
	if slug == "" {
		return nil, group.ErrInvalidSlug
	}

	g := &group.Group{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.groupRepo.Create(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*group.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *groupService) List(ctx context.Context) ([]*group.Group, error) {
	return s.groupRepo.List(ctx)
}
