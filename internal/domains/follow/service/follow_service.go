package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"openblog-backend/internal/domains/follow"
	usermodel "openblog-backend/internal/domains/user/model"
	userrepo "openblog-backend/internal/domains/user/repository"
)

type followService struct {
	followRepo follow.Repository
	userRepo   userrepo.UserRepository
}

func NewFollowService(followRepo follow.Repository, userRepo userrepo.UserRepository) follow.Service {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *followService) Follow(ctx context.Context, followerID uuid.UUID, authorUsername string) (*follow.FollowResult, error) {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return nil, err
	}

	if author.ID == followerID {
		return nil, follow.ErrSelfFollow
	}

	created, err := s.followRepo.Create(ctx, followerID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to follow author: %w", err)
	}

	return &follow.FollowResult{Created: created}, nil
}

func (s *followService) Unfollow(ctx context.Context, followerID uuid.UUID, authorUsername string) (*follow.UnfollowResult, error) {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return nil, err
	}

	removed, err := s.followRepo.Delete(ctx, followerID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to unfollow author: %w", err)
	}

	return &follow.UnfollowResult{Removed: removed}, nil
}

func (s *followService) IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, authorID)
}

func (s *followService) FollowedAuthors(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	return s.followRepo.ListAuthorIDs(ctx, followerID)
}

func (s *followService) resolveAuthor(ctx context.Context, username string) (*usermodel.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return nil, usermodel.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}
	return author, nil
}
