package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"openblog-backend/internal/domains/comment"
	postmodel "openblog-backend/internal/domains/post/model"
	postrepo "openblog-backend/internal/domains/post/repository"
)

type commentService struct {
	commentRepo comment.Repository
	postRepo    postrepo.PostRepository
}

func NewCommentService(commentRepo comment.Repository, postRepo postrepo.PostRepository) comment.Service {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) Add(ctx context.Context, postID, authorID uuid.UUID, req comment.AddCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The post must exist; comments never dangle.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			return nil, postmodel.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	c := &comment.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Text:      strings.TrimSpace(req.Text),
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return c, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			return nil, postmodel.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return s.commentRepo.ListByPost(ctx, postID)
}
