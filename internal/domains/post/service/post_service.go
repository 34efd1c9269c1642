package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"openblog-backend/internal/domains/group"
	"openblog-backend/internal/domains/post/model"
	"openblog-backend/internal/domains/post/repository"
)

type postService struct {
	postRepo  repository.PostRepository
	groupRepo group.Repository
	storage   AttachmentStore
	images    ImageValidator
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo group.Repository,
	storage AttachmentStore,
	images ImageValidator,
) ServiceInterface {
	return &postService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		storage:   storage,
		images:    images,
	}
}

// =====================================================
// CREATE POST
// =====================================================

func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkGroup(ctx, req.GroupID); err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		GroupID:   req.GroupID,
		Text:      strings.TrimSpace(req.Text),
		ImageKey:  req.ImageKey,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// =====================================================
// UPDATE POST
// =====================================================

func (s *postService) UpdatePost(ctx context.Context, postID, editorID uuid.UUID, req model.UpdatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	// Author and ID are immutable; any other editor is rejected.
	if post.AuthorID != editorID {
		return nil, model.NewNotAuthorError()
	}

	if req.Text != nil {
		post.Text = strings.TrimSpace(*req.Text)
	}
	if req.GroupID.Set {
		// Value nil means "clear the group"; otherwise validate the target.
		if err := s.checkGroup(ctx, req.GroupID.Value); err != nil {
			return nil, err
		}
		post.GroupID = req.GroupID.Value
	}
	if req.ImageKey.Set {
		post.ImageKey = req.ImageKey.Value
	}
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// =====================================================
// DELETE POST
// =====================================================

func (s *postService) DeletePost(ctx context.Context, postID, editorID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return model.NewPostNotFoundError()
		}
		return fmt.Errorf("failed to get post: %w", err)
	}

	if post.AuthorID != editorID {
		return model.NewNotAuthorError()
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	// Attachment cleanup is best effort: the post row is already gone.
	if post.ImageKey != nil {
		if err := s.storage.DeleteByPrefix(ctx, *post.ImageKey); err != nil {
			log.Warn().Err(err).Str("image_key", *post.ImageKey).Msg("failed to delete post attachments")
		}
	}

	return nil
}

func (s *postService) checkGroup(ctx context.Context, groupID *uuid.UUID) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			return group.ErrGroupNotFound
		}
		return fmt.Errorf("failed to check group: %w", err)
	}
	return nil
}

// =====================================================
// IMAGE UPLOAD
// =====================================================

// UploadImage validates the upload, stores resized variants and returns
// the stable key to reference as Post.ImageKey.
func (s *postService) UploadImage(ctx context.Context, data []byte, contentType string) (string, error) {
	if err := s.images.ValidateImage(data); err != nil {
		return "", model.NewInvalidImageError(err)
	}

	variants, err := s.images.ProcessImage(data)
	if err != nil {
		return "", model.NewInvalidImageError(err)
	}

	baseKey := fmt.Sprintf("posts/%s", uuid.New())
	for name, variant := range variants {
		key := fmt.Sprintf("%s/%s.jpg", baseKey, name)
		if err := s.storage.Upload(ctx, key, variant, "image/jpeg"); err != nil {
			return "", fmt.Errorf("failed to store image variant %s: %w", name, err)
		}
	}

	return baseKey, nil
}
