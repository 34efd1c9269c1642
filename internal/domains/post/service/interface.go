package service

import (
	"context"

	"github.com/google/uuid"

	"openblog-backend/internal/domains/post/model"
)

type ServiceInterface interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest) (*model.Post, error)
	UpdatePost(ctx context.Context, postID, editorID uuid.UUID, req model.UpdatePostRequest) (*model.Post, error)
	DeletePost(ctx context.Context, postID, editorID uuid.UUID) error
	UploadImage(ctx context.Context, data []byte, contentType string) (string, error)
}

// AttachmentStore is the binary attachment contract: bytes in, stable
// key out. MinIO satisfies it in production.
type AttachmentStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// ImageValidator checks and derives variants of an uploaded image.
type ImageValidator interface {
	ValidateImage(data []byte) error
	ProcessImage(data []byte) (map[string][]byte, error)
}
