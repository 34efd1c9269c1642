package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is an author's entry, optionally published into a group and
// optionally carrying an image attachment reference.
type Post struct {
	ID        uuid.UUID  `json:"id"`
	AuthorID  uuid.UUID  `json:"author_id"`
	GroupID   *uuid.UUID `json:"group_id,omitempty"`
	Text      string     `json:"text"`
	ImageKey  *string    `json:"image_key,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Filled by joins on read, not stored on the posts table.
	AuthorUsername string  `json:"author_username,omitempty"`
	GroupTitle     *string `json:"group_title,omitempty"`
	GroupSlug      *string `json:"group_slug,omitempty"`
	CommentCount   int     `json:"comment_count"`
}

// ListFilter restricts a post listing. Zero value means "all posts"
// (the index feed). AuthorIDs serves the personalized feed.
type ListFilter struct {
	GroupID   *uuid.UUID
	AuthorID  *uuid.UUID
	AuthorIDs []uuid.UUID
}

// IsEmpty reports whether the filter selects every post.
func (f ListFilter) IsEmpty() bool {
	return f.GroupID == nil && f.AuthorID == nil && f.AuthorIDs == nil
}
