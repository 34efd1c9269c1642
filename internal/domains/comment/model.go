package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reader remark attached to a single post. Comments are
// append-only: once created they are never edited or removed on their
// own, only together with the post they belong to.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// Filled by joins when reading.
	AuthorUsername string `json:"author_username,omitempty"`
}
