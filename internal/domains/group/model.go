package group

import (
	"time"

	"github.com/google/uuid"
)

// Group is a topical community posts can be published into.
// Immutable after creation: there is no edit path.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
