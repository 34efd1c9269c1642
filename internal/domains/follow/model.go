package follow

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed subscription edge: the follower receives the
// author's posts in their personal feed. At most one edge exists per
// (follower, author) pair and a user can never follow themselves.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowResult reports whether a follow call created a new edge or
// found an existing one. Both outcomes are success.
type FollowResult struct {
	Created bool `json:"created"`
}

// UnfollowResult reports whether an unfollow call removed an edge.
// Removing a missing edge is not an error.
type UnfollowResult struct {
	Removed bool `json:"removed"`
}
