package feed

import (
	"context"

	"github.com/google/uuid"
)

// Service assembles read feeds out of the individual stores. It owns
// no data of its own.
type Service interface {
	// Index is the public front page: every post, newest first.
	Index(ctx context.Context, page int) (*PagedPosts, error)

	// Group lists a group's posts, newest first. Returns
	// group.ErrGroupNotFound for an unknown slug.
	Group(ctx context.Context, slug string, page int) (*GroupFeed, error)

	// Profile lists an author's posts with the viewer's follow state.
	// A nil viewerID means a guest. Returns user.ErrUserNotFound for
	// an unknown username.
	Profile(ctx context.Context, username string, viewerID *uuid.UUID, page int) (*ProfileFeed, error)

	// Personal lists posts by the authors the viewer follows, newest
	// first. A viewer following nobody gets an empty first page.
	Personal(ctx context.Context, viewerID uuid.UUID, page int) (*PagedPosts, error)

	// PostDetail returns one post with its comment thread. Returns
	// post model ErrPostNotFound for an unknown ID.
	PostDetail(ctx context.Context, postID uuid.UUID) (*PostDetail, error)
}
