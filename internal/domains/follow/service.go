package follow

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Follow subscribes the follower to the named author. Idempotent:
	// following an already-followed author succeeds with Created=false.
	// Returns ErrSelfFollow when the author is the follower, and
	// user.ErrUserNotFound when the username does not resolve.
	Follow(ctx context.Context, followerID uuid.UUID, authorUsername string) (*FollowResult, error)

	// Unfollow removes the subscription. Idempotent: unfollowing an
	// author who is not followed succeeds with Removed=false.
	Unfollow(ctx context.Context, followerID uuid.UUID, authorUsername string) (*UnfollowResult, error)

	IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)

	FollowedAuthors(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
}
