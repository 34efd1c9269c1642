package follow

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create inserts the edge if it does not already exist. Returns
	// true when a new edge was created, false when it was already
	// there. Never errors on the duplicate case.
	Create(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)

	// Delete removes the edge. Returns true when an edge was removed,
	// false when there was nothing to remove.
	Delete(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)

	Exists(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)

	// ListAuthorIDs returns the IDs of every author the follower is
	// subscribed to.
	ListAuthorIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
}
