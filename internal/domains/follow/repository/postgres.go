package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"openblog-backend/internal/domains/follow"
)

type postgresFollowRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFollowRepository(pool *pgxpool.Pool) follow.Repository {
	return &postgresFollowRepository{pool: pool}
}

// Create relies on the composite primary key: ON CONFLICT DO NOTHING
// makes the duplicate case a no-op in a single statement, so two
// concurrent follows of the same author never race into an error.
func (r *postgresFollowRepository) Create(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO follows (follower_id, author_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (follower_id, author_id) DO NOTHING
	`

	tag, err := r.pool.Exec(ctx, query, followerID, authorID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *postgresFollowRepository) Delete(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND author_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, followerID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *postgresFollowRepository) Exists(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM follows
			WHERE follower_id = $1 AND author_id = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, followerID, authorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

func (r *postgresFollowRepository) ListAuthorIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT author_id
		FROM follows
		WHERE follower_id = $1
	`

	rows, err := r.pool.Query(ctx, query, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed authors: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan author id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follows: %w", err)
	}

	return ids, nil
}
