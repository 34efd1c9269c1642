package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"openblog-backend/internal/domains/group"
)

type postgresGroupRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresGroupRepository(pool *pgxpool.Pool) group.Repository {
	return &postgresGroupRepository{pool: pool}
}

func (r *postgresGroupRepository) Create(ctx context.Context, g *group.Group) error {
	query := `
		INSERT INTO groups (id, title, slug, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, g.ID, g.Title, g.Slug, g.Description, g.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return group.ErrSlugTaken
		}
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*group.Group, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *postgresGroupRepository) GetBySlug(ctx context.Context, slug string) (*group.Group, error) {
	return r.getBy(ctx, "slug = $1", slug)
}

func (r *postgresGroupRepository) getBy(ctx context.Context, where string, arg interface{}) (*group.Group, error) {
	query := `
		SELECT id, title, slug, description, created_at
		FROM groups
		WHERE ` + where

	g := &group.Group{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&g.ID,
		&g.Title,
		&g.Slug,
		&g.Description,
		&g.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, group.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

func (r *postgresGroupRepository) List(ctx context.Context) ([]*group.Group, error) {
	query := `
		SELECT id, title, slug, description, created_at
		FROM groups
		ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*group.Group
	for rows.Next() {
		g := &group.Group{}
		if err := rows.Scan(&g.ID, &g.Title, &g.Slug, &g.Description, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}

	return groups, nil
}
