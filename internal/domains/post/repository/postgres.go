package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"openblog-backend/internal/domains/post/model"
	"openblog-backend/pkg/cache"
	"openblog-backend/pkg/database"
	"openblog-backend/pkg/logger"
)

// Cache keys for the unfiltered (index) listing. Any post mutation
// invalidates the whole prefix.
const (
	indexListKeyPrefix = "posts:index:"
	indexCountKey      = "posts:index:count"
)

type postgresPostRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostgresPostRepository(pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) PostRepository {
	return &postgresPostRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

const postColumns = `
	p.id, p.author_id, p.group_id, p.text, p.image_key, p.created_at, p.updated_at,
	u.username,
	g.title, g.slug,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
`

const postJoins = `
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

// =====================================================
// CREATE
// =====================================================

func (r *postgresPostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (id, author_id, group_id, text, image_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.AuthorID,
		post.GroupID,
		post.Text,
		post.ImageKey,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	r.invalidateIndexCache(ctx)
	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `SELECT ` + postColumns + postJoins + ` WHERE p.id = $1`

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresPostRepository) Update(ctx context.Context, post *model.Post) error {
	query := `
		UPDATE posts
		SET text = $2, group_id = $3, image_key = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, post.ID, post.Text, post.GroupID, post.ImageKey)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	r.invalidateIndexCache(ctx)
	return nil
}

// =====================================================
// DELETE
// =====================================================

// Delete removes the post and its comments as one atomic unit.
func (r *postgresPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		if result.RowsAffected() == 0 {
			return model.ErrPostNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidateIndexCache(ctx)
	return nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresPostRepository) List(ctx context.Context, filter model.ListFilter, limit, offset int) ([]*model.Post, error) {
	cacheKey := ""
	if filter.IsEmpty() {
		cacheKey = fmt.Sprintf("%sl%d:o%d", indexListKeyPrefix, limit, offset)
		var cached []*model.Post
		if found, err := r.cache.Get(ctx, cacheKey, &cached); err != nil {
			logger.Warn("post index cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	where, args := buildFilter(filter)
	query := fmt.Sprintf(
		`SELECT %s %s %s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`,
		postColumns, postJoins, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	if cacheKey != "" {
		if err := r.cache.Set(ctx, cacheKey, posts, r.cacheTTL); err != nil {
			logger.Warn("post index cache write failed", err)
		}
	}

	return posts, nil
}

// =====================================================
// COUNT
// =====================================================

func (r *postgresPostRepository) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	if filter.IsEmpty() {
		var cached int
		if found, err := r.cache.Get(ctx, indexCountKey, &cached); err != nil {
			logger.Warn("post count cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	where, args := buildFilter(filter)
	query := `SELECT COUNT(*) FROM posts p ` + where

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	if filter.IsEmpty() {
		if err := r.cache.Set(ctx, indexCountKey, total, r.cacheTTL); err != nil {
			logger.Warn("post count cache write failed", err)
		}
	}

	return total, nil
}

// =====================================================
// HELPERS
// =====================================================

func buildFilter(filter model.ListFilter) (string, []interface{}) {
	where := "WHERE 1=1"
	args := []interface{}{}

	if filter.GroupID != nil {
		args = append(args, *filter.GroupID)
		where += fmt.Sprintf(" AND p.group_id = $%d", len(args))
	}

	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		where += fmt.Sprintf(" AND p.author_id = $%d", len(args))
	}

	if filter.AuthorIDs != nil {
		ids := make([]string, len(filter.AuthorIDs))
		for i, id := range filter.AuthorIDs {
			ids[i] = id.String()
		}
		args = append(args, pq.Array(ids))
		where += fmt.Sprintf(" AND p.author_id = ANY($%d)", len(args))
	}

	return where, args
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.GroupID,
		&post.Text,
		&post.ImageKey,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.AuthorUsername,
		&post.GroupTitle,
		&post.GroupSlug,
		&post.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Cache invalidation is event-driven: every mutation clears the index
// listing so feeds never serve a deleted or missing post. Failures are
// non-fatal, the short TTL is the backstop.
func (r *postgresPostRepository) invalidateIndexCache(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, indexListKeyPrefix+"*"); err != nil {
		logger.Warn("post index cache invalidation failed", err)
	}
}
