package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Inkwell/internal/core/content"
	"Inkwell/internal/core/counters"
)

type postgresContentRepo struct {
	db *sql.DB
}

// NewContentRepository creates a new PostgreSQL content repository
// The returned repo also backs the counter reconciler (counters.Store) and
// the existence checks the ledger and thread store depend on
func NewContentRepository(db *sql.DB) *postgresContentRepo {
	return &postgresContentRepo{db: db}
}

// counterColumns whitelists the counter fields; the column name is spliced
// into SQL, so it must never come from user input unchecked
var counterColumns = map[counters.Field]string{
	counters.FieldViews:    "views_count",
	counters.FieldLikes:    "likes_count",
	counters.FieldComments: "comments_count",
}

func (r *postgresContentRepo) Create(ctx context.Context, item *content.ContentItem) error {
	query := `
		INSERT INTO content (title, body, author, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		item.Title, item.Body, item.Author, item.Category,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert content: %w", err)
	}

	return nil
}

func (r *postgresContentRepo) GetByID(ctx context.Context, id int64) (*content.ContentItem, error) {
	query := `
		SELECT id, title, body, author, category,
			views_count, likes_count, comments_count,
			created_at, updated_at
		FROM content
		WHERE id = $1
	`

	var item content.ContentItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Body, &item.Author, &item.Category,
		&item.ViewsCount, &item.LikesCount, &item.CommentsCount,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, content.ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content by id: %w", err)
	}

	return &item, nil
}

func (r *postgresContentRepo) List(ctx context.Context, limit, offset int) ([]*content.ContentItem, error) {
	query := `
		SELECT id, title, body, author, category,
			views_count, likes_count, comments_count,
			created_at, updated_at
		FROM content
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	defer rows.Close()

	var items []*content.ContentItem
	for rows.Next() {
		var item content.ContentItem
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Body, &item.Author, &item.Category,
			&item.ViewsCount, &item.LikesCount, &item.CommentsCount,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan content row: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate content rows: %w", err)
	}

	return items, nil
}

func (r *postgresContentRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count content: %w", err)
	}
	return total, nil
}

func (r *postgresContentRepo) Update(ctx context.Context, item *content.ContentItem) error {
	query := `
		UPDATE content
		SET title = $1, body = $2, author = $3, category = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		item.Title, item.Body, item.Author, item.Category, item.ID,
	).Scan(&item.UpdatedAt)
	if err == sql.ErrNoRows {
		return content.ErrContentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update content: %w", err)
	}

	return nil
}

// Delete removes the item; engagement facts and comments cascade via the
// schema's ON DELETE CASCADE
func (r *postgresContentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return content.ErrContentNotFound
	}

	return nil
}

func (r *postgresContentRepo) Stats(ctx context.Context) (*content.Stats, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(views_count), 0),
			COALESCE(SUM(likes_count), 0),
			COALESCE(SUM(comments_count), 0)
		FROM content
	`

	var stats content.Stats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalContents, &stats.TotalViews, &stats.TotalLikes, &stats.TotalComments,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate content stats: %w", err)
	}

	return &stats, nil
}

// ContentExists is the point check behind the ledger's and thread store's
// content validation
func (r *postgresContentRepo) ContentExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM content WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check content existence: %w", err)
	}
	return exists, nil
}

// IncrementCounter atomically adjusts one denormalized counter column
// A single conditional UPDATE at the storage layer: concurrent adjustments
// to the same item serialize on the row and never lose an update
func (r *postgresContentRepo) IncrementCounter(ctx context.Context, contentID int64, field counters.Field, delta int64) (int64, error) {
	column, ok := counterColumns[field]
	if !ok {
		return 0, fmt.Errorf("unknown counter field: %s", field)
	}

	// GREATEST guards the non-negative invariant against drift scenarios
	query := fmt.Sprintf(`
		UPDATE content
		SET %s = GREATEST(%s + $1, 0)
		WHERE id = $2
		RETURNING %s
	`, column, column, column)

	var value int64
	err := r.db.QueryRowContext(ctx, query, delta, contentID).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, counters.ErrContentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", column, err)
	}

	return value, nil
}

func (r *postgresContentRepo) GetCounter(ctx context.Context, contentID int64, field counters.Field) (int64, error) {
	column, ok := counterColumns[field]
	if !ok {
		return 0, fmt.Errorf("unknown counter field: %s", field)
	}

	var value int64
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM content WHERE id = $1`, column), contentID,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, counters.ErrContentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", column, err)
	}

	return value, nil
}

// RecomputeCounters rewrites every counter column from the source-of-truth
// row counts; run by the reconciliation sweep to heal drift
func (r *postgresContentRepo) RecomputeCounters(ctx context.Context) error {
	query := `
		UPDATE content c
		SET views_count = (
				SELECT COUNT(*) FROM engagement_facts f
				WHERE f.content_id = c.id AND f.kind = 'view'
			),
			likes_count = (
				SELECT COUNT(*) FROM engagement_facts f
				WHERE f.content_id = c.id AND f.kind = 'like'
			),
			comments_count = (
				SELECT COUNT(*) FROM comments m
				WHERE m.content_id = c.id
			)
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to recompute counters: %w", err)
	}
	return nil
}
