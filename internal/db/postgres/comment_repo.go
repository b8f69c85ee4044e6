package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Inkwell/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (content_id, actor_id, author_name, text, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		comment.ContentID, comment.ActorID, comment.AuthorName, comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	query := `
		SELECT id, content_id, actor_id, author_name, text, created_at
		FROM comments
		WHERE id = $1
	`

	var comment comments.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ContentID, &comment.ActorID,
		&comment.AuthorName, &comment.Text, &comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return &comment, nil
}

func (r *postgresCommentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// ListByContent returns the thread newest first, id descending on ties so
// insertion order breaks equal timestamps
func (r *postgresCommentRepo) ListByContent(ctx context.Context, contentID int64) ([]*comments.Comment, error) {
	query := `
		SELECT id, content_id, actor_id, author_name, text, created_at
		FROM comments
		WHERE content_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var thread []*comments.Comment
	for rows.Next() {
		var comment comments.Comment
		if err := rows.Scan(
			&comment.ID, &comment.ContentID, &comment.ActorID,
			&comment.AuthorName, &comment.Text, &comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		thread = append(thread, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comment rows: %w", err)
	}

	return thread, nil
}
