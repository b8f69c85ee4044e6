package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Inkwell/internal/core/engagement"
)

type postgresEngagementRepo struct {
	db *sql.DB
}

// NewEngagementRepository creates a new PostgreSQL engagement ledger repository
func NewEngagementRepository(db *sql.DB) engagement.Repository {
	return &postgresEngagementRepo{db: db}
}

// CreateFact inserts an engagement fact unless one exists for the key
// The unique index on (content_id, actor_id, kind) is the dedup authority:
// concurrent duplicate inserts race on the constraint and exactly one wins.
// ON CONFLICT DO NOTHING returns no rows for the losers, reported as
// created=false rather than an error.
func (r *postgresEngagementRepo) CreateFact(ctx context.Context, fact *engagement.Fact) (bool, error) {
	query := `
		INSERT INTO engagement_facts (content_id, actor_id, kind, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (content_id, actor_id, kind) DO NOTHING
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		fact.ContentID, fact.ActorID, string(fact.Kind),
	).Scan(&fact.ID, &fact.CreatedAt)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert engagement fact: %w", err)
	}

	return true, nil
}

// DeleteFact removes the fact for the key if present
// Reported as deleted=false when another toggle already removed it
func (r *postgresEngagementRepo) DeleteFact(ctx context.Context, contentID int64, actorID string, kind engagement.Kind) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM engagement_facts WHERE content_id = $1 AND actor_id = $2 AND kind = $3`,
		contentID, actorID, string(kind),
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete engagement fact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresEngagementRepo) Exists(ctx context.Context, contentID int64, actorID string, kind engagement.Kind) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM engagement_facts
			WHERE content_id = $1 AND actor_id = $2 AND kind = $3
		)`,
		contentID, actorID, string(kind),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check engagement fact: %w", err)
	}
	return exists, nil
}

func (r *postgresEngagementRepo) CountByContent(ctx context.Context, contentID int64, kind engagement.Kind) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM engagement_facts WHERE content_id = $1 AND kind = $2`,
		contentID, string(kind),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count engagement facts: %w", err)
	}
	return count, nil
}
