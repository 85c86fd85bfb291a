package postgres

import (
	"context"
	"time"

	"oceanquery/ports"

	"github.com/jmoiron/sqlx"
)

// QueryRepositoryImpl implements ports.QueryRepository for PostgreSQL
type QueryRepositoryImpl struct {
	db *sqlx.DB
}

// NewQueryRepository creates a new PostgreSQL query repository
func NewQueryRepository(db *sqlx.DB) ports.QueryRepository {
	return &QueryRepositoryImpl{db: db}
}

// RecordQuery appends one processed query to the query log
func (r *QueryRepositoryImpl) RecordQuery(ctx context.Context, rec ports.QueryRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO queries (id, user_id, message, intent, has_visualizations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.ID, rec.UserID, rec.Message, rec.Intent, rec.HasVisualizations, rec.CreatedAt)
	return err
}

// CountQueries returns the total number of logged queries
func (r *QueryRepositoryImpl) CountQueries(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM queries`)
	return count, err
}

// CountQueriesSince returns the number of queries logged after the cutoff
func (r *QueryRepositoryImpl) CountQueriesSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM queries WHERE created_at >= $1
	`, since)
	return count, err
}

// RecentQueries returns the newest log entries, newest first
func (r *QueryRepositoryImpl) RecentQueries(ctx context.Context, limit int) ([]ports.QueryRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	var records []ports.QueryRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, user_id, message, intent, has_visualizations, created_at
		FROM queries
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// IntentCounts aggregates logged queries per intent
func (r *QueryRepositoryImpl) IntentCounts(ctx context.Context) ([]ports.IntentCount, error) {
	var counts []ports.IntentCount
	err := r.db.SelectContext(ctx, &counts, `
		SELECT intent, COUNT(*) AS count
		FROM queries
		GROUP BY intent
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// SaveQuery bookmarks a query for a user
func (r *QueryRepositoryImpl) SaveQuery(ctx context.Context, sq ports.SavedQuery) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saved_queries (id, user_id, query, saved_at)
		VALUES ($1, $2, $3, $4)
	`, sq.ID, sq.UserID, sq.Query, sq.SavedAt)
	return err
}

// SavedQueries returns a user's bookmarks, newest first
func (r *QueryRepositoryImpl) SavedQueries(ctx context.Context, userID string, limit int) ([]ports.SavedQuery, error) {
	if limit <= 0 {
		limit = 50
	}

	var saved []ports.SavedQuery
	err := r.db.SelectContext(ctx, &saved, `
		SELECT id, user_id, query, saved_at
		FROM saved_queries
		WHERE user_id = $1
		ORDER BY saved_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	return saved, nil
}
