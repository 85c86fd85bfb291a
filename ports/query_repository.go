package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QueryRecord is one processed chat query in the query log.
type QueryRecord struct {
	ID                uuid.UUID `db:"id" json:"id"`
	UserID            string    `db:"user_id" json:"user_id"`
	Message           string    `db:"message" json:"message"`
	Intent            string    `db:"intent" json:"intent"`
	HasVisualizations bool      `db:"has_visualizations" json:"has_visualizations"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// SavedQuery is a query a user bookmarked for later reference.
type SavedQuery struct {
	ID      uuid.UUID `db:"id" json:"id"`
	UserID  string    `db:"user_id" json:"user_id"`
	Query   string    `db:"query" json:"query"`
	SavedAt time.Time `db:"saved_at" json:"saved_at"`
}

// IntentCount is an aggregate of logged queries per intent.
type IntentCount struct {
	Intent string `db:"intent" json:"intent"`
	Count  int    `db:"count" json:"count"`
}

// QueryRepository defines the persistence collaborator for the query log
// and saved queries. The core runs without one; persistence is optional.
type QueryRepository interface {
	RecordQuery(ctx context.Context, rec QueryRecord) error
	CountQueries(ctx context.Context) (int, error)
	CountQueriesSince(ctx context.Context, since time.Time) (int, error)
	RecentQueries(ctx context.Context, limit int) ([]QueryRecord, error)
	IntentCounts(ctx context.Context) ([]IntentCount, error)

	SaveQuery(ctx context.Context, sq SavedQuery) error
	SavedQueries(ctx context.Context, userID string, limit int) ([]SavedQuery, error)
}
