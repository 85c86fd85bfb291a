package app

import (
	"context"
	"time"

	"oceanquery/internal"
	"oceanquery/internal/errors"
	"oceanquery/ports"

	"github.com/google/uuid"
)

// DashboardService aggregates query-log activity for the dashboard view.
// Without a repository it serves the static baseline only.
type DashboardService struct {
	queries ports.QueryRepository // optional
	logger  *internal.Logger
}

// NewDashboardService creates a dashboard service. queries may be nil.
func NewDashboardService(queries ports.QueryRepository) *DashboardService {
	return &DashboardService{
		queries: queries,
		logger:  internal.NewDefaultLogger(),
	}
}

// DashboardStats are the headline numbers on the dashboard. Float-network
// figures come from the data platform, not the query log, and are static
// baseline values here.
type DashboardStats struct {
	TotalQueries    int     `json:"total_queries"`
	QueriesThisWeek int     `json:"queries_this_week"`
	ActiveFloats    int     `json:"active_floats"`
	AvgTemperature  float64 `json:"avg_temperature"`
	DataPoints      int     `json:"data_points"`
	Trend           float64 `json:"trend"`
}

// RecentQuery is one recent query-log entry for display.
type RecentQuery struct {
	Message   string    `json:"message"`
	Intent    string    `json:"intent"`
	Timestamp time.Time `json:"timestamp"`
}

// NamedCount is a name with a usage count.
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Dashboard is the full dashboard payload.
type Dashboard struct {
	Stats             DashboardStats `json:"stats"`
	RecentQueries     []RecentQuery  `json:"recent_queries"`
	PopularParameters []NamedCount   `json:"popular_parameters"`
	PopularRegions    []NamedCount   `json:"popular_regions"`
}

// Overview assembles the dashboard. Query-log numbers fill in when a
// repository is configured; repository errors degrade to the baseline with
// a log line rather than failing the dashboard.
func (s *DashboardService) Overview(ctx context.Context) *Dashboard {
	d := &Dashboard{
		Stats: DashboardStats{
			ActiveFloats:   3847,
			AvgTemperature: 18.2,
			DataPoints:     2100000,
			Trend:          1.2,
		},
		RecentQueries: []RecentQuery{},
		PopularParameters: []NamedCount{
			{Name: "Temperature", Count: 125},
			{Name: "Salinity", Count: 89},
			{Name: "Depth Profile", Count: 67},
			{Name: "Currents", Count: 45},
		},
		PopularRegions: []NamedCount{
			{Name: "North Atlantic", Count: 87},
			{Name: "Pacific Ocean", Count: 65},
			{Name: "Mediterranean", Count: 43},
			{Name: "Arctic Ocean", Count: 23},
		},
	}

	if s.queries == nil {
		return d
	}

	if total, err := s.queries.CountQueries(ctx); err != nil {
		s.logger.Warn("Dashboard count queries failed: %v", err)
	} else {
		d.Stats.TotalQueries = total
	}

	weekAgo := time.Now().UTC().Add(-7 * 24 * time.Hour)
	if count, err := s.queries.CountQueriesSince(ctx, weekAgo); err != nil {
		s.logger.Warn("Dashboard weekly count failed: %v", err)
	} else {
		d.Stats.QueriesThisWeek = count
	}

	if recent, err := s.queries.RecentQueries(ctx, 10); err != nil {
		s.logger.Warn("Dashboard recent queries failed: %v", err)
	} else {
		for _, rec := range recent {
			d.RecentQueries = append(d.RecentQueries, RecentQuery{
				Message:   rec.Message,
				Intent:    rec.Intent,
				Timestamp: rec.CreatedAt,
			})
		}
	}

	return d
}

// Analytics reports the intent distribution over the query log.
func (s *DashboardService) Analytics(ctx context.Context) ([]ports.IntentCount, error) {
	if s.queries == nil {
		return nil, errors.DatabaseError("persistence is not configured")
	}
	counts, err := s.queries.IntentCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load intent analytics")
	}
	return counts, nil
}

// SaveQuery bookmarks a query for a user.
func (s *DashboardService) SaveQuery(ctx context.Context, userID, text string) (*ports.SavedQuery, error) {
	if s.queries == nil {
		return nil, errors.DatabaseError("persistence is not configured")
	}
	if userID == "" {
		userID = "anonymous"
	}

	sq := ports.SavedQuery{
		ID:      uuid.New(),
		UserID:  userID,
		Query:   text,
		SavedAt: time.Now().UTC(),
	}
	if err := s.queries.SaveQuery(ctx, sq); err != nil {
		return nil, errors.Wrap(err, "failed to save query")
	}
	return &sq, nil
}

// SavedQueries lists a user's bookmarked queries, newest first.
func (s *DashboardService) SavedQueries(ctx context.Context, userID string) ([]ports.SavedQuery, error) {
	if s.queries == nil {
		return nil, errors.DatabaseError("persistence is not configured")
	}
	if userID == "" {
		userID = "anonymous"
	}
	saved, err := s.queries.SavedQueries(ctx, userID, 50)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load saved queries")
	}
	return saved, nil
}
