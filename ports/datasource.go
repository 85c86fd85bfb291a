package ports

import (
	"context"

	"oceanquery/domain/ocean"
	"oceanquery/domain/query"
)

// DatasetRequest is the filter derived from an interpreted query.
type DatasetRequest struct {
	Parameters []query.Parameter
	Locations  []string
	TimeRange  *query.TimeRange
	Region     string
}

// DataSource supplies an ocean dataset for a filter. Implementations own
// their connection/session per call and must release it on every exit path;
// the context deadline bounds the fetch. Responses are structurally
// complete: empty arrays rather than absent ones.
type DataSource interface {
	FetchDataset(ctx context.Context, req DatasetRequest) (ocean.Dataset, error)
}
