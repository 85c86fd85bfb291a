package app

import (
	"context"
	"time"

	"oceanquery/domain/ocean"
	"oceanquery/domain/query"
	"oceanquery/domain/viz"
	"oceanquery/internal"
	"oceanquery/internal/analysis"
	"oceanquery/internal/errors"
	"oceanquery/internal/interpret"
	"oceanquery/internal/respond"
	"oceanquery/internal/visualize"
	"oceanquery/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ChatService orchestrates the interpret → fetch → analyze → visualize
// pipeline for a single query. Request-scoped and stateless between
// requests; one shared instance serves all handlers.
type ChatService struct {
	interpreter  *interpret.Interpreter
	source       ports.DataSource
	engine       *analysis.Engine
	builder      *visualize.Builder
	composer     *respond.Composer
	queries      ports.QueryRepository // optional, nil disables the query log
	fetchTimeout time.Duration
	logger       *internal.Logger
}

// ChatResponse is the upward-facing result of one handled query.
type ChatResponse struct {
	Message        string       `json:"message"`
	Data           ocean.Result `json:"data"`
	Visualizations []viz.Spec   `json:"visualizations"`
	Suggestions    []string     `json:"suggestions"`
}

// NewChatService wires the pipeline. queries may be nil.
func NewChatService(
	interpreter *interpret.Interpreter,
	source ports.DataSource,
	engine *analysis.Engine,
	builder *visualize.Builder,
	composer *respond.Composer,
	queries ports.QueryRepository,
	fetchTimeout time.Duration,
) *ChatService {
	return &ChatService{
		interpreter:  interpreter,
		source:       source,
		engine:       engine,
		builder:      builder,
		composer:     composer,
		queries:      queries,
		fetchTimeout: fetchTimeout,
		logger:       internal.NewDefaultLogger(),
	}
}

// HandleQuery runs the full pipeline for one free-text query. The only
// error it returns is a typed fetch failure; everything downstream of the
// fetch degrades to defaults instead of failing.
func (s *ChatService) HandleQuery(ctx context.Context, text, userID string) (*ChatResponse, error) {
	intent, entities := s.interpreter.Interpret(text)
	s.logger.Info("Processing query: intent=%s parameters=%v locations=%v",
		intent, entities.Parameters, entities.Locations)

	analysisKind, vizKind := planAnalysis(intent, entities)

	dataset, err := s.fetch(ctx, entities)
	if err != nil {
		return nil, errors.FetchFailed(err)
	}

	result := s.engine.Analyze(dataset, analysisKind)

	// Visualization and composition both read the same result and are
	// independent of each other.
	var (
		specs   []viz.Spec
		message string
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		specs = s.builder.Build(result, vizKind)
		return nil
	})
	g.Go(func() error {
		message = s.composer.Compose(intent, entities, result)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &ChatResponse{
		Message:        message,
		Data:           result,
		Visualizations: specs,
		Suggestions:    interpret.Suggestions(intent, entities),
	}

	s.recordQuery(ctx, text, userID, intent, len(specs) > 0)

	return resp, nil
}

// fetch performs the single suspension point of the pipeline under its own
// deadline.
func (s *ChatService) fetch(ctx context.Context, entities query.EntitySet) (ocean.Dataset, error) {
	parameters := entities.Parameters
	if len(parameters) == 0 {
		parameters = []query.Parameter{query.ParamTemperature}
	}

	req := ports.DatasetRequest{
		Parameters: parameters,
		Locations:  entities.Locations,
		TimeRange:  interpret.ParseTimeRange(entities.TimePeriods),
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	return s.source.FetchDataset(fetchCtx, req)
}

// recordQuery logs the query best-effort; persistence failures never fail
// the request.
func (s *ChatService) recordQuery(ctx context.Context, text, userID string, intent query.Intent, hasViz bool) {
	if s.queries == nil {
		return
	}
	if userID == "" {
		userID = "anonymous"
	}

	rec := ports.QueryRecord{
		ID:                uuid.New(),
		UserID:            userID,
		Message:           text,
		Intent:            intent.String(),
		HasVisualizations: hasViz,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.queries.RecordQuery(ctx, rec); err != nil {
		s.logger.Warn("Failed to record query: %v", err)
	}
}

// planAnalysis derives the analysis and visualization kinds from the
// interpreted intent, mirroring the chat routing rules: anomaly and trend
// intents select their analyses, a plot of the depth parameter selects the
// depth profile, a plot with locations selects the map.
func planAnalysis(intent query.Intent, entities query.EntitySet) (query.AnalysisKind, query.VisualizationKind) {
	analysisKind := query.AnalysisSummary
	vizKind := query.VizTimeSeries

	switch intent {
	case query.IntentPlot:
		if entities.HasParameter(query.ParamDepth) {
			vizKind = query.VizDepthProfile
		} else if len(entities.Locations) > 0 {
			vizKind = query.VizMap
		}
	case query.IntentAnomaly:
		analysisKind = query.AnalysisAnomaly
	case query.IntentTrend:
		analysisKind = query.AnalysisTrend
	}

	return analysisKind, vizKind
}
