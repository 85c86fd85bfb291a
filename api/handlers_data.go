package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"oceanquery/adapters/export"
	"oceanquery/domain/ocean"
	"oceanquery/domain/query"
	"oceanquery/internal/errors"
	"oceanquery/ports"
)

var validAnalysisKinds = map[string]query.AnalysisKind{
	"trend":   query.AnalysisTrend,
	"anomaly": query.AnalysisAnomaly,
	"summary": query.AnalysisSummary,
}

var validVisualizationKinds = map[string]query.VisualizationKind{
	"time_series":   query.VizTimeSeries,
	"depth_profile": query.VizDepthProfile,
	"map":           query.VizMap,
}

// handleFloats serves filtered float data.
func (a *App) handleFloats(w http.ResponseWriter, r *http.Request) {
	req, err := datasetRequestFromQuery(r)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, err)
		return
	}

	dataset, err := a.fetchDataset(r.Context(), req)
	if err != nil {
		a.respondError(w, statusForError(err), err)
		return
	}

	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":      dataset,
		"timestamp": time.Now().UTC(),
	})
}

// handleAnalysis serves one named analysis over a fresh dataset.
func (a *App) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	kindName := chi.URLParam(r, "type")
	kind, ok := validAnalysisKinds[kindName]
	if !ok {
		a.respondError(w, http.StatusBadRequest,
			errors.InvalidInput("analysis type must be one of: trend, anomaly, summary"))
		return
	}

	req, err := datasetRequestFromQuery(r)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, err)
		return
	}

	dataset, err := a.fetchDataset(r.Context(), req)
	if err != nil {
		a.respondError(w, statusForError(err), err)
		return
	}

	result := a.engine.Analyze(dataset, kind)

	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"analysis_type": kindName,
		"results":       result,
		"timestamp":     time.Now().UTC(),
	})
}

// handleVisualizations serves one named visualization over a fresh dataset.
func (a *App) handleVisualizations(w http.ResponseWriter, r *http.Request) {
	kindName := chi.URLParam(r, "type")
	kind, ok := validVisualizationKinds[kindName]
	if !ok {
		a.respondError(w, http.StatusBadRequest,
			errors.InvalidInput("visualization type must be one of: time_series, depth_profile, map"))
		return
	}

	req, err := datasetRequestFromQuery(r)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, err)
		return
	}

	dataset, err := a.fetchDataset(r.Context(), req)
	if err != nil {
		a.respondError(w, statusForError(err), err)
		return
	}

	result := a.engine.Analyze(dataset, query.AnalysisNone)
	specs := a.builder.Build(result, kind)

	// An empty spec list is a valid response, not an error.
	var spec interface{}
	if len(specs) > 0 {
		spec = specs[0]
	}

	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"visualization_type": kindName,
		"data":               spec,
		"metadata": map[string]interface{}{
			"region":       r.URL.Query().Get("region"),
			"parameter":    r.URL.Query().Get("parameter"),
			"generated_at": time.Now().UTC(),
		},
	})
}

// handleExport streams the dataset in the requested format.
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	exporter, err := export.ForFormat(format)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, err)
		return
	}

	req, err := datasetRequestFromQuery(r)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, err)
		return
	}

	dataset, err := a.fetchDataset(r.Context(), req)
	if err != nil {
		a.respondError(w, statusForError(err), err)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.Filename()))
	if err := exporter.Export(w, dataset); err != nil {
		// Headers are already out; all we can do is log via the middleware
		// (the write error surfaces there) and stop.
		return
	}
}

func (a *App) fetchDataset(ctx context.Context, req ports.DatasetRequest) (ocean.Dataset, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
	defer cancel()

	dataset, err := a.source.FetchDataset(fetchCtx, req)
	if err != nil {
		return ocean.Dataset{}, errors.FetchFailed(err)
	}
	return dataset, nil
}

// datasetRequestFromQuery builds the data-source filter from query params.
func datasetRequestFromQuery(r *http.Request) (ports.DatasetRequest, error) {
	q := r.URL.Query()

	req := ports.DatasetRequest{
		Region: q.Get("region"),
	}

	parameter := q.Get("parameter")
	if parameter == "" {
		parameter = "temperature"
	}
	req.Parameters = []query.Parameter{query.Parameter(parameter)}

	startRaw, endRaw := q.Get("start_date"), q.Get("end_date")
	if startRaw != "" && endRaw != "" {
		start, err := time.Parse(time.RFC3339, startRaw)
		if err != nil {
			return req, errors.InvalidInput("start_date must be RFC 3339")
		}
		end, err := time.Parse(time.RFC3339, endRaw)
		if err != nil {
			return req, errors.InvalidInput("end_date must be RFC 3339")
		}
		if end.Before(start) {
			return req, errors.InvalidInput("end_date must not precede start_date")
		}
		req.TimeRange = &query.TimeRange{Start: start, End: end}
	}

	return req, nil
}
