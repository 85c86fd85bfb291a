package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oceanquery/adapters/argo"
	"oceanquery/app"
	"oceanquery/domain/ocean"
	"oceanquery/internal/analysis"
	"oceanquery/internal/interpret"
	"oceanquery/internal/respond"
	"oceanquery/internal/visualize"
	"oceanquery/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSource always errors, standing in for an unreachable feed.
type failingSource struct{}

func (failingSource) FetchDataset(ctx context.Context, req ports.DatasetRequest) (ocean.Dataset, error) {
	return ocean.Dataset{}, fmt.Errorf("feed unreachable")
}

func newTestApp(source ports.DataSource) *App {
	engine := analysis.NewEngine(analysis.DefaultConfig())
	builder := visualize.NewBuilder(visualize.DefaultConfig())
	chat := app.NewChatService(
		interpret.NewInterpreter(nil),
		source,
		engine,
		builder,
		respond.NewComposer(),
		nil,
		5*time.Second,
	)
	dashboard := app.NewDashboardService(nil)
	return NewApp(chat, dashboard, source, engine, builder, 5*time.Second)
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var payload map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestApp(argo.NewMockSource(1)).Router()

	rec, payload := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "oceanquery", payload["service"])
}

func TestChatEndpoint(t *testing.T) {
	router := newTestApp(argo.NewMockSource(1)).Router()

	t.Run("happy path", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodPost, "/api/chat",
			`{"message": "temperature trend in the atlantic"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Contains(t, payload["message"], "The temperature trend is")

		data, ok := payload["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, data, "trend_analysis")

		specs, ok := payload["visualizations"].([]interface{})
		require.True(t, ok)
		assert.Len(t, specs, 1)

		assert.NotNil(t, payload["suggestions"])
	})

	t.Run("empty message", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodPost, "/api/chat", `{"message": "  "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, true, payload["error"])
		assert.Equal(t, "INVALID_INPUT", payload["code"])
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/chat", `{"message": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("source failure maps to bad gateway", func(t *testing.T) {
		broken := newTestApp(failingSource{}).Router()
		rec, payload := doJSON(t, broken, http.MethodPost, "/api/chat", `{"message": "salinity summary"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "FETCH_FAILED", payload["code"])
	})
}

func TestFloatsEndpoint(t *testing.T) {
	router := newTestApp(argo.NewMockSource(1)).Router()

	t.Run("default window", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/data/floats", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, payload, "data")
		assert.Contains(t, payload, "timestamp")
	})

	t.Run("explicit range", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet,
			"/api/data/floats?start_date=2024-03-01T00:00:00Z&end_date=2024-03-05T00:00:00Z", "")
		require.Equal(t, http.StatusOK, rec.Code)

		data := payload["data"].(map[string]interface{})
		series := data["time_series"].(map[string]interface{})
		assert.Len(t, series["dates"], 5)
	})

	t.Run("bad start date", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet,
			"/api/data/floats?start_date=yesterday&end_date=2024-03-05T00:00:00Z", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", payload["code"])
	})

	t.Run("inverted range", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet,
			"/api/data/floats?start_date=2024-03-05T00:00:00Z&end_date=2024-03-01T00:00:00Z", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAnalysisEndpoint(t *testing.T) {
	router := newTestApp(argo.NewMockSource(1)).Router()

	t.Run("trend", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/data/analysis/trend", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "trend", payload["analysis_type"])

		results := payload["results"].(map[string]interface{})
		assert.Contains(t, results, "trend_analysis")
	})

	t.Run("unknown type", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/data/analysis/regression", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", payload["code"])
	})
}

func TestVisualizationsEndpoint(t *testing.T) {
	router := newTestApp(argo.NewMockSource(1)).Router()

	t.Run("map", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/data/visualizations/map?region=atlantic", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "map", payload["visualization_type"])
		assert.NotNil(t, payload["data"])

		meta := payload["metadata"].(map[string]interface{})
		assert.Equal(t, "atlantic", meta["region"])
	})

	t.Run("unknown type", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/data/visualizations/heatmap", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExportEndpoint(t *testing.T) {
	router := newTestApp(argo.NewMockSource(1)).Router()

	t.Run("csv by default", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/data/export", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "ocean_data.csv")
		assert.True(t, strings.HasPrefix(rec.Body.String(), "date,latitude,longitude,temperature,salinity"))
	})

	t.Run("json", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/data/export?format=json", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("unknown format", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/data/export?format=parquet", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", payload["code"])
	})
}

func TestDashboardEndpoints(t *testing.T) {
	router := newTestApp(argo.NewMockSource(1)).Router()

	t.Run("overview serves the baseline without persistence", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/dashboard/", "")
		require.Equal(t, http.StatusOK, rec.Code)

		stats := payload["stats"].(map[string]interface{})
		assert.Equal(t, float64(3847), stats["active_floats"])
		assert.NotNil(t, payload["recent_queries"])
		assert.NotEmpty(t, payload["popular_parameters"])
	})

	t.Run("analytics requires persistence", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/dashboard/analytics", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "DATABASE_ERROR", payload["code"])
	})

	t.Run("save query validates input", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodPost, "/api/dashboard/save-query", `{"query": ""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", payload["code"])
	})
}
