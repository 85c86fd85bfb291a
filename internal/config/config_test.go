package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL",
		"ANOMALY_ZSCORE_THRESHOLD", "TREND_CONFIDENCE_THRESHOLD",
		"MAP_MARKER_LIMIT", "FETCH_TIMEOUT", "MOCK_SOURCE_SEED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, 2.0, cfg.Analysis.AnomalyZScore)
	assert.Equal(t, 0.1, cfg.Analysis.TrendConfidence)
	assert.Equal(t, 10, cfg.Visualization.MapMarkerLimit)
	assert.Equal(t, 10*time.Second, cfg.Source.FetchTimeout)
	assert.Equal(t, int64(0), cfg.Source.Seed)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/ocean")
	t.Setenv("ANOMALY_ZSCORE_THRESHOLD", "3.5")
	t.Setenv("TREND_CONFIDENCE_THRESHOLD", "0.25")
	t.Setenv("MAP_MARKER_LIMIT", "25")
	t.Setenv("FETCH_TIMEOUT", "30s")
	t.Setenv("MOCK_SOURCE_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/ocean", cfg.Database.URL)
	assert.Equal(t, 3.5, cfg.Analysis.AnomalyZScore)
	assert.Equal(t, 0.25, cfg.Analysis.TrendConfidence)
	assert.Equal(t, 25, cfg.Visualization.MapMarkerLimit)
	assert.Equal(t, 30*time.Second, cfg.Source.FetchTimeout)
	assert.Equal(t, int64(42), cfg.Source.Seed)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("ANOMALY_ZSCORE_THRESHOLD", "not-a-number")
	t.Setenv("MAP_MARKER_LIMIT", "many")
	t.Setenv("FETCH_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Analysis.AnomalyZScore)
	assert.Equal(t, 10, cfg.Visualization.MapMarkerLimit)
	assert.Equal(t, 10*time.Second, cfg.Source.FetchTimeout)
}

func TestLoad_RejectsInvalidThresholds(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero z-score", "ANOMALY_ZSCORE_THRESHOLD", "0"},
		{"negative z-score", "ANOMALY_ZSCORE_THRESHOLD", "-1"},
		{"zero trend confidence", "TREND_CONFIDENCE_THRESHOLD", "0"},
		{"negative marker limit", "MAP_MARKER_LIMIT", "-5"},
		{"zero fetch timeout", "FETCH_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
