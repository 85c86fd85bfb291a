package argo

import (
	"context"
	"math"
	"math/rand"
	"time"

	"oceanquery/domain/ocean"
	"oceanquery/ports"
)

const (
	baseTemperature = 18.0
	baseSalinity    = 35.0

	// Generated casts span 0–2000 m in 50 m steps.
	profileMaxDepth = 2000.0
	profileStep     = 50.0

	maxWindowDays = 366
)

// MockSource generates a realistic ARGO-float dataset in place of a live
// INCOIS/NOAA feed. The shape matches the live schema exactly: one daily
// sample per day of the requested window (North Atlantic box, seasonal
// temperature signal) plus one vertical cast with exponential decay.
type MockSource struct {
	seed int64 // 0 draws a fresh seed per fetch
}

// NewMockSource creates a mock source. A non-zero seed makes every fetch
// deterministic.
func NewMockSource(seed int64) *MockSource {
	return &MockSource{seed: seed}
}

// FetchDataset implements ports.DataSource.
func (s *MockSource) FetchDataset(ctx context.Context, req ports.DatasetRequest) (ocean.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return ocean.Dataset{}, err
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30)
	if req.TimeRange != nil {
		start, end = req.TimeRange.Start.UTC(), req.TimeRange.End.UTC()
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	if days > maxWindowDays {
		days = maxWindowDays
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ts := ocean.TimeSeries{
		Dates:        make([]time.Time, 0, days),
		Latitudes:    make([]float64, 0, days),
		Longitudes:   make([]float64, 0, days),
		Temperatures: make([]float64, 0, days),
		Salinities:   make([]float64, 0, days),
	}

	for i := 0; i < days; i++ {
		ts.Dates = append(ts.Dates, start.AddDate(0, 0, i))
		ts.Latitudes = append(ts.Latitudes, 40+rng.Float64()*20)
		ts.Longitudes = append(ts.Longitudes, -60+rng.Float64()*40)

		seasonal := 2 * math.Sin(float64(i)*2*math.Pi/365)
		ts.Temperatures = append(ts.Temperatures, baseTemperature+rng.NormFloat64()*2+seasonal)
		ts.Salinities = append(ts.Salinities, baseSalinity+rng.NormFloat64()*0.5)
	}

	dp := ocean.DepthProfile{
		Depths: []float64{},
		Values: []float64{},
	}
	for depth := 0.0; depth < profileMaxDepth; depth += profileStep {
		dp.Depths = append(dp.Depths, depth)
		dp.Values = append(dp.Values, baseTemperature*math.Exp(-depth/500)+rng.NormFloat64()*0.5)
	}

	return ocean.NewDataset(ts, dp), nil
}
