package visualize

import (
	"fmt"

	"oceanquery/domain/ocean"
	"oceanquery/domain/query"
	"oceanquery/domain/viz"
)

// Config bounds visualization payload sizes.
type Config struct {
	// MapMarkerLimit caps how many samples become map markers.
	MapMarkerLimit int
}

// DefaultConfig returns the standard payload bounds.
func DefaultConfig() Config {
	return Config{MapMarkerLimit: 10}
}

// Builder turns analysis results into render-agnostic visualization specs.
// Stateless; safe for concurrent use.
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder with the given payload bounds.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build produces an ordered spec list for the requested kind: one spec when
// the required arrays are present, none otherwise. Unknown kinds and
// missing arrays yield an empty list, never an error — "no visualization"
// is a valid response.
func (b *Builder) Build(result ocean.Result, kind query.VisualizationKind) []viz.Spec {
	switch kind {
	case query.VizTimeSeries:
		if spec := timeSeriesPlot(result.TimeSeries); spec != nil {
			return []viz.Spec{*spec}
		}
	case query.VizDepthProfile:
		if spec := depthProfilePlot(result.DepthProfile); spec != nil {
			return []viz.Spec{*spec}
		}
	case query.VizMap:
		if spec := b.pointMap(result.TimeSeries); spec != nil {
			return []viz.Spec{*spec}
		}
	}
	return []viz.Spec{}
}

func timeSeriesPlot(ts ocean.TimeSeries) *viz.Spec {
	n := len(ts.Dates)
	if n == 0 || len(ts.Temperatures) != n {
		return nil
	}

	points := make([]viz.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, viz.Point{
			X:     float64(ts.Dates[i].Unix()),
			Y:     ts.Temperatures[i],
			Label: ts.Dates[i].Format("2006-01-02"),
		})
	}

	return &viz.Spec{
		Kind: viz.KindLinePlot,
		LinePlot: &viz.LinePlot{
			XTitle: "Date",
			YTitle: "Temperature (°C)",
			Points: points,
		},
	}
}

func depthProfilePlot(dp ocean.DepthProfile) *viz.Spec {
	n := len(dp.Depths)
	if n == 0 || len(dp.Values) != n {
		return nil
	}

	// Temperature on x, depth on y with the axis reversed so the surface
	// reads at the top.
	points := make([]viz.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, viz.Point{X: dp.Values[i], Y: dp.Depths[i]})
	}

	return &viz.Spec{
		Kind: viz.KindLinePlot,
		LinePlot: &viz.LinePlot{
			XTitle:   "Temperature (°C)",
			YTitle:   "Depth (m)",
			ReverseY: true,
			Points:   points,
		},
	}
}

func (b *Builder) pointMap(ts ocean.TimeSeries) *viz.Spec {
	n := len(ts.Latitudes)
	if n == 0 || len(ts.Longitudes) != n || len(ts.Temperatures) != n {
		return nil
	}
	if b.cfg.MapMarkerLimit > 0 && n > b.cfg.MapMarkerLimit {
		n = b.cfg.MapMarkerLimit
	}

	markers := make([]viz.Marker, 0, n)
	for i := 0; i < n; i++ {
		markers = append(markers, viz.Marker{
			Lat:         ts.Latitudes[i],
			Lon:         ts.Longitudes[i],
			Title:       fmt.Sprintf("Measurement %d", i+1),
			Description: fmt.Sprintf("Temperature: %.1f°C", ts.Temperatures[i]),
		})
	}

	return &viz.Spec{
		Kind: viz.KindMap,
		Map:  &viz.MapSpec{Markers: markers},
	}
}
