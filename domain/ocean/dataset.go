package ocean

import (
	"time"

	"github.com/montanaflynn/stats"
)

// TimeSeries holds the parallel per-sample arrays of a dataset. All arrays
// share the same length; Dates is ascending.
type TimeSeries struct {
	Dates        []time.Time `json:"dates"`
	Latitudes    []float64   `json:"latitudes"`
	Longitudes   []float64   `json:"longitudes"`
	Temperatures []float64   `json:"temperatures"`
	Salinities   []float64   `json:"salinities"`
}

// Len returns the number of samples.
func (ts TimeSeries) Len() int { return len(ts.Dates) }

// DepthProfile is a single vertical cast, independent of the time series.
// Depths is ascending; Values carries one reading per depth.
type DepthProfile struct {
	Depths []float64 `json:"depths"`
	Values []float64 `json:"values"`
}

// Statistics are the scalar aggregates computed once at dataset construction
// and reused verbatim by passthrough analyses.
type Statistics struct {
	MeanTemperature float64 `json:"mean_temperature"`
	StdTemperature  float64 `json:"std_temperature"`
	MinTemperature  float64 `json:"min_temperature"`
	MaxTemperature  float64 `json:"max_temperature"`
	MeanSalinity    float64 `json:"mean_salinity"`
	DataPoints      int     `json:"data_points"`
}

// Dataset bundles a time series, a depth profile and construction-time
// statistics. Datasets are request-scoped and never mutated after creation.
type Dataset struct {
	TimeSeries   TimeSeries   `json:"time_series"`
	DepthProfile DepthProfile `json:"depth_profile"`
	Statistics   *Statistics  `json:"statistics,omitempty"`
}

// NewDataset assembles a dataset and computes its statistics block.
func NewDataset(ts TimeSeries, dp DepthProfile) Dataset {
	return Dataset{
		TimeSeries:   ts,
		DepthProfile: dp,
		Statistics:   ComputeStatistics(ts),
	}
}

// ComputeStatistics derives the scalar aggregates for a time series.
// Returns nil when the temperature array is empty.
func ComputeStatistics(ts TimeSeries) *Statistics {
	if len(ts.Temperatures) == 0 {
		return nil
	}

	mean, _ := stats.Mean(ts.Temperatures)
	std, _ := stats.StandardDeviation(ts.Temperatures)
	min, _ := stats.Min(ts.Temperatures)
	max, _ := stats.Max(ts.Temperatures)

	s := &Statistics{
		MeanTemperature: mean,
		StdTemperature:  std,
		MinTemperature:  min,
		MaxTemperature:  max,
		DataPoints:      len(ts.Temperatures),
	}

	if len(ts.Salinities) > 0 {
		meanSal, _ := stats.Mean(ts.Salinities)
		s.MeanSalinity = meanSal
	}

	return s
}

// Clone returns a deep copy so analyses can augment a dataset without
// touching caller-owned arrays.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		TimeSeries: TimeSeries{
			Dates:        append([]time.Time(nil), d.TimeSeries.Dates...),
			Latitudes:    append([]float64(nil), d.TimeSeries.Latitudes...),
			Longitudes:   append([]float64(nil), d.TimeSeries.Longitudes...),
			Temperatures: append([]float64(nil), d.TimeSeries.Temperatures...),
			Salinities:   append([]float64(nil), d.TimeSeries.Salinities...),
		},
		DepthProfile: DepthProfile{
			Depths: append([]float64(nil), d.DepthProfile.Depths...),
			Values: append([]float64(nil), d.DepthProfile.Values...),
		},
	}
	if d.Statistics != nil {
		statsCopy := *d.Statistics
		out.Statistics = &statsCopy
	}
	return out
}
