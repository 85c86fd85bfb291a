package analysis

import (
	"math"
	"time"

	"oceanquery/domain/ocean"
	"oceanquery/domain/query"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Config carries the analysis policy thresholds. These are policy choices,
// not physical constants.
type Config struct {
	// AnomalyZScore is the z-score above which a sample is an anomaly.
	AnomalyZScore float64
	// TrendConfidence is the |slope| above which a trend is reported with
	// high confidence.
	TrendConfidence float64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		AnomalyZScore:   2.0,
		TrendConfidence: 0.1,
	}
}

// Engine runs statistical analyses over ocean datasets. Stateless; safe
// for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an analysis engine with the given thresholds.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Analyze returns the dataset augmented with the derived block for the
// requested kind. The input is never mutated; numerically degenerate
// inputs produce well-defined degenerate blocks, never an error.
func (e *Engine) Analyze(ds ocean.Dataset, kind query.AnalysisKind) ocean.Result {
	result := ocean.Result{Dataset: ds.Clone()}

	switch kind {
	case query.AnalysisTrend:
		result.Trend = e.fitTrend(result.TimeSeries)
	case query.AnalysisAnomaly:
		result.Anomalies = e.detectAnomalies(result.TimeSeries)
	case query.AnalysisSummary:
		result.Summary = summarize(result.TimeSeries)
	default:
		// Passthrough: reuse construction-time statistics, compute only
		// when the dataset arrived without them.
		if result.Statistics == nil {
			result.Statistics = ocean.ComputeStatistics(result.TimeSeries)
		}
	}

	return result
}

// fitTrend fits a first-degree least-squares line to (index, temperature).
// Fewer than two samples degrade to a flat, low-confidence trend. A zero
// slope counts as decreasing: non-positive slopes are "decreasing".
func (e *Engine) fitTrend(ts ocean.TimeSeries) *ocean.Trend {
	temps := ts.Temperatures
	if len(temps) < 2 {
		return &ocean.Trend{Slope: 0, Direction: ocean.TrendDecreasing, Confidence: ocean.ConfidenceLow}
	}

	xs := make([]float64, len(temps))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, temps, nil, false)

	direction := ocean.TrendDecreasing
	if slope > 0 {
		direction = ocean.TrendIncreasing
	}

	confidence := ocean.ConfidenceLow
	if math.Abs(slope) > e.cfg.TrendConfidence {
		confidence = ocean.ConfidenceHigh
	}

	return &ocean.Trend{Slope: slope, Direction: direction, Confidence: confidence}
}

// detectAnomalies flags samples whose z-score against the series mean and
// population standard deviation exceeds the threshold. A constant series
// (std == 0) has no anomalies.
func (e *Engine) detectAnomalies(ts ocean.TimeSeries) *ocean.Anomalies {
	out := &ocean.Anomalies{
		Indices: []int{},
		Values:  []float64{},
		Dates:   []time.Time{},
	}

	temps := ts.Temperatures
	if len(temps) == 0 {
		return out
	}

	mean, _ := stats.Mean(temps)
	std, _ := stats.StandardDeviation(temps)
	if std == 0 {
		return out
	}

	// Inclusive comparison: the canonical spike case (four equal samples
	// plus one outlier) lands exactly on the threshold and must qualify.
	for i, v := range temps {
		if math.Abs(v-mean)/std >= e.cfg.AnomalyZScore {
			out.Indices = append(out.Indices, i)
			out.Values = append(out.Values, v)
			if i < len(ts.Dates) {
				out.Dates = append(out.Dates, ts.Dates[i])
			}
		}
	}
	out.Count = len(out.Indices)

	return out
}

// summarize computes per-parameter descriptive statistics. Parameters with
// empty arrays are omitted from the summary rather than reported as zeros.
func summarize(ts ocean.TimeSeries) *ocean.Summary {
	return &ocean.Summary{
		Temperature: parameterSummary(ts.Temperatures),
		Salinity:    parameterSummary(ts.Salinities),
	}
}

func parameterSummary(values []float64) *ocean.ParameterSummary {
	if len(values) == 0 {
		return nil
	}

	mean, _ := stats.Mean(values)
	std, _ := stats.StandardDeviation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	return &ocean.ParameterSummary{Mean: mean, Std: std, Min: min, Max: max}
}
