package ocean

import "time"

// TrendDirection is the qualitative direction of a fitted trend.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
)

// Confidence is the categorical confidence tier of a fitted trend.
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// Trend describes a first-degree least-squares fit over the temperature
// series.
type Trend struct {
	Slope      float64        `json:"slope"`
	Direction  TrendDirection `json:"trend_description"`
	Confidence Confidence     `json:"confidence"`
}

// Anomalies lists the temperature samples whose z-score exceeded the
// configured threshold, in original (ascending index) order.
type Anomalies struct {
	Count   int         `json:"count"`
	Indices []int       `json:"indices"`
	Values  []float64   `json:"values"`
	Dates   []time.Time `json:"dates"`
}

// ParameterSummary holds per-parameter descriptive statistics.
type ParameterSummary struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Summary aggregates the available parameter arrays. A parameter whose
// array is empty is omitted rather than reported as zeros.
type Summary struct {
	Temperature *ParameterSummary `json:"temperature,omitempty"`
	Salinity    *ParameterSummary `json:"salinity,omitempty"`
}

// Result is a dataset augmented with derived analysis blocks. Blocks are
// additive: the original arrays are always carried through unchanged.
type Result struct {
	Dataset
	Trend     *Trend     `json:"trend_analysis,omitempty"`
	Anomalies *Anomalies `json:"anomalies,omitempty"`
	Summary   *Summary   `json:"summary,omitempty"`
}
