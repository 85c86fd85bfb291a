package query

import "time"

// Intent classifies what a user wants from a free-text query.
type Intent string

const (
	IntentQuery     Intent = "query"
	IntentPlot      Intent = "plot"
	IntentSummarize Intent = "summarize"
	IntentAnomaly   Intent = "anomaly"
	IntentTrend     Intent = "trend"
	IntentCompare   Intent = "compare"
	IntentForecast  Intent = "forecast"
)

// String returns the intent tag.
func (i Intent) String() string { return string(i) }

// Parameter is a canonical measured-parameter tag.
type Parameter string

const (
	ParamTemperature Parameter = "temperature"
	ParamSalinity    Parameter = "salinity"
	ParamDepth       Parameter = "depth"
	ParamCurrent     Parameter = "current"
)

// CanonicalParameters fixes the insertion order for extracted parameters.
var CanonicalParameters = []Parameter{
	ParamTemperature,
	ParamSalinity,
	ParamDepth,
	ParamCurrent,
}

// EntitySet holds the domain entities extracted from a query. Empty lists
// are meaningful — they signal "use defaults", never an error.
type EntitySet struct {
	Parameters  []Parameter `json:"parameters"`
	Locations   []string    `json:"locations"`
	TimePeriods []string    `json:"time_periods"`
	Depths      []string    `json:"depths"`
	Regions     []string    `json:"regions"`
}

// NewEntitySet returns an EntitySet with all lists allocated empty so the
// JSON encoding is always structurally complete.
func NewEntitySet() EntitySet {
	return EntitySet{
		Parameters:  []Parameter{},
		Locations:   []string{},
		TimePeriods: []string{},
		Depths:      []string{},
		Regions:     []string{},
	}
}

// HasParameter reports whether the canonical tag was extracted.
func (e EntitySet) HasParameter(p Parameter) bool {
	for _, have := range e.Parameters {
		if have == p {
			return true
		}
	}
	return false
}

// TimeRange is a concrete window resolved from a relative time phrase.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AnalysisKind selects which derived block the analysis engine computes.
type AnalysisKind string

const (
	AnalysisTrend   AnalysisKind = "trend"
	AnalysisAnomaly AnalysisKind = "anomaly"
	AnalysisSummary AnalysisKind = "summary"
	// AnalysisNone passes the dataset through, reusing its construction-time
	// statistics block.
	AnalysisNone AnalysisKind = "query"
)

// VisualizationKind selects which spec the visualization builder emits.
type VisualizationKind string

const (
	VizTimeSeries   VisualizationKind = "time_series"
	VizDepthProfile VisualizationKind = "depth_profile"
	VizMap          VisualizationKind = "map"
)
