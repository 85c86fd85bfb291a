package respond

import (
	"fmt"

	"oceanquery/domain/ocean"
	"oceanquery/domain/query"
)

// Composer renders the natural-language answer for an analysis result.
// Template selection is keyed on intent; each branch reads the result block
// it expects and falls back to a generic sentence when the block is absent.
// Pure: no I/O, no randomness.
type Composer struct{}

// NewComposer creates a composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose builds the response message. Temperature-like values interpolate
// with one decimal place.
func (c *Composer) Compose(intent query.Intent, entities query.EntitySet, result ocean.Result) string {
	parameter := "ocean"
	if len(entities.Parameters) > 0 {
		parameter = string(entities.Parameters[0])
	}
	location := "the specified region"
	if len(entities.Locations) > 0 {
		location = entities.Locations[0]
	}

	switch intent {
	case query.IntentPlot, query.IntentQuery:
		if s := result.Statistics; s != nil {
			return fmt.Sprintf(
				"Here's the %s analysis for %s. The average temperature is %.1f°C with %d data points analyzed.",
				parameter, location, s.MeanTemperature, s.DataPoints)
		}
		return fmt.Sprintf("I've prepared a visualization showing %s data for %s.", parameter, location)

	case query.IntentAnomaly:
		if a := result.Anomalies; a != nil {
			return fmt.Sprintf(
				"I found %d temperature anomalies in the data. These unusual values are highlighted in the visualization.",
				a.Count)
		}
		return "No significant anomalies detected in the current dataset."

	case query.IntentTrend:
		if t := result.Trend; t != nil {
			return fmt.Sprintf("The temperature trend is %s with %s confidence.", t.Direction, t.Confidence)
		}
		return "I've analyzed the temporal trends in your data."

	case query.IntentSummarize:
		if s := result.Summary; s != nil && s.Temperature != nil {
			return fmt.Sprintf(
				"Summary: Temperature ranges from %.1f°C to %.1f°C with a mean of %.1f°C.",
				s.Temperature.Min, s.Temperature.Max, s.Temperature.Mean)
		}
		return "Here's a comprehensive analysis of the ocean data."
	}

	return "I've processed your request and prepared the analysis."
}
