package interpret

import "oceanquery/domain/query"

// Suggestions returns fixed follow-up queries for an intent. For the
// default intent the lookup keys on whether temperature was extracted.
// No ranking, no personalization.
func Suggestions(intent query.Intent, entities query.EntitySet) []string {
	switch intent {
	case query.IntentPlot:
		return []string{
			"Show me the depth profile for this data",
			"Compare with historical averages",
			"Display anomalies in this region",
		}
	case query.IntentSummarize:
		return []string{
			"Create a visualization for this data",
			"Show trends over time",
			"Detect any unusual patterns",
		}
	}

	if entities.HasParameter(query.ParamTemperature) {
		return []string{
			"Show salinity data for the same region",
			"Compare with seasonal averages",
			"Display temperature depth profile",
		}
	}

	return []string{}
}
