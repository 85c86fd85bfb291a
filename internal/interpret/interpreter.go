package interpret

import (
	"regexp"
	"strings"
	"time"

	"oceanquery/domain/query"
	"oceanquery/ports"
)

// intentRule pairs an intent with its trigger keywords. Rule order is the
// tie-break policy: the first rule with any keyword present wins.
type intentRule struct {
	intent   query.Intent
	keywords []string
}

var intentRules = []intentRule{
	// "show" is deliberately not a plot keyword: it prefixes almost every
	// query ("show me the ... trend") and would shadow the later rules.
	{query.IntentPlot, []string{"plot", "graph", "chart", "visualize", "display"}},
	{query.IntentSummarize, []string{"summary", "summarize", "overview", "describe", "tell me about"}},
	{query.IntentAnomaly, []string{"anomaly", "unusual", "abnormal", "outlier", "strange"}},
	{query.IntentTrend, []string{"trend", "change", "over time", "temporal", "evolution"}},
	{query.IntentCompare, []string{"compare", "difference", "versus", "vs", "between"}},
	{query.IntentForecast, []string{"predict", "forecast", "future", "projection"}},
}

// parameterRules map canonical parameter tags to synonym substrings, in
// canonical parameter order. A tag is included at most once.
var parameterRules = []struct {
	tag      query.Parameter
	synonyms []string
}{
	{query.ParamTemperature, []string{"temperature", "temp", "thermal"}},
	{query.ParamSalinity, []string{"salinity", "salt", "psu"}},
	{query.ParamDepth, []string{"depth", "pressure", "vertical"}},
	{query.ParamCurrent, []string{"current", "velocity", "flow"}},
}

// gazetteer lists recognized ocean/region names in match order. Overlapping
// entries are intentional: "north atlantic" in a query matches both
// "atlantic" and "north atlantic", and both are reported.
var gazetteer = []string{
	"atlantic", "pacific", "indian", "arctic", "southern",
	"north atlantic", "south pacific", "mediterranean",
	"gulf stream", "california current", "agulhas current",
}

// timePhrases lists recognized temporal substrings in match order.
var timePhrases = []string{
	"last month", "past year", "recent", "today",
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// yearPattern matches four-digit calendar years.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Interpreter maps raw query text to an intent and entity set. Pure and
// deterministic; safe for concurrent use.
type Interpreter struct {
	tagger ports.EntityTagger // optional, may be nil
}

// NewInterpreter creates an interpreter. A nil tagger disables the
// named-entity step without error.
func NewInterpreter(tagger ports.EntityTagger) *Interpreter {
	return &Interpreter{tagger: tagger}
}

// Interpret classifies the query's intent and extracts its entities.
// Case-insensitive substring matching; never fails.
func (i *Interpreter) Interpret(text string) (query.Intent, query.EntitySet) {
	lower := strings.ToLower(text)
	return extractIntent(lower), i.extractEntities(text, lower)
}

func extractIntent(lower string) query.Intent {
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return query.IntentQuery
}

func (i *Interpreter) extractEntities(text, lower string) query.EntitySet {
	entities := query.NewEntitySet()

	for _, rule := range parameterRules {
		for _, syn := range rule.synonyms {
			if strings.Contains(lower, syn) {
				entities.Parameters = append(entities.Parameters, rule.tag)
				break
			}
		}
	}

	for _, loc := range gazetteer {
		if strings.Contains(lower, loc) {
			entities.Locations = append(entities.Locations, loc)
		}
	}

	for _, phrase := range timePhrases {
		if strings.Contains(lower, phrase) {
			entities.TimePeriods = append(entities.TimePeriods, phrase)
		}
	}
	for _, year := range yearPattern.FindAllString(lower, -1) {
		if !containsFold(entities.TimePeriods, year) {
			entities.TimePeriods = append(entities.TimePeriods, year)
		}
	}

	// Tagger output lands after the gazetteer matches, in tagger order.
	if i.tagger != nil {
		for _, tagged := range i.tagger.Tag(text) {
			if tagged.Class != "LOC" {
				continue
			}
			if !containsFold(entities.Locations, tagged.Text) {
				entities.Locations = append(entities.Locations, tagged.Text)
			}
		}
	}

	return entities
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

// ParseTimeRange scans time-period entities in order and resolves the first
// recognized relative phrase to a concrete window anchored at the current
// time. Unrecognized phrases are skipped; no match returns nil and the
// caller falls back to a default window.
func ParseTimeRange(periods []string) *query.TimeRange {
	return ParseTimeRangeAt(periods, time.Now().UTC())
}

// ParseTimeRangeAt is ParseTimeRange with an explicit anchor.
func ParseTimeRangeAt(periods []string, now time.Time) *query.TimeRange {
	for _, p := range periods {
		switch {
		case strings.Contains(p, "last month"):
			return &query.TimeRange{Start: now.Add(-30 * 24 * time.Hour), End: now}
		case strings.Contains(p, "past year"):
			return &query.TimeRange{Start: now.Add(-365 * 24 * time.Hour), End: now}
		case strings.Contains(p, "recent"):
			return &query.TimeRange{Start: now.Add(-7 * 24 * time.Hour), End: now}
		}
	}
	return nil
}
