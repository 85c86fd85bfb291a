package viz

// Kind discriminates the visualization payload variants.
type Kind string

const (
	KindLinePlot Kind = "plot"
	KindMap      Kind = "map"
)

// Point is one plotted sample. X is the numeric position on the x axis;
// Label optionally carries a human-readable form of X (e.g. a date).
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// LinePlot is a render-agnostic line chart: ordered points, axis titles and
// a flag for reversing the y axis (depth profiles put the surface at top).
type LinePlot struct {
	XTitle   string  `json:"x_title"`
	YTitle   string  `json:"y_title"`
	ReverseY bool    `json:"reverse_y"`
	Points   []Point `json:"points"`
}

// Marker is one geographic point marker.
type Marker struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// MapSpec is an ordered list of point markers.
type MapSpec struct {
	Markers []Marker `json:"markers"`
}

// Spec is a tagged visualization descriptor. Exactly one payload field is
// set, matching Kind.
type Spec struct {
	Kind     Kind      `json:"type"`
	LinePlot *LinePlot `json:"plot,omitempty"`
	Map      *MapSpec  `json:"map,omitempty"`
}
