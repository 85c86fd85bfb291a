package export

import (
	"encoding/json"
	"io"

	"oceanquery/domain/ocean"
)

// JSONExporter writes the full dataset, statistics included.
type JSONExporter struct{}

func (e *JSONExporter) ContentType() string { return "application/json" }
func (e *JSONExporter) Filename() string    { return "ocean_data.json" }

func (e *JSONExporter) Export(w io.Writer, ds ocean.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ds)
}
