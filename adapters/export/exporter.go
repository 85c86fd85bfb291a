package export

import (
	"io"

	"oceanquery/domain/ocean"
	"oceanquery/internal/errors"
)

// Exporter writes a dataset in one output format.
type Exporter interface {
	ContentType() string
	Filename() string
	Export(w io.Writer, ds ocean.Dataset) error
}

// ForFormat resolves an export format name to its exporter.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "xlsx":
		return &XLSXExporter{}, nil
	default:
		return nil, errors.InvalidInput("format must be csv, json, or xlsx")
	}
}
