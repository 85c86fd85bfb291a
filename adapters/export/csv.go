package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"oceanquery/domain/ocean"
)

// CSVExporter writes the time-series arrays as one row per sample.
type CSVExporter struct{}

func (e *CSVExporter) ContentType() string { return "text/csv" }
func (e *CSVExporter) Filename() string    { return "ocean_data.csv" }

// Export writes a header row followed by the samples in date order.
func (e *CSVExporter) Export(w io.Writer, ds ocean.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "latitude", "longitude", "temperature", "salinity"}); err != nil {
		return err
	}

	ts := ds.TimeSeries
	for i := 0; i < ts.Len(); i++ {
		row := []string{
			ts.Dates[i].Format(time.RFC3339),
			floatField(ts.Latitudes, i),
			floatField(ts.Longitudes, i),
			floatField(ts.Temperatures, i),
			floatField(ts.Salinities, i),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func floatField(values []float64, i int) string {
	if i >= len(values) {
		return ""
	}
	return strconv.FormatFloat(values[i], 'f', -1, 64)
}
