package export

import (
	"fmt"
	"io"
	"time"

	"oceanquery/domain/ocean"

	"github.com/xuri/excelize/v2"
)

// XLSXExporter writes a workbook with one sheet for the time series and one
// for the depth profile.
type XLSXExporter struct{}

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (e *XLSXExporter) Filename() string { return "ocean_data.xlsx" }

func (e *XLSXExporter) Export(w io.Writer, ds ocean.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	const timeSeriesSheet = "TimeSeries"
	if err := f.SetSheetName(f.GetSheetName(0), timeSeriesSheet); err != nil {
		return err
	}

	header := []interface{}{"date", "latitude", "longitude", "temperature", "salinity"}
	if err := f.SetSheetRow(timeSeriesSheet, "A1", &header); err != nil {
		return err
	}

	ts := ds.TimeSeries
	for i := 0; i < ts.Len(); i++ {
		row := []interface{}{
			ts.Dates[i].Format(time.RFC3339),
			cellValue(ts.Latitudes, i),
			cellValue(ts.Longitudes, i),
			cellValue(ts.Temperatures, i),
			cellValue(ts.Salinities, i),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(timeSeriesSheet, cell, &row); err != nil {
			return err
		}
	}

	const profileSheet = "DepthProfile"
	if _, err := f.NewSheet(profileSheet); err != nil {
		return err
	}
	profileHeader := []interface{}{"depth", "temperature"}
	if err := f.SetSheetRow(profileSheet, "A1", &profileHeader); err != nil {
		return err
	}
	dp := ds.DepthProfile
	for i := range dp.Depths {
		row := []interface{}{dp.Depths[i], cellValue(dp.Values, i)}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(profileSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func cellValue(values []float64, i int) interface{} {
	if i >= len(values) {
		return nil
	}
	return values[i]
}
