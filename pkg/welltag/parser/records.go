package parser

import (
	"strings"
	"time"

	"github.com/ukaji3/welltag-go/pkg/welltag/models"
)

// ExtractAnalytes reads the analyte rows of one well column.
// Scanning starts at the first analyte row and stops before the first row
// whose name cell is absent or trims to the stop token. A name cell holding
// only whitespace is present and does not end the block.
func ExtractAnalytes(t models.Table, col int, s models.Schema) []models.AnalyteRecord {
	var records []models.AnalyteRecord
	for row := s.FirstAnalyteRow; row < t.NumRows(); row++ {
		nameCell := t.At(row, s.NameColumn)
		name := nameCell.String()
		if nameCell.Kind == models.CellEmpty || name == s.StopToken {
			break
		}
		records = append(records, Evaluate(name, t.At(row, col), t.At(row, s.ThresholdColumn), s))
	}
	return records
}

// Evaluate normalizes a raw measurement and checks it against its threshold.
// A value containing the non-detect token becomes the display sentinel and
// never exceeds. Otherwise the value exceeds only when both it and the
// threshold parse as numbers and value > threshold.
func Evaluate(name string, value, threshold models.Cell, s models.Schema) models.AnalyteRecord {
	raw := value.String()
	rec := models.AnalyteRecord{Name: name, Raw: raw, Value: raw}
	if strings.Contains(raw, s.NonDetectToken) {
		rec.Value = s.NonDetectDisplay
		rec.NonDetect = true
		return rec
	}
	v, ok := value.Float()
	if !ok {
		return rec
	}
	limit, ok := threshold.Float()
	if !ok {
		return rec
	}
	rec.Exceeds = v > limit
	return rec
}

// ExtractWellData reads a standard-layout well. The sampling date is rendered
// as month and year; when it does not parse, fallback is used instead.
// It returns false when the well is not in the index.
func ExtractWellData(t models.Table, idx models.WellIndex, well string, s models.Schema, fallback time.Time) (models.WellData, bool) {
	col, ok := idx.Column(well)
	if !ok {
		return models.WellData{}, false
	}
	return models.WellData{
		Date:     MonthYear(t.At(s.DateRow, col).String(), fallback),
		Analytes: ExtractAnalytes(t, col, s),
	}, true
}

// ExtractHistory pivots a historical well over the given dates and analytes,
// looking each date up in the well's dated columns. Dates are used in the
// order given. A date without a matching column, or an analyte missing from
// that column, yields a nil value and no exceedance.
func ExtractHistory(t models.Table, well string, cols []models.DatedColumn, dates, analytes []string, s models.Schema) models.HistoricalWellData {
	columns := make([]*models.WellData, len(dates))
	for i, date := range dates {
		col, ok := columnForDate(cols, date)
		if !ok {
			continue
		}
		columns[i] = &models.WellData{Date: date, Analytes: ExtractAnalytes(t, col, s)}
	}

	data := models.HistoricalWellData{
		WellID: well,
		Dates:  append([]string(nil), dates...),
	}
	for _, name := range analytes {
		series := models.HistoricalSeries{
			Name:    name,
			Values:  make([]*string, len(dates)),
			Exceeds: make([]bool, len(dates)),
		}
		for i, wd := range columns {
			if wd == nil {
				continue
			}
			if rec, ok := wd.Find(name); ok {
				v := rec.Value
				series.Values[i] = &v
				series.Exceeds[i] = rec.Exceeds
			}
		}
		data.Analytes = append(data.Analytes, series)
	}
	return data
}

// columnForDate returns the first column sampled on date.
func columnForDate(cols []models.DatedColumn, date string) (int, bool) {
	for _, c := range cols {
		if c.Date == date {
			return c.Column, true
		}
	}
	return 0, false
}

// AnalyteNames returns the analyte names of a well, in source order.
// Historical wells use their first dated column.
func AnalyteNames(t models.Table, idx models.WellIndex, well string, s models.Schema) []string {
	col, ok := idx.Column(well)
	if idx.Layout == models.LayoutHistorical {
		cols := idx.DatesOf(well)
		ok = len(cols) > 0
		if ok {
			col = cols[0].Column
		}
	}
	if !ok {
		return nil
	}
	var names []string
	for _, rec := range ExtractAnalytes(t, col, s) {
		names = append(names, rec.Name)
	}
	return names
}
