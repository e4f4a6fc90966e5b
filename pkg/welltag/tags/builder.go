// Package tags builds report tags from a user selection and accumulates them
// in a session until export.
package tags

import (
	"log/slog"
	"time"

	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/ukaji3/welltag-go/pkg/welltag/parser"
)

// Selection is what the user picked for one save action.
type Selection struct {
	// Wells are the selected well ids, in presentation order.
	Wells []string
	// Analytes are the selected analyte names, in presentation order.
	Analytes []string
	// Dates maps a historical well id to its selected sampling dates.
	Dates map[string][]string
	// DetectionsOnly drops non-detect analytes from standard tags.
	DetectionsOnly bool
}

// BuildStandardTag filters a well's analytes down to the selected names, in
// the order of selected. When a name repeats in the well, its last record is
// used. With detectionsOnly set, analytes flagged as non-detects or whose
// value is the schema's non-detect display are dropped.
// It returns false when nothing is left to report.
func BuildStandardTag(wellID, date string, analytes []models.AnalyteRecord, selected []string, detectionsOnly bool, s models.Schema) (models.StandardTag, bool) {
	byName := make(map[string]models.AnalyteRecord, len(analytes))
	for _, a := range analytes {
		byName[a.Name] = a
	}

	tag := models.StandardTag{WellID: wellID, Date: date}
	for _, name := range selected {
		a, ok := byName[name]
		if !ok {
			continue
		}
		if detectionsOnly && (a.NonDetect || a.Value == s.NonDetectDisplay) {
			continue
		}
		tag.Analytes = append(tag.Analytes, models.StandardAnalyte{
			Name:        name,
			Value:       a.Value,
			ExceedsAWQS: a.Exceeds,
		})
	}
	if len(tag.Analytes) == 0 {
		return models.StandardTag{}, false
	}
	return tag, true
}

// BuildHistoricalTag pivots the selected analytes of a well over the selected
// dates, which must already be in the desired order (see parser.SortDates).
// It returns false when no dates or no analytes are selected.
func BuildHistoricalTag(t models.Table, wellID string, dates, selected []string, columns []models.DatedColumn, s models.Schema) (models.HistoricalTag, bool) {
	if len(dates) == 0 || len(selected) == 0 {
		return models.HistoricalTag{}, false
	}
	data := parser.ExtractHistory(t, wellID, columns, dates, selected, s)
	return models.HistoricalTag{
		WellID:   data.WellID,
		Dates:    data.Dates,
		Analytes: data.Analytes,
	}, true
}

// BuildBatch builds one tag per selected well that has something to report.
// Historical dates are sorted before building. Wells without data are skipped.
// A selection without wells or analytes yields no tags.
func BuildBatch(t models.Table, idx models.WellIndex, sel Selection, s models.Schema, fallback time.Time) []models.Tag {
	if len(sel.Wells) == 0 || len(sel.Analytes) == 0 {
		return nil
	}

	var batch []models.Tag
	for _, well := range sel.Wells {
		if idx.Layout == models.LayoutHistorical {
			dates := sel.Dates[well]
			if len(dates) == 0 {
				continue
			}
			columns := idx.DatesOf(well)
			if len(columns) == 0 {
				slog.Warn("no data found for well", slog.String("well", well))
				continue
			}
			tag, ok := BuildHistoricalTag(t, well, parser.SortDates(dates), sel.Analytes, columns, s)
			if ok {
				batch = append(batch, tag)
			}
			continue
		}

		data, ok := parser.ExtractWellData(t, idx, well, s, fallback)
		if !ok {
			slog.Warn("no data found for well", slog.String("well", well))
			continue
		}
		if tag, ok := BuildStandardTag(well, data.Date, data.Analytes, sel.Analytes, sel.DetectionsOnly, s); ok {
			batch = append(batch, tag)
		}
	}
	return batch
}
