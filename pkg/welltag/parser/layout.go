package parser

import (
	"github.com/ukaji3/welltag-go/pkg/welltag/models"
)

// minLayoutRows is the number of rows needed to hold the header and date rows.
const minLayoutRows = 4

// Classify determines the layout of a table from its header row alone.
// A table is historical when a non-empty well identifier repeats across the
// well columns. Tables too short to carry a date row are standard.
func Classify(t models.Table, s models.Schema) models.LayoutKind {
	if t.NumRows() < minLayoutRows || t.NumRows() <= s.DateRow || t.NumRows() <= s.HeaderRow {
		return models.LayoutStandard
	}

	seen := make(map[string]struct{})
	for col := s.FirstWellColumn; col < len(t.Rows[s.HeaderRow]); col++ {
		id := t.At(s.HeaderRow, col).String()
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return models.LayoutHistorical
		}
		seen[id] = struct{}{}
	}
	return models.LayoutStandard
}

// BuildIndex maps well identifiers to their columns for the given layout.
// A table without well columns yields an empty index.
func BuildIndex(t models.Table, layout models.LayoutKind, s models.Schema) models.WellIndex {
	idx := models.WellIndex{Layout: layout}
	if t.NumRows() <= s.HeaderRow {
		return idx
	}
	header := t.Rows[s.HeaderRow]

	if layout == models.LayoutHistorical {
		idx.Dated = make(map[string][]models.DatedColumn)
		for col := s.FirstWellColumn; col < len(header); col++ {
			id := t.At(s.HeaderRow, col).String()
			date := t.At(s.DateRow, col).String()
			if id == "" || date == "" {
				continue
			}
			if _, ok := idx.Dated[id]; !ok {
				idx.Order = append(idx.Order, id)
			}
			idx.Dated[id] = append(idx.Dated[id], models.DatedColumn{Column: col, Date: date})
		}
		return idx
	}

	idx.Columns = make(map[string]int)
	for col := s.FirstWellColumn; col < len(header); col++ {
		id := t.At(s.HeaderRow, col).String()
		if id == "" {
			continue
		}
		if _, ok := idx.Columns[id]; ok {
			continue
		}
		idx.Columns[id] = col
		idx.Order = append(idx.Order, id)
	}
	return idx
}

// ListWells returns the well identifiers offered for selection.
// Standard tables list every non-empty header cell in column order, including
// repeats; historical tables list each indexed well once.
func ListWells(t models.Table, idx models.WellIndex, s models.Schema) []string {
	if idx.Layout == models.LayoutHistorical {
		return append([]string(nil), idx.Order...)
	}
	if t.NumRows() <= s.HeaderRow {
		return nil
	}
	var wells []string
	for col := s.FirstWellColumn; col < len(t.Rows[s.HeaderRow]); col++ {
		if id := t.At(s.HeaderRow, col).String(); id != "" {
			wells = append(wells, id)
		}
	}
	return wells
}
