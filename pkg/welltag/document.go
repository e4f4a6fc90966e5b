package welltag

import (
	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/ukaji3/welltag-go/pkg/welltag/parser"
	"github.com/ukaji3/welltag-go/pkg/welltag/tags"
)

// Document is a loaded sample export with its layout and well index.
// All queries are read-only and may be repeated freely.
type Document struct {
	table  models.Table
	layout models.LayoutKind
	index  models.WellIndex
	opts   Options
}

// DateOption is a selectable sampling date of a historical well.
type DateOption struct {
	Column int    `json:"column"`
	Date   string `json:"date"`
	Label  string `json:"label"`
}

// Open interprets an already decoded table.
func Open(table models.Table, opts Options) *Document {
	layout := parser.Classify(table, opts.Schema)
	return &Document{
		table:  table,
		layout: layout,
		index:  parser.BuildIndex(table, layout, opts.Schema),
		opts:   opts,
	}
}

// Table returns the underlying grid.
func (d *Document) Table() models.Table { return d.table }

// Layout returns the detected layout.
func (d *Document) Layout() models.LayoutKind { return d.layout }

// Index returns the well index.
func (d *Document) Index() models.WellIndex { return d.index }

// Wells returns the well ids offered for selection.
func (d *Document) Wells() []string {
	return parser.ListWells(d.table, d.index, d.opts.Schema)
}

// Analytes returns the analyte names of a well, or nil for an unknown well.
func (d *Document) Analytes(well string) []string {
	return parser.AnalyteNames(d.table, d.index, well, d.opts.Schema)
}

// Dates returns the sampling dates of a historical well in column order.
// Standard documents have no selectable dates.
func (d *Document) Dates(well string) []DateOption {
	var out []DateOption
	for _, c := range d.index.DatesOf(well) {
		out = append(out, DateOption{Column: c.Column, Date: c.Date, Label: parser.DisplayDate(c.Date)})
	}
	return out
}

// WellData returns the records of a standard-layout well.
func (d *Document) WellData(well string) (models.WellData, bool) {
	return parser.ExtractWellData(d.table, d.index, well, d.opts.Schema, d.opts.FallbackDate())
}

// History returns the pivot of a historical well over dates, sorted
// chronologically, for the given analytes.
func (d *Document) History(well string, dates, analytes []string) models.HistoricalWellData {
	return parser.ExtractHistory(d.table, well, d.index.DatesOf(well), parser.SortDates(dates), analytes, d.opts.Schema)
}

// BuildTags builds the tags of one save action.
func (d *Document) BuildTags(sel tags.Selection) []models.Tag {
	return tags.BuildBatch(d.table, d.index, sel, d.opts.Schema, d.opts.FallbackDate())
}
