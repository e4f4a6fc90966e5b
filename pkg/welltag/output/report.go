// Package output lays out tags as stacked report blocks and serializes them.
package output

import (
	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/ukaji3/welltag-go/pkg/welltag/parser"
)

// AnalyteHeading labels the first column of a block's sub-header row.
const AnalyteHeading = "Analyte"

// ReportCell is one rendered cell of a block.
type ReportCell struct {
	// Text is the rendered value ("" for blanks and missing values).
	Text string `json:"text"`
	// Exceeds marks an exceedance to highlight.
	Exceeds bool `json:"exceeds,omitempty"`
}

// Block is one tag laid out on the sheet. Rows and columns are 1-based.
type Block struct {
	// WellID is the well of the tag.
	WellID string `json:"well_id"`
	// StartRow is the sheet row of the header.
	StartRow int `json:"start_row"`
	// LastColumn is the last data column of this block.
	LastColumn int `json:"last_column"`
	// Rows holds the header, the sub-header and one row per analyte.
	// Every row is LastColumn cells wide.
	Rows [][]ReportCell `json:"rows"`
}

// EndRow returns the sheet row of the last analyte line.
func (b Block) EndRow() int {
	return b.StartRow + len(b.Rows) - 1
}

// Layout stacks tags into blocks in input order, separated by one blank row.
// Each block's width depends only on its own tag.
func Layout(tags []models.Tag) []Block {
	var blocks []Block
	row := 1
	for _, tag := range tags {
		b, ok := layoutTag(tag)
		if !ok {
			continue
		}
		b.StartRow = row
		blocks = append(blocks, b)
		row = b.EndRow() + 2
	}
	return blocks
}

func layoutTag(tag models.Tag) (Block, bool) {
	switch t := tag.(type) {
	case models.StandardTag:
		return layoutStandard(t), true
	case *models.StandardTag:
		return layoutStandard(*t), true
	case models.HistoricalTag:
		return layoutHistorical(t), true
	case *models.HistoricalTag:
		return layoutHistorical(*t), true
	default:
		return Block{}, false
	}
}

func layoutStandard(t models.StandardTag) Block {
	b := Block{WellID: t.WellID, LastColumn: 2}
	b.Rows = append(b.Rows,
		headerRow(t.WellID, b.LastColumn),
		[]ReportCell{{Text: AnalyteHeading}, {Text: t.Date}},
	)
	for _, a := range t.Analytes {
		b.Rows = append(b.Rows, []ReportCell{
			{Text: a.Name},
			{Text: a.Value, Exceeds: a.ExceedsAWQS},
		})
	}
	return b
}

func layoutHistorical(t models.HistoricalTag) Block {
	b := Block{WellID: t.WellID, LastColumn: len(t.Dates) + 1}
	sub := []ReportCell{{Text: AnalyteHeading}}
	for _, d := range t.Dates {
		sub = append(sub, ReportCell{Text: parser.DisplayDate(d)})
	}
	b.Rows = append(b.Rows, headerRow(t.WellID, b.LastColumn), sub)

	for _, a := range t.Analytes {
		row := make([]ReportCell, b.LastColumn)
		row[0] = ReportCell{Text: a.Name}
		for i := range t.Dates {
			var c ReportCell
			if i < len(a.Values) && a.Values[i] != nil {
				c.Text = *a.Values[i]
			}
			if i < len(a.Exceeds) {
				c.Exceeds = a.Exceeds[i]
			}
			row[i+1] = c
		}
		b.Rows = append(b.Rows, row)
	}
	return b
}

func headerRow(wellID string, width int) []ReportCell {
	row := make([]ReportCell, width)
	row[0] = ReportCell{Text: wellID}
	return row
}

// RowCount returns the number of sheet rows used by the blocks, separators included.
func RowCount(blocks []Block) int {
	if len(blocks) == 0 {
		return 0
	}
	return blocks[len(blocks)-1].EndRow()
}
