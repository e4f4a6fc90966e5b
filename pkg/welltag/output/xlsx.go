package output

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/xuri/excelize/v2"
)

// ColumnPadding is added to the longest text of a column to get its width.
const ColumnPadding = 2

// Style holds the presentation settings of the report.
type Style struct {
	// HeaderFill is the background of header and sub-header rows (hex RGB).
	HeaderFill string
	// ExceedanceFill is the background of exceeding values (hex RGB).
	ExceedanceFill string
	// BorderColor is the color of the thin block borders (hex RGB).
	BorderColor string
}

// DefaultStyle returns light grey headings and a darker grey exceedance highlight.
func DefaultStyle() Style {
	return Style{
		HeaderFill:     "F0F0F0",
		ExceedanceFill: "D3D3D3",
		BorderColor:    "000000",
	}
}

// styleIDs are the registered cell styles of one workbook.
type styleIDs struct {
	header    int
	subLabel  int
	subValue  int
	name      int
	value     int
	exceeding int
}

// NewWorkbook writes blocks to the first sheet of a new workbook.
// The caller owns the returned file and must close it.
func NewWorkbook(blocks []Block, st Style) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	ids, err := registerStyles(f, st)
	if err != nil {
		f.Close()
		return nil, err
	}

	for _, b := range blocks {
		if err := writeBlock(f, sheet, b, ids); err != nil {
			f.Close()
			return nil, fmt.Errorf("write block for well %q: %w", b.WellID, err)
		}
	}

	if err := fitColumns(f, sheet, blocks); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// SaveXLSX lays out tags and saves the report to path.
func SaveXLSX(path string, tags []models.Tag, st Style) error {
	f, err := NewWorkbook(Layout(tags), st)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// WriteXLSX lays out tags and writes the report to w.
func WriteXLSX(w io.Writer, tags []models.Tag, st Style) error {
	f, err := NewWorkbook(Layout(tags), st)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func registerStyles(f *excelize.File, st Style) (styleIDs, error) {
	border := []excelize.Border{
		{Type: "left", Color: st.BorderColor, Style: 1},
		{Type: "right", Color: st.BorderColor, Style: 1},
		{Type: "top", Color: st.BorderColor, Style: 1},
		{Type: "bottom", Color: st.BorderColor, Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	headerFill := excelize.Fill{Type: "pattern", Color: []string{st.HeaderFill}, Pattern: 1}
	exceedFill := excelize.Fill{Type: "pattern", Color: []string{st.ExceedanceFill}, Pattern: 1}

	var ids styleIDs
	for _, d := range []struct {
		dst   *int
		style *excelize.Style
	}{
		{&ids.header, &excelize.Style{Border: border, Fill: headerFill, Alignment: center}},
		{&ids.subLabel, &excelize.Style{Border: border, Fill: headerFill}},
		{&ids.subValue, &excelize.Style{Border: border, Fill: headerFill, Alignment: center}},
		{&ids.name, &excelize.Style{Border: border}},
		{&ids.value, &excelize.Style{Border: border, Alignment: center}},
		{&ids.exceeding, &excelize.Style{Border: border, Fill: exceedFill, Alignment: center, Font: &excelize.Font{Bold: true}}},
	} {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return styleIDs{}, fmt.Errorf("register style: %w", err)
		}
		*d.dst = id
	}
	return ids, nil
}

func writeBlock(f *excelize.File, sheet string, b Block, ids styleIDs) error {
	for i, cells := range b.Rows {
		rowNum := b.StartRow + i
		for j, c := range cells {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, c.Text); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, cellStyle(i, j, c, ids)); err != nil {
				return err
			}
		}
	}

	start, err := excelize.CoordinatesToCellName(1, b.StartRow)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(b.LastColumn, b.StartRow)
	if err != nil {
		return err
	}
	if b.LastColumn > 1 {
		return f.MergeCell(sheet, start, end)
	}
	return nil
}

func cellStyle(row, col int, c ReportCell, ids styleIDs) int {
	switch {
	case row == 0:
		return ids.header
	case row == 1 && col == 0:
		return ids.subLabel
	case row == 1:
		return ids.subValue
	case col == 0:
		return ids.name
	case c.Exceeds:
		return ids.exceeding
	default:
		return ids.value
	}
}

// ColumnWidths returns the width of every used column, indexed from 1.
// Covered cells of the merged header are ignored; its anchor in column 1 counts.
func ColumnWidths(blocks []Block) map[int]float64 {
	longest := make(map[int]int)
	for _, b := range blocks {
		for i, cells := range b.Rows {
			for j, c := range cells {
				if i == 0 && j > 0 {
					continue
				}
				col := j + 1
				if n := utf8.RuneCountInString(c.Text); n >= longest[col] {
					longest[col] = n
				}
			}
		}
	}
	widths := make(map[int]float64, len(longest))
	for col, n := range longest {
		widths[col] = float64(n + ColumnPadding)
	}
	return widths
}

func fitColumns(f *excelize.File, sheet string, blocks []Block) error {
	for col, width := range ColumnWidths(blocks) {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
