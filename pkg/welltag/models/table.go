package models

// Table is a decoded grid of rows by untyped cells, indexed from 0.
// It is owned by the caller; this module only reads it.
type Table struct {
	// Name is the source name (file name without path), informational only.
	Name string `json:"name,omitempty"`
	// Rows holds the grid. Rows may be ragged.
	Rows [][]Cell `json:"rows"`
}

// NewTable builds a Table from raw text rows, classifying every cell with ParseCell.
func NewTable(name string, rows [][]string) Table {
	t := Table{Name: name, Rows: make([][]Cell, len(rows))}
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = ParseCell(v)
		}
		t.Rows[i] = cells
	}
	return t
}

// NumRows returns the number of rows.
func (t Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the width of the widest row.
func (t Table) NumCols() int {
	n := 0
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// At returns the cell at (row, col). Out-of-range coordinates yield an empty cell.
func (t Table) At(row, col int) Cell {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return Empty()
	}
	return t.Rows[row][col]
}
