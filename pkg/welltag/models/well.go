package models

// LayoutKind distinguishes the two supported export layouts.
type LayoutKind string

const (
	// LayoutStandard has one sampling event (one column) per well.
	LayoutStandard LayoutKind = "standard"
	// LayoutHistorical has several dated columns per well.
	LayoutHistorical LayoutKind = "historical"
)

// DatedColumn is one sampling event of a well in a historical table.
type DatedColumn struct {
	// Column is the 0-based column index.
	Column int `json:"column"`
	// Date is the trimmed sampling date text from the date row.
	Date string `json:"date"`
}

// WellIndex maps well identifiers to the columns holding their data.
type WellIndex struct {
	// Layout is the layout the index was built for.
	Layout LayoutKind `json:"layout"`
	// Columns maps a well id to its first column (standard layout).
	Columns map[string]int `json:"columns,omitempty"`
	// Dated maps a well id to its dated columns in column order (historical layout).
	Dated map[string][]DatedColumn `json:"dated,omitempty"`
	// Order lists well ids in first-seen column order.
	Order []string `json:"order"`
}

// Column returns the standard-layout column of a well.
func (x WellIndex) Column(well string) (int, bool) {
	col, ok := x.Columns[well]
	return col, ok
}

// DatesOf returns the dated columns of a historical well, or nil.
func (x WellIndex) DatesOf(well string) []DatedColumn {
	return x.Dated[well]
}

// Len returns the number of distinct wells in the index.
func (x WellIndex) Len() int {
	return len(x.Order)
}
