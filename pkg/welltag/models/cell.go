// Package models defines data structures for well sample extraction and tag reports.
package models

import (
	"strconv"
	"strings"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	// CellEmpty is a missing or blank cell.
	CellEmpty CellKind = iota
	// CellText is a cell holding free text.
	CellText
	// CellNumber is a cell holding a numeric value.
	CellNumber
)

// Cell is a single untyped grid value.
type Cell struct {
	// Kind is the variant held by the cell.
	Kind CellKind `json:"kind"`
	// Text is the source text. For numbers it keeps the original rendering ("0.50").
	Text string `json:"text,omitempty"`
	// Num is the numeric value when Kind is CellNumber.
	Num float64 `json:"num,omitempty"`
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: CellNumber, Num: v}
}

// ParseCell classifies raw source text into a Cell.
// An empty string is Empty, text parseable as a float is a Number that keeps
// its source rendering, and anything else is Text. Whitespace-only text is a
// present Text cell; IsEmpty still reports it as blank.
func ParseCell(s string) Cell {
	if s == "" {
		return Empty()
	}
	trimmed := strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Text: trimmed, Num: v}
	}
	return Text(s)
}

// IsEmpty reports whether the cell is missing or blank.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || (c.Kind == CellText && strings.TrimSpace(c.Text) == "")
}

// String returns the trimmed display text of the cell. Empty cells yield "".
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		if c.Text != "" {
			return strings.TrimSpace(c.Text)
		}
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellText:
		return strings.TrimSpace(c.Text)
	default:
		return ""
	}
}

// Float returns the numeric value of the cell.
// Numbers are returned directly and text is parsed after trimming. On any
// failure the fallback is (0, false); callers treat that as "no value".
func (c Cell) Float() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Num, true
	case CellText:
		return ParseFloat(c.Text)
	default:
		return 0, false
	}
}

// ParseFloat parses trimmed text as a float64, returning (0, false) on failure.
func ParseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
