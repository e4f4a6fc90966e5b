package models

import (
	"errors"
	"fmt"
)

// Schema holds the positional contract of a sample export. All offsets are 0-based.
type Schema struct {
	// HeaderRow is the row carrying well identifiers.
	HeaderRow int `yaml:"header_row" json:"header_row"`
	// DateRow is the row carrying sampling dates.
	DateRow int `yaml:"date_row" json:"date_row"`
	// FirstAnalyteRow is the first row holding an analyte.
	FirstAnalyteRow int `yaml:"first_analyte_row" json:"first_analyte_row"`
	// NameColumn holds analyte names.
	NameColumn int `yaml:"name_column" json:"name_column"`
	// ThresholdColumn holds the AWQS threshold.
	ThresholdColumn int `yaml:"threshold_column" json:"threshold_column"`
	// FirstWellColumn is the first column holding well data.
	FirstWellColumn int `yaml:"first_well_column" json:"first_well_column"`
	// StopToken ends the analyte block when found in the name column.
	StopToken string `yaml:"stop_token" json:"stop_token"`
	// NonDetectToken marks a non-detect when contained in a raw value.
	NonDetectToken string `yaml:"non_detect_token" json:"non_detect_token"`
	// NonDetectDisplay replaces non-detect values.
	NonDetectDisplay string `yaml:"non_detect_display" json:"non_detect_display"`
}

// DefaultSchema returns the layout of the lab sample exports.
func DefaultSchema() Schema {
	return Schema{
		HeaderRow:        0,
		DateRow:          3,
		FirstAnalyteRow:  6,
		NameColumn:       0,
		ThresholdColumn:  1,
		FirstWellColumn:  3,
		StopToken:        "Notes:",
		NonDetectToken:   "U",
		NonDetectDisplay: "ND",
	}
}

// Validate checks that offsets are usable.
func (s Schema) Validate() error {
	var errs []error
	offsets := []struct {
		name string
		v    int
	}{
		{"header_row", s.HeaderRow},
		{"date_row", s.DateRow},
		{"first_analyte_row", s.FirstAnalyteRow},
		{"name_column", s.NameColumn},
		{"threshold_column", s.ThresholdColumn},
		{"first_well_column", s.FirstWellColumn},
	}
	for _, o := range offsets {
		if o.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", o.name, o.v))
		}
	}
	if s.FirstWellColumn <= s.NameColumn || s.FirstWellColumn <= s.ThresholdColumn {
		errs = append(errs, fmt.Errorf("first_well_column (%d) must follow the name and threshold columns", s.FirstWellColumn))
	}
	if s.FirstAnalyteRow <= s.HeaderRow || s.FirstAnalyteRow <= s.DateRow {
		errs = append(errs, fmt.Errorf("first_analyte_row (%d) must follow the header and date rows", s.FirstAnalyteRow))
	}
	if s.NonDetectToken == "" {
		errs = append(errs, errors.New("non_detect_token must not be empty"))
	}
	return errors.Join(errs...)
}
