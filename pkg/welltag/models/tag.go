package models

// Tag is the unit of export. It is either a StandardTag or a HistoricalTag.
type Tag interface {
	// Well returns the well identifier of the tag.
	Well() string
	// Len returns the number of analyte rows.
	Len() int
	isTag()
}

// StandardAnalyte is one analyte line of a standard tag.
type StandardAnalyte struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	ExceedsAWQS bool   `json:"exceeds_awqs"`
}

// StandardTag reports one sampling event of a well.
type StandardTag struct {
	WellID   string            `json:"well_id"`
	Date     string            `json:"date"`
	Analytes []StandardAnalyte `json:"analytes"`
}

func (t StandardTag) Well() string { return t.WellID }
func (t StandardTag) Len() int     { return len(t.Analytes) }
func (StandardTag) isTag()         {}

// HistoricalTag reports a well over several sampling dates.
type HistoricalTag struct {
	WellID   string             `json:"well_id"`
	Dates    []string           `json:"dates"`
	Analytes []HistoricalSeries `json:"analytes"`
}

func (t HistoricalTag) Well() string { return t.WellID }
func (t HistoricalTag) Len() int     { return len(t.Analytes) }
func (HistoricalTag) isTag()         {}
