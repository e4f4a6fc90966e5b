package models

// AnalyteRecord is one analyte measurement read from a single well column.
type AnalyteRecord struct {
	// Name is the analyte name from the name column.
	Name string `json:"name"`
	// Raw is the trimmed source text of the value cell, qualifiers included.
	Raw string `json:"raw_value"`
	// Value is the normalized display value ("ND" for non-detects).
	Value string `json:"value"`
	// NonDetect reports that the raw value carried the non-detect qualifier.
	NonDetect bool `json:"non_detect"`
	// Exceeds reports that the value is strictly greater than the AWQS threshold.
	Exceeds bool `json:"exceeds"`
}

// WellData is the content of one standard-layout well column.
type WellData struct {
	// Date is the sampling month and year ("Jan 2006").
	Date string `json:"date"`
	// Analytes holds the records in source order.
	Analytes []AnalyteRecord `json:"analytes"`
}

// Find returns the first record with the given name.
func (w WellData) Find(name string) (AnalyteRecord, bool) {
	for _, a := range w.Analytes {
		if a.Name == name {
			return a, true
		}
	}
	return AnalyteRecord{}, false
}

// HistoricalSeries is one analyte across the selected dates of a well.
type HistoricalSeries struct {
	// Name is the analyte name.
	Name string `json:"name"`
	// Values is aligned to the dates; nil means no matching column or analyte.
	Values []*string `json:"values"`
	// Exceeds is aligned to the dates.
	Exceeds []bool `json:"exceeds"`
}

// HistoricalWellData is the pivot of one well over several sampling dates.
type HistoricalWellData struct {
	// WellID is the well identifier.
	WellID string `json:"well_id"`
	// Dates is the ordered list of sampling date strings.
	Dates []string `json:"dates"`
	// Analytes holds one series per analyte.
	Analytes []HistoricalSeries `json:"analytes"`
}
