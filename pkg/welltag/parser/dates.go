package parser

import (
	"sort"
	"strings"
	"time"

	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/xuri/excelize/v2"
)

// Month-year renderings used in tags and report headings.
const (
	ShortMonthYear = "Jan 2006"
	LongMonthYear  = "January 2006"
)

// dateLayouts are tried in order when parsing sampling dates.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06 15:04",
	"1/2/06",
	"01-02-06",
	"2-Jan-06",
	"02-Jan-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2006",
	"Jan 2006",
}

// Excel serial day numbers accepted as dates (1927-05-18 through 9999-12-31).
const (
	minExcelSerial = 10000
	maxExcelSerial = 2958465
)

// ParseDate parses sampling date text. Numeric text within the Excel serial
// range is read as an Excel date. It returns false when nothing matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if v, ok := models.ParseFloat(s); ok && v >= minExcelSerial && v <= maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(v, false); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthYear formats a sampling date as "Jan 2006", using fallback when s does not parse.
func MonthYear(s string, fallback time.Time) string {
	if t, ok := ParseDate(s); ok {
		return t.Format(ShortMonthYear)
	}
	return fallback.Format(ShortMonthYear)
}

// DisplayDate formats a sampling date as "January 2006", or returns s
// unchanged when it does not parse.
func DisplayDate(s string) string {
	if t, ok := ParseDate(s); ok {
		return t.Format(LongMonthYear)
	}
	return s
}

// SortDates returns a copy of dates in chronological order. If any date fails
// to parse, the whole list is sorted lexically instead.
func SortDates(dates []string) []string {
	out := append([]string(nil), dates...)
	parsed := make(map[string]time.Time, len(out))
	for _, d := range out {
		t, ok := ParseDate(d)
		if !ok {
			sort.Strings(out)
			return out
		}
		parsed[d] = t
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parsed[out[i]].Before(parsed[out[j]])
	})
	return out
}
