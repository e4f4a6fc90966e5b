package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/welltag-go/pkg/welltag/models"
)

func strPtr(s string) *string { return &s }

func sampleTags() []models.Tag {
	return []models.Tag{
		models.StandardTag{
			WellID: "WellB",
			Date:   "May 2023",
			Analytes: []models.StandardAnalyte{
				{Name: "Arsenic", Value: "15", ExceedsAWQS: true},
				{Name: "Lead", Value: "ND"},
			},
		},
		models.HistoricalTag{
			WellID: "MW-1",
			Dates:  []string{"2022-11-01 00:00:00", "2023-05-01 00:00:00", "Q3 resample"},
			Analytes: []models.HistoricalSeries{
				{Name: "Arsenic", Values: []*string{strPtr("ND"), strPtr("12"), nil}, Exceeds: []bool{false, true, false}},
			},
		},
	}
}

func TestLayoutStacksBlocks(t *testing.T) {
	blocks := Layout(sampleTags())
	require.Len(t, blocks, 2)

	std := blocks[0]
	assert.Equal(t, 1, std.StartRow)
	assert.Equal(t, 2, std.LastColumn)
	assert.Len(t, std.Rows, 4, "header, sub-header and two analytes")
	assert.Equal(t, 4, std.EndRow())

	hist := blocks[1]
	assert.Equal(t, 6, hist.StartRow, "one blank separator row")
	assert.Equal(t, 4, hist.LastColumn)
	assert.Len(t, hist.Rows, 3)
	assert.Equal(t, 8, RowCount(blocks))
}

func TestLayoutStandardRows(t *testing.T) {
	b := Layout(sampleTags()[:1])[0]

	assert.Equal(t, []ReportCell{{Text: "WellB"}, {}}, b.Rows[0])
	assert.Equal(t, []ReportCell{{Text: AnalyteHeading}, {Text: "May 2023"}}, b.Rows[1])
	assert.Equal(t, []ReportCell{{Text: "Arsenic"}, {Text: "15", Exceeds: true}}, b.Rows[2])
	assert.Equal(t, []ReportCell{{Text: "Lead"}, {Text: "ND"}}, b.Rows[3])
}

func TestLayoutHistoricalRows(t *testing.T) {
	b := Layout(sampleTags()[1:])[0]

	assert.Equal(t, []ReportCell{{Text: "MW-1"}, {}, {}, {}}, b.Rows[0])
	assert.Equal(t, []ReportCell{
		{Text: AnalyteHeading},
		{Text: "November 2022"},
		{Text: "May 2023"},
		{Text: "Q3 resample"},
	}, b.Rows[1])
	assert.Equal(t, []ReportCell{
		{Text: "Arsenic"},
		{Text: "ND"},
		{Text: "12", Exceeds: true},
		{},
	}, b.Rows[2])
}

func TestLayoutEmpty(t *testing.T) {
	assert.Empty(t, Layout(nil))
	assert.Equal(t, 0, RowCount(nil))
}

func TestColumnWidths(t *testing.T) {
	blocks := Layout([]models.Tag{
		models.StandardTag{
			WellID:   "A-very-long-well-identifier",
			Date:     "May 2023",
			Analytes: []models.StandardAnalyte{{Name: "Tetrachloroethene", Value: "1.5"}},
		},
	})

	widths := ColumnWidths(blocks)
	assert.Equal(t, float64(len("A-very-long-well-identifier")+ColumnPadding), widths[1])
	assert.Equal(t, float64(len("May 2023")+ColumnPadding), widths[2])
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleTags(), false)
	require.NoError(t, err)

	var decoded []struct {
		Kind string `json:"kind"`
		Tag  struct {
			WellID string `json:"well_id"`
		} `json:"tag"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "standard", decoded[0].Kind)
	assert.Equal(t, "WellB", decoded[0].Tag.WellID)
	assert.Equal(t, "historical", decoded[1].Kind)
}
