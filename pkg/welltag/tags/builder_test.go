package tags

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/ukaji3/welltag-go/pkg/welltag/parser"
)

var fallback = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func table(header, dates []string, analytes ...[]string) models.Table {
	rows := [][]string{header, {}, {}, dates, {}, {}}
	return models.NewTable("sample", append(rows, analytes...))
}

func TestBuildStandardTag(t *testing.T) {
	s := models.DefaultSchema()
	records := []models.AnalyteRecord{
		{Name: "Arsenic", Value: "ND", NonDetect: true},
		{Name: "Lead", Value: "20", Exceeds: true},
		{Name: "Zinc", Value: "3"},
	}

	t.Run("selection order wins", func(t *testing.T) {
		tag, ok := BuildStandardTag("MW-1", "May 2023", records, []string{"Zinc", "Arsenic", "Lead"}, false, s)
		require.True(t, ok)
		assert.Equal(t, models.StandardTag{
			WellID: "MW-1",
			Date:   "May 2023",
			Analytes: []models.StandardAnalyte{
				{Name: "Zinc", Value: "3"},
				{Name: "Arsenic", Value: "ND"},
				{Name: "Lead", Value: "20", ExceedsAWQS: true},
			},
		}, tag)
	})

	t.Run("detections only drops non-detects", func(t *testing.T) {
		tag, ok := BuildStandardTag("MW-1", "May 2023", records, []string{"Arsenic", "Lead"}, true, s)
		require.True(t, ok)
		require.Len(t, tag.Analytes, 1)
		assert.Equal(t, "Lead", tag.Analytes[0].Name)
	})

	t.Run("detections only drops a literal non-detect value", func(t *testing.T) {
		literal := []models.AnalyteRecord{
			{Name: "Arsenic", Raw: "ND", Value: "ND"},
			{Name: "Lead", Raw: "20", Value: "20"},
		}
		tag, ok := BuildStandardTag("MW-1", "May 2023", literal, []string{"Arsenic", "Lead"}, true, s)
		require.True(t, ok)
		assert.Equal(t, []models.StandardAnalyte{{Name: "Lead", Value: "20"}}, tag.Analytes)
	})

	t.Run("repeated name uses the last record", func(t *testing.T) {
		dup := []models.AnalyteRecord{
			{Name: "Lead", Raw: "1", Value: "1"},
			{Name: "Lead", Raw: "30", Value: "30", Exceeds: true},
		}
		tag, ok := BuildStandardTag("MW-1", "May 2023", dup, []string{"Lead"}, false, s)
		require.True(t, ok)
		assert.Equal(t, []models.StandardAnalyte{{Name: "Lead", Value: "30", ExceedsAWQS: true}}, tag.Analytes)
	})

	t.Run("nothing left to report", func(t *testing.T) {
		_, ok := BuildStandardTag("MW-1", "May 2023", records, []string{"Arsenic"}, true, s)
		assert.False(t, ok)

		_, ok = BuildStandardTag("MW-1", "May 2023", records, []string{"Mercury"}, false, s)
		assert.False(t, ok)

		_, ok = BuildStandardTag("MW-1", "May 2023", records, nil, false, s)
		assert.False(t, ok)
	})
}

func TestBuildHistoricalTag(t *testing.T) {
	s := models.DefaultSchema()
	tbl := table(
		[]string{"", "", "", "MW-1", "MW-1"},
		[]string{"", "", "", "2023-05-01 00:00:00", "2022-11-01 00:00:00"},
		[]string{"Arsenic", "10", "", "12", "3U"},
	)
	idx := parser.BuildIndex(tbl, parser.Classify(tbl, s), s)
	require.Equal(t, models.LayoutHistorical, idx.Layout)

	dates := parser.SortDates([]string{"2023-05-01 00:00:00", "2022-11-01 00:00:00"})
	tag, ok := BuildHistoricalTag(tbl, "MW-1", dates, []string{"Arsenic"}, idx.DatesOf("MW-1"), s)
	require.True(t, ok)

	assert.Equal(t, []string{"2022-11-01 00:00:00", "2023-05-01 00:00:00"}, tag.Dates)
	require.Len(t, tag.Analytes, 1)
	require.Len(t, tag.Analytes[0].Values, 2)
	assert.Equal(t, "ND", *tag.Analytes[0].Values[0])
	assert.Equal(t, "12", *tag.Analytes[0].Values[1])
	assert.Equal(t, []bool{false, true}, tag.Analytes[0].Exceeds)

	_, ok = BuildHistoricalTag(tbl, "MW-1", nil, []string{"Arsenic"}, idx.DatesOf("MW-1"), s)
	assert.False(t, ok, "no dates selected")

	_, ok = BuildHistoricalTag(tbl, "MW-1", dates, nil, idx.DatesOf("MW-1"), s)
	assert.False(t, ok, "no analytes selected")
}

func TestBuildBatchStandard(t *testing.T) {
	s := models.DefaultSchema()
	tbl := table(
		[]string{"", "", "", "WellA", "WellB"},
		[]string{"", "", "", "2023-05-01 00:00:00", "2023-05-01 00:00:00"},
		[]string{"Arsenic", "10", "", "5U", "15"},
	)
	idx := parser.BuildIndex(tbl, parser.Classify(tbl, s), s)

	batch := BuildBatch(tbl, idx, Selection{
		Wells:          []string{"WellA", "WellB", "Missing"},
		Analytes:       []string{"Arsenic"},
		DetectionsOnly: true,
	}, s, fallback)

	require.Len(t, batch, 1)
	tag, ok := batch[0].(models.StandardTag)
	require.True(t, ok)
	assert.Equal(t, "WellB", tag.WellID)
	assert.Equal(t, "May 2023", tag.Date)
	assert.Equal(t, []models.StandardAnalyte{{Name: "Arsenic", Value: "15", ExceedsAWQS: true}}, tag.Analytes)
}

func TestBuildBatchStandardLiteralNonDetect(t *testing.T) {
	s := models.DefaultSchema()
	tbl := table(
		[]string{"", "", "", "WellA"},
		[]string{"", "", "", "2023-05-01 00:00:00"},
		[]string{"Arsenic", "10", "", "ND"},
		[]string{"Lead", "15", "", "20"},
	)
	idx := parser.BuildIndex(tbl, parser.Classify(tbl, s), s)

	batch := BuildBatch(tbl, idx, Selection{
		Wells:          []string{"WellA"},
		Analytes:       []string{"Arsenic", "Lead"},
		DetectionsOnly: true,
	}, s, fallback)

	require.Len(t, batch, 1)
	tag := batch[0].(models.StandardTag)
	assert.Equal(t, []models.StandardAnalyte{{Name: "Lead", Value: "20", ExceedsAWQS: true}}, tag.Analytes)
}

func TestBuildBatchHistoricalUnknownWell(t *testing.T) {
	s := models.DefaultSchema()
	tbl := table(
		[]string{"", "", "", "MW-1", "MW-1"},
		[]string{"", "", "", "2023-05-01 00:00:00", "2022-11-01 00:00:00"},
		[]string{"Arsenic", "10", "", "12", "3"},
	)
	idx := parser.BuildIndex(tbl, parser.Classify(tbl, s), s)

	batch := BuildBatch(tbl, idx, Selection{
		Wells:    []string{"MW-9", "MW-1"},
		Analytes: []string{"Arsenic"},
		Dates: map[string][]string{
			"MW-9": {"2023-05-01 00:00:00"},
			"MW-1": {"2023-05-01 00:00:00"},
		},
	}, s, fallback)

	require.Len(t, batch, 1, "a well missing from the index yields no tag")
	assert.Equal(t, "MW-1", batch[0].Well())
}

func TestBuildBatchHistorical(t *testing.T) {
	s := models.DefaultSchema()
	tbl := table(
		[]string{"", "", "", "MW-1", "MW-1", "MW-2"},
		[]string{"", "", "", "2023-05-01 00:00:00", "2022-11-01 00:00:00", "2023-05-01 00:00:00"},
		[]string{"Arsenic", "10", "", "12", "3", "1"},
	)
	idx := parser.BuildIndex(tbl, parser.Classify(tbl, s), s)

	batch := BuildBatch(tbl, idx, Selection{
		Wells:    []string{"MW-1", "MW-2"},
		Analytes: []string{"Arsenic"},
		Dates: map[string][]string{
			"MW-1": {"2023-05-01 00:00:00", "2022-11-01 00:00:00"},
		},
	}, s, fallback)

	require.Len(t, batch, 1, "MW-2 has no selected dates")
	tag, ok := batch[0].(models.HistoricalTag)
	require.True(t, ok)
	assert.Equal(t, "MW-1", tag.Well())
	assert.Equal(t, []string{"2022-11-01 00:00:00", "2023-05-01 00:00:00"}, tag.Dates)
}

func TestBuildBatchEmptySelection(t *testing.T) {
	s := models.DefaultSchema()
	tbl := table([]string{"", "", "", "WellA"}, []string{"", "", "", "2023-05-01"}, []string{"Arsenic", "10", "", "1"})
	idx := parser.BuildIndex(tbl, models.LayoutStandard, s)

	assert.Nil(t, BuildBatch(tbl, idx, Selection{Analytes: []string{"Arsenic"}}, s, fallback))
	assert.Nil(t, BuildBatch(tbl, idx, Selection{Wells: []string{"WellA"}}, s, fallback))
}
