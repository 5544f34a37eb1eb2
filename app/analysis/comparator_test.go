package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvolkov/seo-tracker/app/database"
)

func floatPtr(v float64) *float64 { return &v }

func record(clicks, impressions int, ctr, position *float64) database.MetricRecord {
	return database.MetricRecord{
		Name:        "shoes",
		Clicks:      clicks,
		Impressions: impressions,
		CTR:         ctr,
		Position:    position,
	}
}

func TestAggregate_EmptyIsNil(t *testing.T) {
	assert.Nil(t, Aggregate(nil), "a period with no rows has no data")
}

func TestAggregate_SumsAndRecomputesCTR(t *testing.T) {
	rows := []database.MetricRecord{
		record(100, 1000, floatPtr(10), floatPtr(2)),
		record(50, 1000, floatPtr(5), floatPtr(4)),
	}

	totals := Aggregate(rows)
	require.NotNil(t, totals)

	assert.Equal(t, 150, totals.Clicks)
	assert.Equal(t, 2000, totals.Impressions)
	// CTR is recomputed from the sums, not averaged
	require.NotNil(t, totals.CTR)
	assert.InDelta(t, 7.5, *totals.CTR, 1e-9)
	// Position is the mean of present values
	require.NotNil(t, totals.Position)
	assert.InDelta(t, 3.0, *totals.Position, 1e-9)
}

func TestAggregate_ZeroImpressionsLeavesCTRUndefined(t *testing.T) {
	rows := []database.MetricRecord{record(0, 0, nil, nil)}

	totals := Aggregate(rows)
	require.NotNil(t, totals)
	assert.Nil(t, totals.CTR)
	assert.Nil(t, totals.Position)
}

func TestAggregate_PositionAveragesPresentValuesOnly(t *testing.T) {
	rows := []database.MetricRecord{
		record(1, 10, nil, floatPtr(4)),
		record(1, 10, nil, nil),
		record(1, 10, nil, floatPtr(8)),
	}

	totals := Aggregate(rows)
	require.NotNil(t, totals)
	require.NotNil(t, totals.Position)
	assert.InDelta(t, 6.0, *totals.Position, 1e-9)
}

func TestCompare_ClicksDelta(t *testing.T) {
	rowsA := []database.MetricRecord{record(100, 1000, nil, nil)}
	rowsB := []database.MetricRecord{record(150, 1200, nil, nil)}

	comparison := Compare(rowsA, rowsB)

	require.NotNil(t, comparison.Clicks.A)
	require.NotNil(t, comparison.Clicks.B)
	require.NotNil(t, comparison.Clicks.Delta)
	assert.Equal(t, 100.0, *comparison.Clicks.A)
	assert.Equal(t, 150.0, *comparison.Clicks.B)
	assert.Equal(t, 50.0, *comparison.Clicks.Delta)
}

func TestCompare_MissingPeriodPropagatesAsNoData(t *testing.T) {
	rowsA := []database.MetricRecord{record(100, 1000, floatPtr(10), floatPtr(3))}

	comparison := Compare(rowsA, nil)

	require.NotNil(t, comparison.Clicks.A)
	assert.Nil(t, comparison.Clicks.B, "absent period must read as no data, not zero")
	assert.Nil(t, comparison.Clicks.Delta, "delta is undefined when either side is")
	assert.Nil(t, comparison.CTR.B)
	assert.Nil(t, comparison.CTR.Delta)
	assert.Nil(t, comparison.Position.Delta)
}

func TestCompare_UndefinedCTROnOneSide(t *testing.T) {
	// Period A has impressions, period B has none: B's CTR is undefined
	// even though B has rows.
	rowsA := []database.MetricRecord{record(10, 100, nil, nil)}
	rowsB := []database.MetricRecord{record(0, 0, nil, nil)}

	comparison := Compare(rowsA, rowsB)

	require.NotNil(t, comparison.CTR.A)
	assert.Nil(t, comparison.CTR.B)
	assert.Nil(t, comparison.CTR.Delta)

	// Clicks are still defined on both sides
	require.NotNil(t, comparison.Clicks.Delta)
	assert.Equal(t, -10.0, *comparison.Clicks.Delta)
}

func TestCompare_DuplicateRowsAggregateBeforeComparing(t *testing.T) {
	rowsA := []database.MetricRecord{
		record(40, 400, nil, nil),
		record(60, 600, nil, nil),
	}
	rowsB := []database.MetricRecord{record(150, 1000, nil, nil)}

	comparison := Compare(rowsA, rowsB)

	require.NotNil(t, comparison.Clicks.Delta)
	assert.Equal(t, 50.0, *comparison.Clicks.Delta)
	require.NotNil(t, comparison.Impressions.Delta)
	assert.Equal(t, 0.0, *comparison.Impressions.Delta)
}
