package analysis

import (
	"github.com/mvolkov/seo-tracker/app/database"
)

// MetricComparison holds one metric's value in each period and the
// difference between them. Nil means "no data" for that side; a nil on
// either side makes the delta nil too. No data is never reported as
// zero.
type MetricComparison struct {
	A     *float64 `json:"a"`
	B     *float64 `json:"b"`
	Delta *float64 `json:"delta"`
}

// Comparison is the month-over-month result for one entity across the
// four canonical metrics.
type Comparison struct {
	Clicks      MetricComparison `json:"clicks"`
	Impressions MetricComparison `json:"impressions"`
	CTR         MetricComparison `json:"ctr"`
	Position    MetricComparison `json:"position"`
}

// PeriodTotals aggregates the duplicate rows an append-only store
// accumulates for one (entity, period) pair. Clicks and impressions
// sum; CTR is recomputed from the sums; Position averages the present
// values only.
type PeriodTotals struct {
	Clicks      int
	Impressions int
	CTR         *float64
	Position    *float64
}

// Aggregate folds a period's rows into totals. Returns nil for an
// empty row set: a period with no rows has no data, which callers must
// keep distinct from a period that genuinely scored zero.
func Aggregate(rows []database.MetricRecord) *PeriodTotals {
	if len(rows) == 0 {
		return nil
	}

	totals := &PeriodTotals{}
	positionSum := 0.0
	positionCount := 0

	for _, row := range rows {
		totals.Clicks += row.Clicks
		totals.Impressions += row.Impressions
		if row.Position != nil {
			positionSum += *row.Position
			positionCount++
		}
	}

	if totals.Impressions > 0 {
		ctr := float64(totals.Clicks) / float64(totals.Impressions) * 100
		totals.CTR = &ctr
	}

	if positionCount > 0 {
		position := positionSum / float64(positionCount)
		totals.Position = &position
	}

	return totals
}

// Compare builds the month-over-month comparison from the rows each
// period holds for one entity.
func Compare(rowsA, rowsB []database.MetricRecord) Comparison {
	totalsA := Aggregate(rowsA)
	totalsB := Aggregate(rowsB)

	return Comparison{
		Clicks:      compareValues(clicksValue(totalsA), clicksValue(totalsB)),
		Impressions: compareValues(impressionsValue(totalsA), impressionsValue(totalsB)),
		CTR:         compareValues(ctrValue(totalsA), ctrValue(totalsB)),
		Position:    compareValues(positionValue(totalsA), positionValue(totalsB)),
	}
}

func compareValues(a, b *float64) MetricComparison {
	comparison := MetricComparison{A: a, B: b}
	if a != nil && b != nil {
		delta := *b - *a
		comparison.Delta = &delta
	}
	return comparison
}

func clicksValue(totals *PeriodTotals) *float64 {
	if totals == nil {
		return nil
	}
	value := float64(totals.Clicks)
	return &value
}

func impressionsValue(totals *PeriodTotals) *float64 {
	if totals == nil {
		return nil
	}
	value := float64(totals.Impressions)
	return &value
}

func ctrValue(totals *PeriodTotals) *float64 {
	if totals == nil {
		return nil
	}
	return totals.CTR
}

func positionValue(totals *PeriodTotals) *float64 {
	if totals == nil {
		return nil
	}
	return totals.Position
}
