package inventory

import "github.com/shopspring/decimal"

// Stats summarizes the records on one sheet.
type Stats struct {
	recordCount int64
	totalQty    int64
	totalValue  decimal.Decimal
	avgUnitCost decimal.Decimal
}

// NewStats builds a summary from aggregate values. The average unit
// cost covers only records with a positive unit cost.
func NewStats(recordCount, totalQty int64, totalValue, avgUnitCost decimal.Decimal) Stats {
	return Stats{
		recordCount: recordCount,
		totalQty:    totalQty,
		totalValue:  totalValue,
		avgUnitCost: avgUnitCost,
	}
}

// CombineStats folds per-sheet summaries into overall totals. Counts,
// quantities, and values sum; the combined average unit cost is the
// mean of the positive per-sheet averages.
func CombineStats(stats ...Stats) Stats {
	var combined Stats
	var avgSum decimal.Decimal
	var avgN int64
	for _, s := range stats {
		combined.recordCount += s.recordCount
		combined.totalQty += s.totalQty
		combined.totalValue = combined.totalValue.Add(s.totalValue)
		if s.avgUnitCost.IsPositive() {
			avgSum = avgSum.Add(s.avgUnitCost)
			avgN++
		}
	}
	if avgN > 0 {
		combined.avgUnitCost = avgSum.Div(decimal.NewFromInt(avgN))
	}
	return combined
}

// RecordCount returns the number of records.
func (s Stats) RecordCount() int64 { return s.recordCount }

// TotalQty returns the summed quantity.
func (s Stats) TotalQty() int64 { return s.totalQty }

// TotalValue returns the summed extended value, quantity times unit
// cost.
func (s Stats) TotalValue() decimal.Decimal { return s.totalValue }

// AvgUnitCost returns the average unit cost over records with a
// positive unit cost.
func (s Stats) AvgUnitCost() decimal.Decimal { return s.avgUnitCost }

// IsEmpty reports whether the summary covers no records.
func (s Stats) IsEmpty() bool { return s.recordCount == 0 }
