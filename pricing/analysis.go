package pricing

import "hostelwatch/models"

// AveragePrices holds the mean of each price column across all rows, with and
// without the tax/margin deduction. A nil field means no row had a usable
// value for that column.
type AveragePrices struct {
	Private1    *float64 `json:"avg_price_private_1,omitempty"`
	Shared1     *float64 `json:"avg_price_shared_1,omitempty"`
	Private2    *float64 `json:"avg_price_private_2,omitempty"`
	Shared2     *float64 `json:"avg_price_shared_2,omitempty"`
	Private1Net *float64 `json:"avg_price_private_1_net,omitempty"`
	Shared1Net  *float64 `json:"avg_price_shared_1_net,omitempty"`
	Private2Net *float64 `json:"avg_price_private_2_net,omitempty"`
	Shared2Net  *float64 `json:"avg_price_shared_2_net,omitempty"`
}

// ComputeAverages computes per-column means over the rows. Absent fields and
// values at or below the availability sentinel are left out of each mean,
// the same filter the selector applies to raw series.
func ComputeAverages(rows []models.PriceMatrixRow) AveragePrices {
	return AveragePrices{
		Private1:    columnMean(rows, func(r models.PriceMatrixRow) *float64 { return r.PricePrivate1 }),
		Shared1:     columnMean(rows, func(r models.PriceMatrixRow) *float64 { return r.PriceShared1 }),
		Private2:    columnMean(rows, func(r models.PriceMatrixRow) *float64 { return r.PricePrivate2 }),
		Shared2:     columnMean(rows, func(r models.PriceMatrixRow) *float64 { return r.PriceShared2 }),
		Private1Net: columnMean(rows, func(r models.PriceMatrixRow) *float64 { return r.PricePrivate1Net }),
		Shared1Net:  columnMean(rows, func(r models.PriceMatrixRow) *float64 { return r.PriceShared1Net }),
		Private2Net: columnMean(rows, func(r models.PriceMatrixRow) *float64 { return r.PricePrivate2Net }),
		Shared2Net:  columnMean(rows, func(r models.PriceMatrixRow) *float64 { return r.PriceShared2Net }),
	}
}

func columnMean(rows []models.PriceMatrixRow, column func(models.PriceMatrixRow) *float64) *float64 {
	var sum float64
	var n int
	for _, row := range rows {
		v := column(row)
		if v == nil || *v <= 0.01 {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return nil
	}
	return round2Ptr(sum / float64(n))
}
