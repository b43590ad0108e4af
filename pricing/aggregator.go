package pricing

import (
	"log"

	"hostelwatch/models"
)

const NO_PRICING_DATA_ERROR = "no pricing data available for this hostel"

// Aggregate partitions raw fetch results into priced rows and an error list,
// preserving input order within each partition. The 2-adult block is processed
// before the 1-adult block, matching the upstream fetch order.
//
// When a block's calendar came back non-empty but every entry was filtered out
// as unavailable, the whole hostel is skipped: it lands in neither list, even
// if the other occupancy block would have priced fine. That is the historical
// behavior of the pipeline and is kept deliberately.
func Aggregate(results []models.HostelFetchResult, mode QueryMode) ([]models.PriceMatrixRow, []models.HostelError) {
	rows := make([]models.PriceMatrixRow, 0, len(results))
	errors := make([]models.HostelError, 0)

	for _, res := range results {
		if res.Err != "" {
			errors = append(errors, models.HostelError{Name: res.Hostel.Name, Error: res.Err})
			continue
		}

		row := models.PriceMatrixRow{
			Name:     res.Hostel.Name,
			Category: string(res.Hostel.Category),
			URL:      res.Hostel.URL,
		}

		blocks := []struct {
			adults int
			days   []models.CalendarDay
		}{
			{2, res.Days2},
			{1, res.Days1},
		}

		skipped := false
		for _, block := range blocks {
			if len(block.days) == 0 {
				continue
			}
			series := ParsePriceSeries(block.days)
			if len(FilterAvailable(series)) == 0 {
				log.Printf("[Aggregator] No valid prices (>0) for %d adults at %s, skipping hostel",
					block.adults, res.Hostel.Name)
				skipped = true
				break
			}
			rep, ok := Select(series, mode, block.adults)
			if !ok {
				// The target date filtered everything out; this block simply
				// contributes no fields.
				continue
			}
			Expand(&row, rep, res.Hostel.Category)
		}
		if skipped {
			continue
		}

		if !row.HasPrices() {
			row.Error = NO_PRICING_DATA_ERROR
		}
		rows = append(rows, row)
	}

	return rows, errors
}
