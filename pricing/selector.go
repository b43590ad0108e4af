package pricing

import (
	"time"

	"hostelwatch/models"
)

const (
	MethodMin  = "min"
	MethodMean = "mean"
)

// RepresentativePrice is the single scalar chosen to summarize a series for
// one occupancy count. Value is always > 0.01 when a price was selected; the
// selector signals "no data" through its ok return, never through a zero.
type RepresentativePrice struct {
	Value     float64
	Method    string
	Occupancy int
}

// Select reduces a price series to one representative price. The availability
// filter runs first; single-date mode then narrows to the target day and takes
// the minimum, range mode takes the mean of the whole filtered series (the
// range itself was already applied by the fetch window). Returns ok=false when
// nothing survives filtering.
func Select(series []models.PricePoint, mode QueryMode, occupancy int) (RepresentativePrice, bool) {
	filtered := FilterAvailable(series)

	if mode.Kind == ModeSingleDate {
		filtered = filterDate(filtered, mode.Date)
		if len(filtered) == 0 {
			return RepresentativePrice{}, false
		}
		return RepresentativePrice{
			Value:     minPrice(filtered),
			Method:    MethodMin,
			Occupancy: occupancy,
		}, true
	}

	if len(filtered) == 0 {
		return RepresentativePrice{}, false
	}
	return RepresentativePrice{
		Value:     meanPrice(filtered),
		Method:    MethodMean,
		Occupancy: occupancy,
	}, true
}

func filterDate(series []models.PricePoint, date time.Time) []models.PricePoint {
	filtered := make([]models.PricePoint, 0, len(series))
	for _, p := range series {
		if sameDay(p.Date, date) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func minPrice(series []models.PricePoint) float64 {
	min := series[0].Price
	for _, p := range series[1:] {
		if p.Price < min {
			min = p.Price
		}
	}
	return min
}

func meanPrice(series []models.PricePoint) float64 {
	var sum float64
	for _, p := range series {
		sum += p.Price
	}
	return sum / float64(len(series))
}
