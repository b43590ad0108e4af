package pricing

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"hostelwatch/models"
)

var priceNumberRe = regexp.MustCompile(`(\d+\.?\d*)`)

// ParsePriceSeries converts raw calendar days into a price series of the same
// length. The price is the first decimal number found in the formatted price
// string ("€ 75.50" -> 75.50); entries with no extractable number keep a NaN
// price so the availability filter drops them downstream. Never fails.
func ParsePriceSeries(days []models.CalendarDay) []models.PricePoint {
	series := make([]models.PricePoint, len(days))
	for i, day := range days {
		series[i] = models.PricePoint{
			Date:  parseCheckin(day.Checkin),
			Price: extractPrice(day.AvgPriceFormatted),
		}
	}
	return series
}

// FilterAvailable drops "no availability" sentinels: entries whose price is
// not strictly above 0.01. NaN prices fail the comparison and are dropped too.
func FilterAvailable(series []models.PricePoint) []models.PricePoint {
	filtered := make([]models.PricePoint, 0, len(series))
	for _, p := range series {
		if p.Price > 0.01 {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func extractPrice(formatted string) float64 {
	match := priceNumberRe.FindString(formatted)
	if match == "" {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

func parseCheckin(checkin string) time.Time {
	t, err := time.Parse(models.CheckinDateLayout, checkin)
	if err != nil {
		return time.Time{}
	}
	return t
}
