package pricing

import (
	"testing"
	"time"

	"hostelwatch/models"
)

func day(s string) time.Time {
	t, err := time.Parse(models.CheckinDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSelect_SingleDate_TakesMinimumOfDay(t *testing.T) {
	d := day("2025-06-01")
	series := []models.PricePoint{
		{Date: d, Price: 50},
		{Date: d, Price: 70},
		{Date: d.AddDate(0, 0, 1), Price: 10},
	}

	rep, ok := Select(series, SingleDate(d), 2)

	if !ok {
		t.Fatal("Expected a representative price")
	}
	if rep.Value != 50 {
		t.Errorf("Expected min 50, got %f", rep.Value)
	}
	if rep.Method != MethodMin {
		t.Errorf("Expected method %q, got %q", MethodMin, rep.Method)
	}
	if rep.Occupancy != 2 {
		t.Errorf("Expected occupancy 2, got %d", rep.Occupancy)
	}
}

func TestSelect_Range_MeanExcludesZeroEntries(t *testing.T) {
	d := day("2025-06-01")
	series := []models.PricePoint{
		{Date: d, Price: 50},
		{Date: d.AddDate(0, 0, 1), Price: 70},
		{Date: d.AddDate(0, 0, 2), Price: 0.0},
	}

	rep, ok := Select(series, DateRange(d, d.AddDate(0, 0, 2)), 1)

	if !ok {
		t.Fatal("Expected a representative price")
	}
	// zero entry is a no-availability sentinel, not a fare: (50+70)/2, not /3
	if rep.Value != 60 {
		t.Errorf("Expected mean 60, got %f", rep.Value)
	}
	if rep.Method != MethodMean {
		t.Errorf("Expected method %q, got %q", MethodMean, rep.Method)
	}
}

func TestSelect_EmptyAfterFiltering_ReportsNoData(t *testing.T) {
	d := day("2025-06-01")
	series := []models.PricePoint{
		{Date: d, Price: 0},
		{Date: d, Price: 0.01},
	}

	if _, ok := Select(series, DateRange(d, d), 1); ok {
		t.Error("Expected ok=false for a fully filtered series")
	}
	if _, ok := Select(nil, DateRange(d, d), 1); ok {
		t.Error("Expected ok=false for an empty series")
	}
}

func TestSelect_SingleDate_NoEntryForTargetDay(t *testing.T) {
	d := day("2025-06-01")
	series := []models.PricePoint{
		{Date: d.AddDate(0, 0, 1), Price: 80},
	}

	if _, ok := Select(series, SingleDate(d), 2); ok {
		t.Error("Expected ok=false when no entry matches the target date")
	}
}

func TestSelect_ResultAlwaysAboveSentinel(t *testing.T) {
	d := day("2025-06-01")
	series := []models.PricePoint{
		{Date: d, Price: 0.02},
		{Date: d, Price: 0.0},
	}

	rep, ok := Select(series, SingleDate(d), 1)
	if !ok {
		t.Fatal("Expected a representative price")
	}
	if !(rep.Value > 0.01) {
		t.Errorf("Representative price %f not above the sentinel", rep.Value)
	}
}

func TestQueryMode_AmountOfDays(t *testing.T) {
	d := day("2025-06-01")

	tests := []struct {
		name string
		mode QueryMode
		want int
	}{
		{"single date", SingleDate(d), 1},
		{"one-day range", DateRange(d, d), 1},
		{"week range", DateRange(d, d.AddDate(0, 0, 6)), 7},
		{"capped range", DateRange(d, d.AddDate(0, 0, 90)), MAX_CALENDAR_DAYS},
		{"inverted range", DateRange(d, d.AddDate(0, 0, -3)), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.mode.AmountOfDays(); got != test.want {
				t.Errorf("Expected %d days, got %d", test.want, got)
			}
		})
	}
}
