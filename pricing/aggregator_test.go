package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hostelwatch/models"
)

func calendarDays(prices ...string) []models.CalendarDay {
	days := make([]models.CalendarDay, len(prices))
	for i, p := range prices {
		days[i] = models.CalendarDay{
			Available:         true,
			AvgPriceFormatted: p,
			Checkin:           "2025-06-01",
		}
	}
	return days
}

func testHostel(name string, category models.Category) models.Hostel {
	return models.Hostel{Name: name, Category: category, URL: "https://www.booking.com/hotel/es/" + name + ".html"}
}

func TestAggregate_EmptyInput(t *testing.T) {
	rows, errors := Aggregate(nil, DateRange(day("2025-06-01"), day("2025-06-07")))

	require.Empty(t, rows)
	require.Empty(t, errors)
}

func TestAggregate_PartitionsFetchErrors(t *testing.T) {
	results := []models.HostelFetchResult{
		{Hostel: testHostel("ok-one", models.CategoryPrivate), Days2: calendarDays("€ 100")},
		{Hostel: testHostel("broken", models.CategoryShared), Err: "HTTP status 503"},
		{Hostel: testHostel("ok-two", models.CategoryShared), Days2: calendarDays("€ 50")},
	}

	rows, errors := Aggregate(results, DateRange(day("2025-06-01"), day("2025-06-07")))

	require.Len(t, rows, 2)
	require.Equal(t, "ok-one", rows[0].Name)
	require.Equal(t, "ok-two", rows[1].Name)

	require.Len(t, errors, 1)
	require.Equal(t, "broken", errors[0].Name)
	require.Equal(t, "HTTP status 503", errors[0].Error)
}

// A block whose calendar is entirely no-availability sentinels drops the whole
// hostel, even though the 1-adult block would have priced fine. Historical
// behavior, asserted here so nobody "fixes" it silently.
func TestAggregate_EmptyFilteredBlockDropsWholeHostel(t *testing.T) {
	results := []models.HostelFetchResult{
		{
			Hostel: testHostel("soldout-for-two", models.CategoryShared),
			Days2:  calendarDays("€ 0", "€ 0"),
			Days1:  calendarDays("€ 45"),
		},
	}

	rows, errors := Aggregate(results, DateRange(day("2025-06-01"), day("2025-06-07")))

	require.Empty(t, rows, "hostel must not appear in rows")
	require.Empty(t, errors, "hostel must not appear in errors either")
}

// The drop also happens when only the second-processed block filters empty,
// discarding the 2-adult prices that were already computed.
func TestAggregate_SecondBlockFilterEmptyDiscardsFirstBlock(t *testing.T) {
	results := []models.HostelFetchResult{
		{
			Hostel: testHostel("soldout-for-one", models.CategoryPrivate),
			Days2:  calendarDays("€ 90"),
			Days1:  calendarDays("€ 0"),
		},
	}

	rows, errors := Aggregate(results, DateRange(day("2025-06-01"), day("2025-06-07")))

	require.Empty(t, rows)
	require.Empty(t, errors)
}

func TestAggregate_MissingBlockStillPricesTheOther(t *testing.T) {
	results := []models.HostelFetchResult{
		{
			Hostel: testHostel("one-adult-only", models.CategoryShared),
			Days1:  calendarDays("€ 45"),
			Err2:   "GraphQL query failed",
		},
	}

	rows, errors := Aggregate(results, DateRange(day("2025-06-01"), day("2025-06-07")))

	require.Len(t, rows, 1)
	require.Empty(t, errors)
	require.NotNil(t, rows[0].PriceShared1)
	require.Nil(t, rows[0].PriceShared2)
	require.Empty(t, rows[0].Error)
}

// An unrecognized category yields a row with zero price fields: neither a
// success nor an error-list entry, just the inline no-data marker.
func TestAggregate_UnrecognizedCategoryRowHasNoPrices(t *testing.T) {
	results := []models.HostelFetchResult{
		{Hostel: testHostel("weird", models.Category("Suite")), Days2: calendarDays("€ 100")},
	}

	rows, errors := Aggregate(results, DateRange(day("2025-06-01"), day("2025-06-07")))

	require.Len(t, rows, 1)
	require.Empty(t, errors)
	require.False(t, rows[0].HasPrices())
	require.Equal(t, NO_PRICING_DATA_ERROR, rows[0].Error)
}

func TestAggregate_SingleDateUsesMinimum(t *testing.T) {
	days := []models.CalendarDay{
		{Available: true, AvgPriceFormatted: "€ 70", Checkin: "2025-06-01"},
		{Available: true, AvgPriceFormatted: "€ 50", Checkin: "2025-06-01"},
		{Available: true, AvgPriceFormatted: "€ 10", Checkin: "2025-06-02"},
	}
	results := []models.HostelFetchResult{
		{Hostel: testHostel("min-day", models.CategoryPrivate), Days2: days},
	}

	rows, _ := Aggregate(results, SingleDate(day("2025-06-01")))

	require.Len(t, rows, 1)
	require.Equal(t, 50.00, *rows[0].PricePrivate2)
}

func TestAggregate_SingleDateOutsideCalendarYieldsNoDataRow(t *testing.T) {
	results := []models.HostelFetchResult{
		{Hostel: testHostel("wrong-day", models.CategoryPrivate), Days2: calendarDays("€ 80")},
	}

	// calendar only covers 2025-06-01
	rows, errors := Aggregate(results, SingleDate(day("2025-07-15")))

	require.Len(t, rows, 1)
	require.Empty(t, errors)
	require.False(t, rows[0].HasPrices())
	require.Equal(t, NO_PRICING_DATA_ERROR, rows[0].Error)
}

func TestComputeAverages(t *testing.T) {
	p := func(v float64) *float64 { return &v }
	rows := []models.PriceMatrixRow{
		{PricePrivate2: p(100), PriceShared2: p(80)},
		{PricePrivate2: p(60)},
		{PricePrivate2: p(0)}, // sentinel, excluded from the mean
	}

	avg := ComputeAverages(rows)

	require.NotNil(t, avg.Private2)
	require.Equal(t, 80.00, *avg.Private2)
	require.NotNil(t, avg.Shared2)
	require.Equal(t, 80.00, *avg.Shared2)
	require.Nil(t, avg.Private1)
	require.Nil(t, avg.Shared1Net)
}
