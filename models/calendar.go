package models

import "time"

const CheckinDateLayout = "2006-01-02"

// CalendarDay is one day of the availability calendar as returned by the
// booking GraphQL endpoint. It is immutable once received.
type CalendarDay struct {
	Available         bool   `json:"available"`
	AvgPriceFormatted string `json:"avgPriceFormatted"`
	Checkin           string `json:"checkin"`
	MinLengthOfStay   int    `json:"minLengthOfStay"`
}

// AvailabilityCalendarResponse is the GraphQL response envelope. On error the
// endpoint answers with a Message instead of Days.
type AvailabilityCalendarResponse struct {
	Data struct {
		AvailabilityCalendar struct {
			HotelID int64         `json:"hotelId"`
			Days    []CalendarDay `json:"days"`
			Message string        `json:"message"`
		} `json:"availabilityCalendar"`
	} `json:"data"`
}

// PricePoint is one entry of the normalized price series. Price is NaN when
// no numeric value could be extracted from the formatted price string.
type PricePoint struct {
	Date  time.Time
	Price float64
}

// AvailabilityQuery carries everything the GraphQL calendar call needs.
// Pagename and CountryCode come from the scraped hotel page variables.
type AvailabilityQuery struct {
	Pagename     string
	CountryCode  string
	CSRFToken    string
	StartDate    string // YYYY-MM-DD
	AmountOfDays int
	NumAdults    int
}
