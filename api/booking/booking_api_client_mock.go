package booking

import (
	"fmt"

	"hostelwatch/models"
	"hostelwatch/util"
)

const HOTEL_PAGE_PATH = "./resources/hotel_page.html"
const AVAILABILITY_CALENDAR_RESPONSE_PATH = "./resources/availability_calendar_response.json"

// BookingApiClientMock embeds mocked logic for the booking api client,
// serving fixture files instead of hitting the network.
type BookingApiClientMock struct {
}

// NewBookingApiClientMock creates a new instance of BookingApiClientMock
func NewBookingApiClientMock() *BookingApiClientMock {
	return &BookingApiClientMock{}
}

// GetHotelPage returns the fixture hotel page for any URL.
func (c *BookingApiClientMock) GetHotelPage(url string) (string, string, error) {
	html, err := util.ReadTextFile(HOTEL_PAGE_PATH)
	if err != nil {
		fmt.Println("Could not read hotel page fixture")
		return "", "", err
	}
	return html, url, nil
}

// GetAvailabilityCalendar returns the fixture calendar for any query.
func (c *BookingApiClientMock) GetAvailabilityCalendar(query models.AvailabilityQuery) ([]models.CalendarDay, error) {
	response, err := util.ReadAvailabilityCalendarResponseFromJSON(AVAILABILITY_CALENDAR_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read availability calendar response from json")
		return nil, err
	}
	return response.Data.AvailabilityCalendar.Days, nil
}
