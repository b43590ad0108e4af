package booking

import "hostelwatch/models"

// BookingAPI defines the interface for fetching hotel pages and per-day price
// calendars from the booking site.
type BookingAPI interface {
	GetHotelPage(url string) (html string, finalURL string, err error)
	GetAvailabilityCalendar(query models.AvailabilityQuery) ([]models.CalendarDay, error)
}
