package booking

import (
	"errors"

	"hostelwatch/api"
	"hostelwatch/models"
)

const GRAPHQL_ENDPOINT = "/dml/graphql?lang=en-gb"

// availabilityCalendarQuery is the persisted GraphQL document the site's own
// frontend sends; the endpoint rejects anything else.
const availabilityCalendarQuery = "query AvailabilityCalendar($input: AvailabilityCalendarQueryInput!) {\n  availabilityCalendar(input: $input) {\n    ... on AvailabilityCalendarQueryResult {\n      hotelId\n      days {\n        available\n        avgPriceFormatted\n        checkin\n        minLengthOfStay\n        __typename\n      }\n      __typename\n    }\n    ... on AvailabilityCalendarQueryError {\n      message\n      __typename\n    }\n    __typename\n  }\n}\n"

type pagenameDetails struct {
	CountryCode string `json:"countryCode"`
	Pagename    string `json:"pagename"`
}

type searchConfigDate struct {
	StartDate    string `json:"startDate"`
	AmountOfDays int    `json:"amountOfDays"`
}

type searchConfig struct {
	SearchConfigDate searchConfigDate `json:"searchConfigDate"`
	NbAdults         int              `json:"nbAdults"`
	NbRooms          int              `json:"nbRooms"`
}

type availabilityCalendarInput struct {
	TravelPurpose   int             `json:"travelPurpose"`
	PagenameDetails pagenameDetails `json:"pagenameDetails"`
	SearchConfig    searchConfig    `json:"searchConfig"`
}

type availabilityCalendarRequest struct {
	OperationName string `json:"operationName"`
	Variables     struct {
		Input availabilityCalendarInput `json:"input"`
	} `json:"variables"`
	Extensions struct{} `json:"extensions"`
	Query      string   `json:"query"`
}

// BookingApiClient embeds the common HTTPClient
type BookingApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewBookingApiClient creates a new instance of BookingApiClient
func NewBookingApiClient(httpClient *api.HTTPClient) *BookingApiClient {
	return &BookingApiClient{
		HTTPClient: httpClient,
	}
}

// GetHotelPage fetches the hotel's public page; the embedded page variables
// (hotelName, hotelCountry, csrf token) are extracted from it by the scraper.
func (c *BookingApiClient) GetHotelPage(url string) (string, string, error) {
	return c.GetText(url)
}

// GetAvailabilityCalendar runs the AvailabilityCalendar GraphQL operation and
// returns the daily price records. A payload without a days list is an error:
// the caller records it per occupancy count, it is never hotel-fatal.
func (c *BookingApiClient) GetAvailabilityCalendar(query models.AvailabilityQuery) ([]models.CalendarDay, error) {
	request := availabilityCalendarRequest{
		OperationName: "AvailabilityCalendar",
		Query:         availabilityCalendarQuery,
	}
	request.Variables.Input = availabilityCalendarInput{
		TravelPurpose: 2,
		PagenameDetails: pagenameDetails{
			CountryCode: query.CountryCode,
			Pagename:    query.Pagename,
		},
		SearchConfig: searchConfig{
			SearchConfigDate: searchConfigDate{
				StartDate:    query.StartDate,
				AmountOfDays: query.AmountOfDays,
			},
			NbAdults: query.NumAdults,
			NbRooms:  1,
		},
	}

	headers := map[string]string{
		"x-booking-csrf-token": query.CSRFToken,
		"origin":               c.BaseURL,
	}

	var response models.AvailabilityCalendarResponse
	if err := c.Request("POST", GRAPHQL_ENDPOINT, headers, request, &response); err != nil {
		return nil, err
	}

	calendar := response.Data.AvailabilityCalendar
	if calendar.Message != "" {
		return nil, errors.New("availability calendar query error: " + calendar.Message)
	}
	if calendar.Days == nil {
		return nil, errors.New("invalid availability calendar payload: no days data")
	}
	return calendar.Days, nil
}
