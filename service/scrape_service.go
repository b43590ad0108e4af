package service

import (
	"log"
	"sync"
	"time"

	"hostelwatch/api/booking"
	"hostelwatch/config"
	"hostelwatch/models"
	"hostelwatch/pricing"
	"hostelwatch/scraper"
	"hostelwatch/util"
)

// ScrapeService runs the whole pipeline for a hostel catalog: concurrent
// per-hostel fetches, then the synchronous normalize/select/expand/aggregate
// stages. Each hostel works on its own data; nothing is shared between the
// fetch goroutines, so no locking is needed.
type ScrapeService struct {
	bookingAPI booking.BookingAPI
}

// NewScrapeService constructs a new ScrapeService with its API dependency.
func NewScrapeService(bookingAPI booking.BookingAPI) *ScrapeService {
	return &ScrapeService{
		bookingAPI: bookingAPI,
	}
}

// LoadCatalog reads the hostel catalog resource from disk.
func (s *ScrapeService) LoadCatalog() ([]models.Hostel, error) {
	return util.ReadHostelCatalogFromJSON(config.GetResourcePath(config.HOSTELS_CATALOG_RESOURCE))
}

// Scrape fetches every hostel concurrently, waits for all of them, then
// aggregates the results into a run. One hostel's failure never aborts the
// batch; there is no batch-level timeout and no early-abort path, so the
// join waits for the slowest fetch.
func (s *ScrapeService) Scrape(hostels []models.Hostel, mode pricing.QueryMode) *models.ScrapeRun {
	log.Printf("[ScrapeService] Scraping %d hostels", len(hostels))

	results := make([]models.HostelFetchResult, len(hostels))
	var wg sync.WaitGroup
	for i, hostel := range hostels {
		wg.Add(1)
		go func(i int, hostel models.Hostel) {
			defer wg.Done()
			results[i] = s.fetchHostel(hostel, mode)
		}(i, hostel)
	}
	wg.Wait()

	rows, errors := pricing.Aggregate(results, mode)
	log.Printf("[ScrapeService] Scrape finished: %d rows, %d errors", len(rows), len(errors))

	run := &models.ScrapeRun{
		Mode:      mode.Kind,
		ScrapedAt: time.Now().UTC(),
		Rows:      rows,
		Errors:    errors,
	}
	if mode.Kind == pricing.ModeSingleDate {
		run.Date = mode.Date.Format(models.CheckinDateLayout)
	} else {
		run.StartDate = mode.Start.Format(models.CheckinDateLayout)
		run.EndDate = mode.End.Format(models.CheckinDateLayout)
	}
	return run
}

// fetchHostel fetches one hostel's page and its calendars for both occupancy
// counts. Fetch-level failures (missing URL, HTTP error) mark the whole
// hostel; a calendar query failure only empties that occupancy count.
func (s *ScrapeService) fetchHostel(hostel models.Hostel, mode pricing.QueryMode) models.HostelFetchResult {
	result := models.HostelFetchResult{Hostel: hostel}

	if hostel.URL == "" {
		log.Printf("[ScrapeService] Missing URL for hostel: %s", hostel.Name)
		result.Err = "missing URL"
		return result
	}

	html, finalURL, err := s.bookingAPI.GetHotelPage(hostel.URL)
	if err != nil {
		log.Printf("[ScrapeService] Failed to fetch page for %s: %v", hostel.Name, err)
		result.Err = err.Error()
		return result
	}
	result.Hostel.URL = finalURL

	meta := scraper.ExtractPageMetadata(html, finalURL)
	if hostel.Name == "" {
		result.Hostel.Name = meta.DisplayName
	}

	startDate := mode.StartDate().Format(models.CheckinDateLayout)
	amountOfDays := mode.AmountOfDays()

	// 2 adults first, then 1 adult, mirroring the dashboard's column order.
	result.Days2, result.Err2 = s.queryCalendar(meta, startDate, amountOfDays, 2)
	result.Days1, result.Err1 = s.queryCalendar(meta, startDate, amountOfDays, 1)

	return result
}

func (s *ScrapeService) queryCalendar(meta scraper.PageMetadata, startDate string, amountOfDays, numAdults int) ([]models.CalendarDay, string) {
	days, err := s.bookingAPI.GetAvailabilityCalendar(models.AvailabilityQuery{
		Pagename:     meta.HotelName,
		CountryCode:  meta.CountryCode,
		CSRFToken:    meta.CSRFToken,
		StartDate:    startDate,
		AmountOfDays: amountOfDays,
		NumAdults:    numAdults,
	})
	if err != nil {
		log.Printf("[ScrapeService] Calendar query failed for %s (%d adults): %v", meta.HotelName, numAdults, err)
		return nil, err.Error()
	}
	return days, ""
}
