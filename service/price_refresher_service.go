package service

import (
	"log"
	"time"

	"hostelwatch/dao/redis"
	"hostelwatch/pricing"
)

// PriceRefresherService periodically re-runs the scrape for the default
// window and caches the result, so dashboard reads stay warm.
type PriceRefresherService struct {
	scrapeService *ScrapeService
	runDao        *redis.RedisRunDAO
	rangeDays     int
}

// NewPriceRefresherService constructs a new Refresher with dependencies.
func NewPriceRefresherService(
	scrapeService *ScrapeService,
	runDao *redis.RedisRunDAO,
	rangeDays int,
) *PriceRefresherService {
	return &PriceRefresherService{
		scrapeService: scrapeService,
		runDao:        runDao,
		rangeDays:     rangeDays,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (pr *PriceRefresherService) StartPeriodicJob(interval time.Duration) {
	go pr.startPeriodicJob(interval)
}

func (pr *PriceRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[PriceRefresherService] Running periodic price refresh job.")
		if err := pr.RefreshPrices(); err != nil {
			log.Printf("[PriceRefresherService] RefreshPrices returned error: %v", err)
		} else {
			log.Println("[PriceRefresherService] RefreshPrices completed successfully.")
		}
	}
}

// RefreshPrices scrapes the catalog over the default upcoming window and
// stores the run as the latest one.
func (pr *PriceRefresherService) RefreshPrices() error {
	hostels, err := pr.scrapeService.LoadCatalog()
	if err != nil {
		log.Printf("[PriceRefresherService] Failed to load hostel catalog: %v", err)
		return err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	mode := pricing.DateRange(today, today.AddDate(0, 0, pr.rangeDays-1))

	run := pr.scrapeService.Scrape(hostels, mode)

	if err := pr.runDao.SetLatestRun(run); err != nil {
		log.Printf("[PriceRefresherService] Failed to cache scrape run: %v", err)
		return err
	}
	return nil
}
