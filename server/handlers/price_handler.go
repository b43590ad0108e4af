package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"hostelwatch/dao/redis"
	"hostelwatch/models"
	"hostelwatch/pricing"
	"hostelwatch/service"
	"hostelwatch/util"
)

const (
	DATE_QUERY_ARG  = "date"
	START_QUERY_ARG = "start"
	END_QUERY_ARG   = "end"
)

type PriceHandler struct {
	scrapeService *service.ScrapeService
	runDao        *redis.RedisRunDAO
}

func NewPriceHandler(scrapeService *service.ScrapeService, runDao *redis.RedisRunDAO) *PriceHandler {
	return &PriceHandler{scrapeService: scrapeService, runDao: runDao}
}

// Scrape handles POST /v1/scrape: runs the full pipeline for the requested
// window, caches the run and returns it.
func (h *PriceHandler) Scrape(w http.ResponseWriter, r *http.Request) {
	// 1) Parse the query window
	mode, ok := h.parseMode(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Load the hostel catalog
	hostels, err := h.scrapeService.LoadCatalog()
	if err != nil {
		log.Println("Error loading hostel catalog:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Run the pipeline
	run := h.scrapeService.Scrape(hostels, mode)

	// 4) Cache the run; a cache failure does not fail the request
	if err := h.runDao.SetLatestRun(run); err != nil {
		log.Println("Error caching scrape run:", err)
	}

	// 5) Write JSON
	writeJSON(w, run)
}

// GetPrices handles GET /v1/prices: serves the last cached run.
func (h *PriceHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadLatestRun(w)
	if !ok {
		return
	}
	writeJSON(w, run)
}

// GetPricesCSV handles GET /v1/prices/csv: flat CSV dump of the rows table.
func (h *PriceHandler) GetPricesCSV(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadLatestRun(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="hostel_prices.csv"`)
	if err := util.WriteRowsCSV(w, run.Rows); err != nil {
		log.Println("Error writing CSV:", err)
	}
}

// GetPricesChart handles GET /v1/prices/chart: the rendered chart page.
func (h *PriceHandler) GetPricesChart(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadLatestRun(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderPriceCharts(w, run); err != nil {
		log.Println("Error rendering charts:", err)
	}
}

// Ping handles GET /ping
func (h *PriceHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

// parseMode builds the query mode: ?date=YYYY-MM-DD selects single-date
// (minimum of day), ?start=&end= selects a range (mean over range). An end
// before the start collapses the range to the start day.
func (h *PriceHandler) parseMode(vals url.Values, w http.ResponseWriter) (pricing.QueryMode, bool) {
	if dateArg := vals.Get(DATE_QUERY_ARG); dateArg != "" {
		date, err := time.Parse(models.CheckinDateLayout, dateArg)
		if err != nil {
			http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
			return pricing.QueryMode{}, false
		}
		return pricing.SingleDate(date), true
	}

	start, err := time.Parse(models.CheckinDateLayout, vals.Get(START_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid argument "+START_QUERY_ARG, http.StatusBadRequest)
		return pricing.QueryMode{}, false
	}
	end, err := time.Parse(models.CheckinDateLayout, vals.Get(END_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid argument "+END_QUERY_ARG, http.StatusBadRequest)
		return pricing.QueryMode{}, false
	}
	if end.Before(start) {
		log.Printf("End date %s before start date %s, collapsing range", vals.Get(END_QUERY_ARG), vals.Get(START_QUERY_ARG))
		end = start
	}
	return pricing.DateRange(start, end), true
}

func (h *PriceHandler) loadLatestRun(w http.ResponseWriter) (*models.ScrapeRun, bool) {
	run, err := h.runDao.GetLatestRun()
	if err != nil {
		http.Error(w, "No scrape run available", http.StatusNotFound)
		return nil, false
	}
	return run, true
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
