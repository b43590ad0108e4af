package models

import "time"

// ScrapeRun is one complete pipeline run: the priced rows, the error list and
// the query window they were computed for. It is what gets cached and served
// to the dashboard.
type ScrapeRun struct {
	Mode      string    `json:"mode"` // "single" | "range"
	Date      string    `json:"date,omitempty"`
	StartDate string    `json:"start_date,omitempty"`
	EndDate   string    `json:"end_date,omitempty"`
	ScrapedAt time.Time `json:"scraped_at"`

	Rows   []PriceMatrixRow `json:"rows"`
	Errors []HostelError    `json:"errors"`
}
