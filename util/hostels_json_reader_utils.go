package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"

	"hostelwatch/models"
)

// HostelCatalog is the on-disk catalog format: {"hostels": [...]}.
type HostelCatalog struct {
	Hostels []models.Hostel `json:"hostels"`
}

// ReadHostelCatalogFromJSON loads the hostel catalog from JSON on disk.
// Older catalog files use "link" instead of "url"; the alias is resolved
// here so the rest of the pipeline only ever sees URL. Hostels without any
// URL are kept: the fetcher reports them as per-hostel errors.
func ReadHostelCatalogFromJSON(filePath string) ([]models.Hostel, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var catalog HostelCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal HostelCatalog: %w", err)
	}
	for i := range catalog.Hostels {
		if catalog.Hostels[i].URL == "" && catalog.Hostels[i].Link != "" {
			catalog.Hostels[i].URL = catalog.Hostels[i].Link
		}
		if catalog.Hostels[i].URL == "" {
			log.Printf("[HostelCatalog] Missing URL for hostel: %s", catalog.Hostels[i].Name)
		}
	}
	return catalog.Hostels, nil
}

// ReadAvailabilityCalendarResponseFromJSON loads a GraphQL calendar response
// envelope from JSON on disk. Used by the mock booking client.
func ReadAvailabilityCalendarResponseFromJSON(filePath string) (*models.AvailabilityCalendarResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.AvailabilityCalendarResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal AvailabilityCalendarResponse: %w", err)
	}
	return &resp, nil
}

// ReadScrapeRunFromJSON loads a cached scrape run from JSON on disk.
func ReadScrapeRunFromJSON(filePath string) (*models.ScrapeRun, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var run models.ScrapeRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ScrapeRun: %w", err)
	}
	return &run, nil
}

// ReadTextFile reads a whole text file, for HTML fixtures.
func ReadTextFile(filePath string) (string, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	return string(data), nil
}
