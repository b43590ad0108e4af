package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"hostelwatch/models"
)

var csvHeader = []string{
	"name", "category", "url",
	"price_private_1", "price_shared_1", "price_private_1_net", "price_shared_1_net",
	"price_private_2", "price_shared_2", "price_private_2_net", "price_shared_2_net",
	"tourist_tax_1", "tourist_tax_2",
	"margin_private_1", "margin_shared_1", "margin_private_2", "margin_shared_2",
	"derived_private_1", "derived_shared_1", "derived_private_2", "derived_shared_2",
	"error",
}

// WriteRowsCSV writes the price-matrix rows as a flat CSV table. Numeric
// fields are formatted with 2 decimals; absent fields stay empty.
func WriteRowsCSV(w io.Writer, rows []models.PriceMatrixRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Name, r.Category, r.URL,
			csvFloat(r.PricePrivate1), csvFloat(r.PriceShared1), csvFloat(r.PricePrivate1Net), csvFloat(r.PriceShared1Net),
			csvFloat(r.PricePrivate2), csvFloat(r.PriceShared2), csvFloat(r.PricePrivate2Net), csvFloat(r.PriceShared2Net),
			csvFloat(r.TouristTax1), csvFloat(r.TouristTax2),
			csvFloat(r.MarginPrivate1), csvFloat(r.MarginShared1), csvFloat(r.MarginPrivate2), csvFloat(r.MarginShared2),
			csvBool(r.DerivedPrivate1), csvBool(r.DerivedShared1), csvBool(r.DerivedPrivate2), csvBool(r.DerivedShared2),
			r.Error,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %q: %w", r.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func csvFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func csvBool(v bool) string {
	if !v {
		return ""
	}
	return "true"
}
