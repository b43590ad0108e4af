package pricing

import (
	"math"

	"hostelwatch/models"
)

// Fixed business constants of the derivation formulas.
const (
	// TOURIST_TAX_PER_ADULT is deducted per adult per night before the margin.
	TOURIST_TAX_PER_ADULT = 5.5
	// MARGIN_RATE is deducted from the tax-excluded price.
	MARGIN_RATE = 0.08

	// Ratio between the two room types, depending on which side was scraped.
	SHARED_FROM_PRIVATE_RATIO = 0.8
	PRIVATE_FROM_SHARED_RATIO = 1.2
)

// Expand propagates one representative price into the row's price-matrix
// fields for its occupancy count. The category decides which side is the
// scraped one: Privado scrapes the private-bathroom price and derives shared
// at x0.8; Compartido and Híbrido scrape shared and derive private at x1.2.
// An unrecognized category writes no fields at all. Rounding to 2 decimals
// happens here and only here; the net price may come out negative when the
// tax exceeds the room price and is surfaced as-is.
func Expand(row *models.PriceMatrixRow, rep RepresentativePrice, category models.Category) {
	var private, shared float64
	var privateDerived bool

	switch category {
	case models.CategoryPrivate:
		private = rep.Value
		shared = rep.Value * SHARED_FROM_PRIVATE_RATIO
	case models.CategoryShared:
		shared = rep.Value
		private = rep.Value * PRIVATE_FROM_SHARED_RATIO
		privateDerived = true
	case models.CategoryHybrid, models.CategoryHybridASCII:
		// Assumed to price like Compartido: the scraped price is the shared one.
		shared = rep.Value
		private = rep.Value * PRIVATE_FROM_SHARED_RATIO
		privateDerived = true
	default:
		return
	}

	tax := TOURIST_TAX_PER_ADULT * float64(rep.Occupancy)
	privateMargin, privateNet := breakdown(private, tax)
	sharedMargin, sharedNet := breakdown(shared, tax)

	switch rep.Occupancy {
	case 1:
		row.PricePrivate1 = round2Ptr(private)
		row.PriceShared1 = round2Ptr(shared)
		row.PricePrivate1Net = round2Ptr(privateNet)
		row.PriceShared1Net = round2Ptr(sharedNet)
		row.MarginPrivate1 = round2Ptr(privateMargin)
		row.MarginShared1 = round2Ptr(sharedMargin)
		row.TouristTax1 = round2Ptr(tax)
		row.DerivedPrivate1 = privateDerived
		row.DerivedShared1 = !privateDerived
	case 2:
		row.PricePrivate2 = round2Ptr(private)
		row.PriceShared2 = round2Ptr(shared)
		row.PricePrivate2Net = round2Ptr(privateNet)
		row.PriceShared2Net = round2Ptr(sharedNet)
		row.MarginPrivate2 = round2Ptr(privateMargin)
		row.MarginShared2 = round2Ptr(sharedMargin)
		row.TouristTax2 = round2Ptr(tax)
		row.DerivedPrivate2 = privateDerived
		row.DerivedShared2 = !privateDerived
	}
}

// breakdown applies the tax/margin deduction to one side's room price.
func breakdown(x, tax float64) (margin, net float64) {
	taxed := x - tax
	margin = taxed * MARGIN_RATE
	net = taxed - margin
	return margin, net
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Ptr(v float64) *float64 {
	rounded := round2(v)
	return &rounded
}
