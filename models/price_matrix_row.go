package models

// PriceMatrixRow is the pipeline's output for one hostel: the four-cell price
// matrix (private/shared x 1/2 adults) plus the tax and margin breakdown for
// each cell. Fields stay nil for any occupancy count that produced no
// representative price. Exactly one side per occupancy count is scraped; the
// other carries a Derived flag.
type PriceMatrixRow struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	URL      string `json:"url"`

	PricePrivate1    *float64 `json:"price_private_1,omitempty"`
	PriceShared1     *float64 `json:"price_shared_1,omitempty"`
	PricePrivate1Net *float64 `json:"price_private_1_net,omitempty"`
	PriceShared1Net  *float64 `json:"price_shared_1_net,omitempty"`

	PricePrivate2    *float64 `json:"price_private_2,omitempty"`
	PriceShared2     *float64 `json:"price_shared_2,omitempty"`
	PricePrivate2Net *float64 `json:"price_private_2_net,omitempty"`
	PriceShared2Net  *float64 `json:"price_shared_2_net,omitempty"`

	TouristTax1 *float64 `json:"tourist_tax_1,omitempty"`
	TouristTax2 *float64 `json:"tourist_tax_2,omitempty"`

	MarginPrivate1 *float64 `json:"margin_private_1,omitempty"`
	MarginShared1  *float64 `json:"margin_shared_1,omitempty"`
	MarginPrivate2 *float64 `json:"margin_private_2,omitempty"`
	MarginShared2  *float64 `json:"margin_shared_2,omitempty"`

	DerivedPrivate1 bool `json:"derived_private_1,omitempty"`
	DerivedShared1  bool `json:"derived_shared_1,omitempty"`
	DerivedPrivate2 bool `json:"derived_private_2,omitempty"`
	DerivedShared2  bool `json:"derived_shared_2,omitempty"`

	// Error marks a row that ended up with no price fields at all.
	Error string `json:"error,omitempty"`
}

// HasPrices reports whether any price field was filled in. Net, tax and
// margin fields are always set together with their price field, so checking
// the four base prices is enough.
func (r *PriceMatrixRow) HasPrices() bool {
	return r.PricePrivate1 != nil || r.PriceShared1 != nil ||
		r.PricePrivate2 != nil || r.PriceShared2 != nil
}

// HostelError is the error-list entry for a hostel whose fetch failed.
type HostelError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}
