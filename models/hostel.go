package models

import "fmt"

// Category is the room-type category declared for a hostel in the catalog.
// The catalog uses the Spanish labels verbatim, so they are kept as-is.
type Category string

const (
	CategoryPrivate Category = "Privado"
	CategoryShared  Category = "Compartido"
	CategoryHybrid  Category = "Híbrido"

	// CategoryHybridASCII shows up in catalogs typed without the accent.
	CategoryHybridASCII Category = "Hibrido"
)

// Hostel is one entry of the hostel catalog. Link is an alias for URL used
// by older catalog files; the catalog reader copies it into URL.
type Hostel struct {
	Name     string   `json:"name"`
	Category Category `json:"type"`
	URL      string   `json:"url"`
	Link     string   `json:"link,omitempty"`
}

func (h *Hostel) ToString() string {
	return fmt.Sprintf("Hostel(name=%s, category=%s, url=%s)", h.Name, h.Category, h.URL)
}
