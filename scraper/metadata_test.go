package scraper

import "testing"

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Hostal Centro - Barcelona, Spain - Booking.com</title></head>
<body>
<script>
var booking = {
    hotelName: "hostal-centro-barcelona",
    hotelCountry: "es",
};
b_csrf_token: 'abc123token'
</script>
</body>
</html>`

func TestExtractPageMetadata_AllVariablesPresent(t *testing.T) {
	meta := ExtractPageMetadata(samplePage, "https://www.booking.com/hotel/es/hostal-centro-barcelona.es.html")

	if meta.HotelName != "hostal-centro-barcelona" {
		t.Errorf("Expected pagename 'hostal-centro-barcelona', got %q", meta.HotelName)
	}
	if meta.CountryCode != "es" {
		t.Errorf("Expected country 'es', got %q", meta.CountryCode)
	}
	if meta.CSRFToken != "abc123token" {
		t.Errorf("Expected csrf token 'abc123token', got %q", meta.CSRFToken)
	}
	if meta.DisplayName != "hostal-centro-barcelona" {
		t.Errorf("Expected display name from page variable, got %q", meta.DisplayName)
	}
}

func TestExtractPageMetadata_TitleFallback(t *testing.T) {
	html := `<html><head><title>Hostal Sol - Barcelona, Spain - Booking.com</title></head><body></body></html>`

	meta := ExtractPageMetadata(html, "https://example.com/no-slug-here")

	if meta.DisplayName != "Hostal Sol" {
		t.Errorf("Expected title fallback 'Hostal Sol', got %q", meta.DisplayName)
	}
}

func TestExtractPageMetadata_SlugFallback(t *testing.T) {
	meta := ExtractPageMetadata("<html></html>", "https://www.booking.com/hotel/es/sixtytwo-barcelona.es.html")

	if meta.DisplayName != "Sixtytwo Barcelona" {
		t.Errorf("Expected slug fallback 'Sixtytwo Barcelona', got %q", meta.DisplayName)
	}
	if meta.HotelName != "sixtytwo-barcelona" {
		t.Errorf("Expected raw slug pagename, got %q", meta.HotelName)
	}
}

func TestExtractPageMetadata_TotalFailureUsesSentinels(t *testing.T) {
	meta := ExtractPageMetadata("", "https://example.com/")

	if meta.DisplayName != UNKNOWN_HOTEL_NAME {
		t.Errorf("Expected %q, got %q", UNKNOWN_HOTEL_NAME, meta.DisplayName)
	}
	if meta.CountryCode != UNKNOWN_COUNTRY {
		t.Errorf("Expected %q, got %q", UNKNOWN_COUNTRY, meta.CountryCode)
	}
	if meta.CSRFToken != "" {
		t.Errorf("Expected empty csrf token, got %q", meta.CSRFToken)
	}
	if meta.HotelName != "" {
		t.Errorf("Expected empty pagename, got %q", meta.HotelName)
	}
}
