package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page variables embedded in the hotel page's inline scripts.
var (
	hotelNameRe    = regexp.MustCompile(`hotelName:\s*"(.+?)"`)
	hotelCountryRe = regexp.MustCompile(`hotelCountry:\s*"(.+?)"`)
	csrfTokenRe    = regexp.MustCompile(`b_csrf_token:\s*'(.+?)'`)
	urlSlugRe      = regexp.MustCompile(`hotel/\w+/([^.]+)`)
)

// Sentinels used when every extraction strategy fails. The calendar query
// still runs with them; the endpoint simply answers with an error payload.
const (
	UNKNOWN_COUNTRY    = "unknown"
	UNKNOWN_HOTEL_NAME = "Unknown Hotel"
)

// PageMetadata holds the page variables the availability query needs.
// HotelName is the internal pagename; DisplayName is what the dashboard shows.
type PageMetadata struct {
	HotelName   string
	CountryCode string
	CSRFToken   string
	DisplayName string
}

// strategy is one attempt at extracting a field; ok=false moves on to the
// next one in the list.
type strategy func() (value string, ok bool)

func firstMatch(fallback string, strategies ...strategy) string {
	for _, s := range strategies {
		if value, ok := s(); ok {
			return value
		}
	}
	return fallback
}

// ExtractPageMetadata pulls the embedded page variables out of a hotel page.
// Each field is tried through an ordered list of strategies: the inline
// script variable first, then (for the name) the HTML title and the URL slug.
// It never fails; fields that cannot be extracted get an explicit sentinel.
func ExtractPageMetadata(html, pageURL string) PageMetadata {
	name := firstMatch("",
		regexStrategy(hotelNameRe, html),
	)
	displayName := firstMatch(UNKNOWN_HOTEL_NAME,
		func() (string, bool) { return name, name != "" },
		titleStrategy(html),
		slugStrategy(pageURL),
	)
	if name == "" {
		// the pagename used by the calendar query falls back to the slug only;
		// a human-readable title is no use as a GraphQL pagename
		name, _ = rawSlug(pageURL)
	}

	return PageMetadata{
		HotelName: name,
		CountryCode: firstMatch(UNKNOWN_COUNTRY,
			regexStrategy(hotelCountryRe, html),
		),
		CSRFToken: firstMatch("",
			regexStrategy(csrfTokenRe, html),
		),
		DisplayName: displayName,
	}
}

func regexStrategy(re *regexp.Regexp, html string) strategy {
	return func() (string, bool) {
		match := re.FindStringSubmatch(html)
		if match == nil {
			return "", false
		}
		return match[1], true
	}
}

// titleStrategy reads the document <title>, stripping the site suffix the
// pages carry ("Hostel X - Barcelona, Spain - Booking.com").
func titleStrategy(html string) strategy {
	return func() (string, bool) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return "", false
		}
		title := strings.TrimSpace(doc.Find("title").First().Text())
		if title == "" {
			return "", false
		}
		if i := strings.Index(title, " - "); i > 0 {
			title = title[:i]
		}
		return title, true
	}
}

// slugStrategy turns the URL slug into a readable name:
// "hotel/es/sixtytwo-barcelona.es.html" -> "Sixtytwo Barcelona".
func slugStrategy(pageURL string) strategy {
	return func() (string, bool) {
		slug, ok := rawSlug(pageURL)
		if !ok {
			return "", false
		}
		words := strings.Split(slug, "-")
		for i, w := range words {
			if w != "" {
				words[i] = strings.ToUpper(w[:1]) + w[1:]
			}
		}
		return strings.Join(words, " "), true
	}
}

func rawSlug(pageURL string) (string, bool) {
	match := urlSlugRe.FindStringSubmatch(pageURL)
	if match == nil {
		return "", false
	}
	return match[1], true
}
