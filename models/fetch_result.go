package models

// HostelFetchResult is the raw outcome of fetching one hostel: either a
// fetch-level error, or the calendar day lists for each occupancy count.
// A per-occupancy query failure leaves that day list empty and records the
// message; the other occupancy count may still have succeeded.
type HostelFetchResult struct {
	Hostel Hostel

	// Err is set on a fetch-level failure (missing URL, HTTP error).
	Err string

	Days2 []CalendarDay
	Days1 []CalendarDay

	// Per-occupancy query errors, kept for logging only.
	Err2 string
	Err1 string
}
