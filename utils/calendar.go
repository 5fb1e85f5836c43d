package utils

import (
	"fmt"
	"net/url"
	"time"
)

// GoogleCalendarURL builds a calendar template link the guest can click to
// add their stay to Google Calendar. No API call is made; the link carries
// the whole event.
func GoogleCalendarURL(summary, description, location string, start, end time.Time) string {
	const stamp = "20060102T150405Z"
	dates := fmt.Sprintf("%s/%s", start.UTC().Format(stamp), end.UTC().Format(stamp))

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", summary)
	q.Set("dates", dates)
	q.Set("details", description)
	q.Set("location", location)

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
