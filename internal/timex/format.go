// Package timex contains small date helpers for display formatting.
package timex

import "time"

// dateLayout is the calendar-date form events carry ("2025-05-15").
const dateLayout = "2006-01-02"

// FormatDate renders a stored event date as a long human-readable date,
// e.g. "May 15, 2025". Unparseable input is returned unchanged; this is a
// display-only helper and must never fail a render.
func FormatDate(s string) string {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return d.Format("January 2, 2006")
}
