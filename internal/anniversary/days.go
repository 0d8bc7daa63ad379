package anniversary

import "time"

// Accepted calendar-date layouts. The dotted form appears in display labels
// typed by hand.
var dateLayouts = []string{"2006-01-02", "2006.01.02"}

// DaysSince returns the whole days elapsed from dateStr to today in local
// time. An empty or unparseable string, or a future date, reports false
// rather than a negative count. A milestone dated today yields 0, one dated
// yesterday yields 1.
func DaysSince(dateStr string) (int, bool) {
	return daysBetween(dateStr, time.Now())
}

func daysBetween(dateStr string, now time.Time) (int, bool) {
	if dateStr == "" {
		return 0, false
	}
	var start time.Time
	var err error
	for _, layout := range dateLayouts {
		start, err = time.ParseInLocation(layout, dateStr, now.Location())
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0, false
	}

	// Truncate both ends to civil dates and diff in UTC, so a DST shift in
	// between cannot make the division come up a day short.
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := int(to.Sub(from) / (24 * time.Hour))
	if days < 0 {
		return 0, false
	}
	return days, true
}
