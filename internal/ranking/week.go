package ranking

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date-only format used across the store and
// the week calculator.
const DateLayout = "2006-01-02"

// WeekKeyFor maps a calendar date to the Monday of its Mon-Sun week.
// Sundays map to the previous Monday. The computation is pinned to noon
// UTC so date arithmetic can never shift across a day boundary.
// Unparseable input is returned unchanged.
func WeekKeyFor(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	d = time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)

	dow := int(d.Weekday()) // Sunday=0 .. Saturday=6
	offset := 1 - dow
	if dow == 0 {
		offset = -6
	}
	return d.AddDate(0, 0, offset).Format(DateLayout)
}

// WeekRange returns the first and last date of the week identified by
// weekKey (the Monday and the following Sunday).
func WeekRange(weekKey string) (string, string) {
	mon, err := time.Parse(DateLayout, weekKey)
	if err != nil {
		return weekKey, weekKey
	}
	return weekKey, mon.AddDate(0, 0, 6).Format(DateLayout)
}

// FormatWeekRange renders a week as a human-readable dd/mm/yyyy span.
func FormatWeekRange(weekKey string) string {
	start, end := WeekRange(weekKey)
	return fmt.Sprintf("%s – %s", formatDate(start), formatDate(end))
}

func formatDate(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("02/01/2006")
}

// Today returns the current UTC date in the canonical layout.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// EffectiveDate is the date a match is bucketed under. Legacy rows can
// lack a date; those fall back to the server-assigned creation date so
// the same bucket is used everywhere a week is derived.
func (m Match) EffectiveDate() string {
	if m.Date != "" {
		return m.Date
	}
	if m.CreatedAt > 0 {
		return time.Unix(m.CreatedAt, 0).UTC().Format(DateLayout)
	}
	return Today()
}
