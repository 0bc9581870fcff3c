package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DayLabelLayout renders a short month and zero-padded day ("Oct 14").
const DayLabelLayout = "Jan 02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayLabel formats a time as a short month/day label in its current location.
func DayLabel(t time.Time) string {
	return t.Format(DayLabelLayout)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Window returns days consecutive calendar days starting with the day containing now.
func Window(now time.Time, days int) []time.Time {
	if days <= 0 {
		return nil
	}
	start := StartOfDay(now)
	out := make([]time.Time, days)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// ResolveTimezone returns a location for a tz string, or nil if invalid.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
