package progress

import (
	"fmt"
	"time"
)

// dateLayout is the calendar-date form used as a ledger key.
const dateLayout = "2006-01-02"

// Date is an ISO YYYY-MM-DD calendar date. The string form sorts
// chronologically, so ledger ordering is plain string comparison.
type Date string

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate validates s as a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

// Prev returns the calendar day before d. Invalid dates return an empty
// Date, which never matches a ledger key.
func (d Date) Prev() Date {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return ""
	}
	return Date(t.AddDate(0, 0, -1).Format(dateLayout))
}

// Time returns d at midnight UTC, or the zero time for an invalid date.
func (d Date) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsZero reports whether d is unset.
func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) String() string {
	return string(d)
}
