// date.go: DATE values, a calendar day without clock.
package sqltime

import "time"

const (
	dateLayout = "2006-1-2"
	dateFormat = "2006-01-02"
)

// Date is a calendar day with no time of day and no zone.
type Date struct {
	t time.Time // midnight UTC
}

// NewDate validates the components and returns the Date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, rangeError("year", year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return Date{}, rangeError("date", year, int(month), day)
	}
	return Date{t: t}, nil
}

// DateOf keeps the calendar fields of t, as seen in t's location, and drops
// the clock.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses yyyy-[m]m-[d]d. The year must have four digits.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, formatError("date", s, "yyyy-[m]m-[d]d", err)
	}
	return Date{t: t}, nil
}

// String formats d as yyyy-mm-dd.
func (d Date) String() string { return d.t.Format(dateFormat) }

// Year returns the four-digit year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the month of the year.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is later than o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }
