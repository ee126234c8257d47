// timestamp.go: TIMESTAMP values, date plus clock plus nanoseconds.
package sqltime

import (
	"strconv"
	"strings"
	"time"
)

const (
	timestampLayout = "2006-1-2 15:4:5"
	maxFracDigits   = 9
)

// Timestamp is a calendar day and time of day with nanosecond precision and
// no zone.
type Timestamp struct {
	t time.Time // civil fields in UTC
}

// NewTimestamp combines d and clock with nanos in [0, 999999999].
func NewTimestamp(d Date, clock Time, nanos int) (Timestamp, error) {
	if nanos < 0 || nanos > 999_999_999 {
		return Timestamp{}, rangeError("nanos", nanos)
	}
	return Timestamp{t: time.Date(d.Year(), d.Month(), d.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), nanos, time.UTC)}, nil
}

// TimestampOf keeps the civil fields of t as seen in t's location.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{t: time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// ParseTimestamp parses yyyy-[m]m-[d]d [h]h:[m]m:[s]s[.f...] with one to
// nine fraction digits. Only '.' separates the fraction.
func ParseTimestamp(s string) (Timestamp, error) {
	const want = "yyyy-[m]m-[d]d hh:mm:ss[.f...]"
	if strings.IndexByte(s, ',') >= 0 {
		return Timestamp{}, formatError("timestamp", s, want, nil)
	}
	if dot := strings.LastIndexByte(s, '.'); dot >= 0 {
		frac := s[dot+1:]
		if len(frac) == 0 || len(frac) > maxFracDigits || !digitsOnly(frac) {
			return Timestamp{}, formatError("timestamp", s, want, nil)
		}
	}
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return Timestamp{}, formatError("timestamp", s, want, err)
	}
	return Timestamp{t: t}, nil
}

// String formats ts as yyyy-mm-dd hh:mm:ss.f, trimming trailing zeros from
// the fraction but keeping at least one digit.
func (ts Timestamp) String() string {
	var sb strings.Builder
	sb.Grow(29)
	sb.WriteString(ts.t.Format("2006-01-02 15:04:05"))
	sb.WriteByte('.')
	ns := ts.t.Nanosecond()
	if ns == 0 {
		sb.WriteByte('0')
		return sb.String()
	}
	frac := strconv.Itoa(ns)
	frac = strings.Repeat("0", maxFracDigits-len(frac)) + frac
	sb.WriteString(strings.TrimRight(frac, "0"))
	return sb.String()
}

// Date drops the clock.
func (ts Timestamp) Date() Date { return DateOf(ts.t) }

// Clock drops the calendar and the nanoseconds.
func (ts Timestamp) Clock() Time { return TimeOf(ts.t) }

// Nanos returns the fractional second in nanoseconds.
func (ts Timestamp) Nanos() int { return ts.t.Nanosecond() }

// In returns ts interpreted in loc.
func (ts Timestamp) In(loc *time.Location) time.Time {
	return time.Date(ts.t.Year(), ts.t.Month(), ts.t.Day(),
		ts.t.Hour(), ts.t.Minute(), ts.t.Second(), ts.t.Nanosecond(), loc)
}

// IsZero reports whether ts is the zero Timestamp.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is earlier than o.
func (ts Timestamp) Before(o Timestamp) bool { return ts.t.Before(o.t) }

// After reports whether ts is later than o.
func (ts Timestamp) After(o Timestamp) bool { return ts.t.After(o.t) }

// Equal reports whether ts and o denote the same instant.
func (ts Timestamp) Equal(o Timestamp) bool { return ts.t.Equal(o.t) }

// Compare returns -1, 0 or +1 as ts is before, equal to or after o.
func (ts Timestamp) Compare(o Timestamp) int { return ts.t.Compare(o.t) }

// Add returns ts shifted by d.
func (ts Timestamp) Add(d time.Duration) Timestamp { return Timestamp{t: ts.t.Add(d)} }

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
