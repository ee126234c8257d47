// clock.go: TIME values, a time of day without calendar.
package sqltime

import (
	"fmt"
	"strings"
	"time"
)

const timeLayout = "15:4:5"

// Time is a time of day with second precision, no calendar and no zone.
type Time struct {
	sec int32 // seconds since midnight
}

// NewTime validates the components and returns the Time.
func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Time{}, rangeError("time", hour, minute, second)
	}
	return Time{sec: int32(hour*3600 + minute*60 + second)}, nil
}

// TimeOf keeps the clock fields of t, as seen in t's location, and drops the
// calendar and sub-second part.
func TimeOf(t time.Time) Time {
	return Time{sec: int32(t.Hour()*3600 + t.Minute()*60 + t.Second())}
}

// ParseTime parses [h]h:[m]m:[s]s. A fractional second is rejected, even
// when it is zero.
func ParseTime(s string) (Time, error) {
	if strings.ContainsAny(s, ".,") {
		return Time{}, formatError("time", s, "hh:mm:ss", nil)
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return Time{}, formatError("time", s, "hh:mm:ss", err)
	}
	return TimeOf(t), nil
}

// String formats t as hh:mm:ss.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Hour returns the hour in [0, 23].
func (t Time) Hour() int { return int(t.sec / 3600) }

// Minute returns the minute in [0, 59].
func (t Time) Minute() int { return int(t.sec % 3600 / 60) }

// Second returns the second in [0, 59].
func (t Time) Second() int { return int(t.sec % 60) }

// SinceMidnight returns t as a duration after midnight.
func (t Time) SinceMidnight() time.Duration { return time.Duration(t.sec) * time.Second }

// On returns t on the given day in loc.
func (t Time) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}

// Before reports whether t is earlier in the day than o.
func (t Time) Before(o Time) bool { return t.sec < o.sec }

// After reports whether t is later in the day than o.
func (t Time) After(o Time) bool { return t.sec > o.sec }

// Equal reports whether t and o are the same time of day.
func (t Time) Equal(o Time) bool { return t.sec == o.sec }

// Compare returns -1, 0 or +1 as t is before, equal to or after o.
func (t Time) Compare(o Time) int {
	switch {
	case t.sec < o.sec:
		return -1
	case t.sec > o.sec:
		return 1
	}
	return 0
}
