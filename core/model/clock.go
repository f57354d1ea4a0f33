package model

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime is a timezone-naive time of day with minute resolution,
// stored as minutes since midnight in [0, 1440).
type ClockTime int

const minutesPerDay = 1440

// NewClock builds a ClockTime from an hour and minute. Out-of-range
// components wrap onto the 24h dial rather than failing.
func NewClock(hour, minute int) ClockTime {
	return ClockTime(0).Add(hour*60 + minute)
}

// ParseClock parses "15:04" formatted strings.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return NewClock(h, m), nil
}

// Hour returns the hour component in [0, 24).
func (c ClockTime) Hour() int { return int(c) / 60 }

// Minute returns the minute component in [0, 60).
func (c ClockTime) Minute() int { return int(c) % 60 }

// Add shifts the clock time by the given number of minutes, wrapping
// around midnight in either direction.
func (c ClockTime) Add(minutes int) ClockTime {
	v := (int(c) + minutes) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return ClockTime(v)
}

// MinutesBefore returns how many minutes earlier in the day c is than
// other, negative when c is later. Both are compared as times of day.
func (c ClockTime) MinutesBefore(other ClockTime) int { return int(other) - int(c) }

// After reports whether c falls later in the day than other.
func (c ClockTime) After(other ClockTime) bool { return c > other }

// On composes the clock time with a calendar date in the given location.
// A nil location falls back to UTC so composition always yields a value.
func (c ClockTime) On(d Date, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, loc)
}

func (c ClockTime) String() string { return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute()) }

// MarshalJSON encodes the time as a "15:04" string.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

// UnmarshalJSON decodes a "15:04" string.
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Date is a calendar date with no time-of-day component.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "2006-01-02" formatted strings.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysUntil returns the number of whole days from d to other, negative
// when other precedes d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(dateLayout) }

// MarshalJSON encodes the date as a "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON decodes a "2006-01-02" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
