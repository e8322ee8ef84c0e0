package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a minute-resolution time of day, stored as minutes since
// midnight. It has no date, timezone, or seconds component; the persisted
// form is always "HH:MM" in 24-hour notation.
type Clock int

// NewClock builds a Clock from an hour and minute.
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute: %d", minute)
	}
	return Clock(hour*60 + minute), nil
}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return NewClock(hour, minute)
}

// MustClock is ParseClock for compile-time-known literals; it panics on
// malformed input and is intended for tests and fixtures.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool { return c < other }

// String renders the canonical wire form, e.g. "08:05".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
