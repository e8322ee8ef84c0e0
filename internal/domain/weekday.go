package domain

import (
	"fmt"
	"strings"
)

// Weekday is a canonical day-of-week name ("Monday" ... "Sunday").
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// AllWeekdays lists the canonical weekdays in display order.
var AllWeekdays = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

var weekdayIndex = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// unknownDayIndex sorts unrecognized day strings after all real days.
const unknownDayIndex = 999

// ParseWeekday normalizes a day string to its canonical form,
// case-insensitively. Returns an error for anything that is not one of the
// seven weekday names.
func ParseWeekday(s string) (Weekday, error) {
	idx, ok := weekdayIndex[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("invalid day of week: %q", s)
	}
	return AllWeekdays[idx], nil
}

// Index returns the display sort position: Monday(0) through Sunday(6).
// Unrecognized values sort last rather than erroring.
func (d Weekday) Index() int {
	idx, ok := weekdayIndex[strings.ToLower(string(d))]
	if !ok {
		return unknownDayIndex
	}
	return idx
}

// Equal compares two day values case-insensitively. Overlap detection only
// ever compares days for equality, never for order.
func (d Weekday) Equal(other Weekday) bool {
	return strings.EqualFold(string(d), string(other))
}

func (d Weekday) String() string {
	return string(d)
}
