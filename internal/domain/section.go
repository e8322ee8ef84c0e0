package domain

import "fmt"

// Section is one offered meeting time for a course: a day of week plus a
// half-open [start, end) time range on that day.
type Section struct {
	Day   Weekday
	Start Clock
	End   Clock
}

// NewSection validates and builds a Section. The start must be strictly
// before the end; the invariant is enforced here and never re-checked.
func NewSection(day Weekday, start, end Clock) (Section, error) {
	if _, err := ParseWeekday(string(day)); err != nil {
		return Section{}, err
	}
	if !start.Before(end) {
		return Section{}, fmt.Errorf("section end %s must be after start %s", end, start)
	}
	return Section{Day: day, Start: start, End: end}, nil
}

// ParseSection builds a Section from wire-form strings: a day name in any
// case and two "HH:MM" times.
func ParseSection(day, start, end string) (Section, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return Section{}, err
	}
	st, err := ParseClock(start)
	if err != nil {
		return Section{}, err
	}
	en, err := ParseClock(end)
	if err != nil {
		return Section{}, err
	}
	return NewSection(d, st, en)
}

// Overlaps reports whether two sections conflict. Sections on different days
// never overlap; same-day sections overlap iff their half-open ranges
// intersect, so back-to-back sections (one ends exactly when the other
// starts) do not conflict. The predicate is symmetric.
func (s Section) Overlaps(other Section) bool {
	if !s.Day.Equal(other.Day) {
		return false
	}
	return s.Start < other.End && other.Start < s.End
}

// String renders a section the way the interactive views display it,
// e.g. "Monday, 08:00 - 09:00".
func (s Section) String() string {
	return fmt.Sprintf("%s, %s - %s", s.Day, s.Start, s.End)
}
