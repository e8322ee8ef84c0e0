package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(t *testing.T, day, start, end string) Section {
	t.Helper()
	s, err := ParseSection(day, start, end)
	require.NoError(t, err)
	return s
}

func TestNewSection_RejectsEndNotAfterStart(t *testing.T) {
	_, err := NewSection(Monday, MustClock("10:00"), MustClock("09:00"))
	assert.Error(t, err)

	_, err = NewSection(Monday, MustClock("10:00"), MustClock("10:00"))
	assert.Error(t, err, "zero-duration sections are invalid")
}

func TestParseSection_NormalizesDay(t *testing.T) {
	s := section(t, "tuesday", "14:00", "15:20")
	assert.Equal(t, Tuesday, s.Day)
}

func TestOverlaps_DifferentDaysNeverOverlap(t *testing.T) {
	a := section(t, "Monday", "09:00", "10:00")
	b := section(t, "Tuesday", "09:00", "10:00")
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestOverlaps_HalfOpenBoundary(t *testing.T) {
	a := section(t, "Monday", "09:00", "10:00")
	backToBack := section(t, "Monday", "10:00", "11:00")
	overlapping := section(t, "Monday", "09:59", "10:30")

	assert.False(t, a.Overlaps(backToBack), "touching boundaries are not a conflict")
	assert.True(t, a.Overlaps(overlapping))
}

func TestOverlaps_Symmetric(t *testing.T) {
	cases := [][2]Section{
		{section(t, "Monday", "09:00", "10:00"), section(t, "Monday", "09:30", "10:30")},
		{section(t, "Monday", "09:00", "10:00"), section(t, "Monday", "10:00", "11:00")},
		{section(t, "Monday", "09:00", "10:00"), section(t, "Friday", "09:00", "10:00")},
		{section(t, "Monday", "08:00", "12:00"), section(t, "Monday", "09:00", "10:00")},
		{section(t, "monday", "09:00", "10:00"), section(t, "MONDAY", "09:30", "10:30")},
	}
	for _, pair := range cases {
		assert.Equal(t, pair[0].Overlaps(pair[1]), pair[1].Overlaps(pair[0]),
			"overlap must be symmetric for %s / %s", pair[0], pair[1])
	}
}

func TestOverlaps_Containment(t *testing.T) {
	outer := section(t, "Monday", "08:00", "12:00")
	inner := section(t, "Monday", "09:00", "10:00")
	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestSectionString(t *testing.T) {
	s := section(t, "Monday", "08:00", "09:00")
	assert.Equal(t, "Monday, 08:00 - 09:00", s.String())
}
