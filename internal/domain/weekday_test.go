package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday_CaseInsensitive(t *testing.T) {
	for _, input := range []string{"monday", "MONDAY", "Monday", "  monday "} {
		day, err := ParseWeekday(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, Monday, day)
	}
}

func TestParseWeekday_Invalid(t *testing.T) {
	for _, input := range []string{"", "mon", "Funday", "Montag"} {
		_, err := ParseWeekday(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestWeekdayIndex_TotalOrder(t *testing.T) {
	for i, day := range AllWeekdays {
		assert.Equal(t, i, day.Index())
	}
}

func TestWeekdayIndex_UnknownSortsLast(t *testing.T) {
	assert.Equal(t, 999, Weekday("Funday").Index())
}

func TestWeekdayEqual_IgnoresCase(t *testing.T) {
	assert.True(t, Weekday("monday").Equal(Monday))
	assert.False(t, Monday.Equal(Tuesday))
}
