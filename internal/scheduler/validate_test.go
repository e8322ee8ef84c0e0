package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arshia5/course-scheduler/internal/domain"
	"github.com/arshia5/course-scheduler/internal/testutil"
)

func placement(course, day, start, end string) domain.Placement {
	return domain.Placement{Course: course, Section: testutil.Sec(day, start, end)}
}

func TestValid_NoSections(t *testing.T) {
	assert.True(t, Valid(domain.Schedule{}))
	assert.True(t, Valid(domain.Schedule{placement("A", "Monday", "08:00", "09:00")}))
}

func TestValid_DetectsConflictInAnyPair(t *testing.T) {
	// Conflict between the first and third entries; the middle one is clean.
	s := domain.Schedule{
		placement("A", "Monday", "09:00", "11:00"),
		placement("B", "Tuesday", "09:00", "10:00"),
		placement("C", "Monday", "10:30", "12:00"),
	}
	assert.False(t, Valid(s))
}

func TestValid_BackToBackIsClean(t *testing.T) {
	s := domain.Schedule{
		placement("X", "Monday", "08:00", "09:00"),
		placement("Y", "Monday", "09:00", "10:00"),
	}
	assert.True(t, Valid(s))
}

func TestValid_AllPairsClean(t *testing.T) {
	s := domain.Schedule{
		placement("A", "Monday", "08:00", "09:00"),
		placement("B", "Monday", "09:30", "10:30"),
		placement("C", "Wednesday", "08:00", "12:00"),
	}
	assert.True(t, Valid(s))
}
