package scheduler

import (
	"sort"

	"github.com/arshia5/course-scheduler/internal/domain"
)

// SortForDisplay returns a copy of the schedule in canonical display order:
// 1. Day: Monday through Sunday, unknown day strings last
// 2. Start time ascending
// 3. Course name lexical ascending
// 4. End time ascending
// Keys 3 and 4 break ties deterministically; within one valid schedule two
// same-day sections never share a start time, but the orderer does not rely
// on validity.
func SortForDisplay(schedule domain.Schedule) domain.Schedule {
	out := make(domain.Schedule, len(schedule))
	copy(out, schedule)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		dayA, dayB := a.Section.Day.Index(), b.Section.Day.Index()
		if dayA != dayB {
			return dayA < dayB
		}
		if a.Section.Start != b.Section.Start {
			return a.Section.Start < b.Section.Start
		}
		if a.Course != b.Course {
			return a.Course < b.Course
		}
		return a.Section.End < b.Section.End
	})

	return out
}
