package scheduler

import "github.com/arshia5/course-scheduler/internal/domain"

// Valid reports whether no two sections in the candidate schedule overlap.
// Checks every unordered pair, exiting on the first conflict.
func Valid(schedule domain.Schedule) bool {
	for i := 0; i < len(schedule); i++ {
		for j := i + 1; j < len(schedule); j++ {
			if schedule[i].Section.Overlaps(schedule[j].Section) {
				return false
			}
		}
	}
	return true
}
