package scheduler

import "github.com/arshia5/course-scheduler/internal/domain"

// Enumerator walks the cartesian product of section choices: one section per
// course, courses in catalog insertion order, each course's sections in
// stored order. The walk is deterministic and restartable via Reset.
//
// If any course has zero sections the product is empty and the enumerator
// yields nothing at all, even when every other course is schedulable.
// Generate reports the offending courses so callers can surface them
// instead of showing a silently empty result.
type Enumerator struct {
	courses []domain.Course
	indices []int
	done    bool
}

// NewEnumerator builds an enumerator over the catalog's current courses.
// The enumerator snapshots the catalog, so later catalog edits do not
// disturb an enumeration in progress.
func NewEnumerator(catalog *domain.Catalog) *Enumerator {
	e := &Enumerator{courses: catalog.Courses()}
	e.Reset()
	return e
}

// Size returns the total number of combinations the enumerator will yield:
// the product of per-course section counts.
func (e *Enumerator) Size() int {
	size := 1
	for _, c := range e.courses {
		size *= len(c.Sections)
	}
	return size
}

// Reset rewinds the enumerator to the first combination.
func (e *Enumerator) Reset() {
	e.indices = make([]int, len(e.courses))
	e.done = len(e.courses) == 0
	for _, c := range e.courses {
		if len(c.Sections) == 0 {
			e.done = true
		}
	}
}

// Next returns the next candidate schedule, or false when the product is
// exhausted.
func (e *Enumerator) Next() (domain.Schedule, bool) {
	if e.done {
		return nil, false
	}

	schedule := make(domain.Schedule, len(e.courses))
	for i, c := range e.courses {
		schedule[i] = domain.Placement{Course: c.Name, Section: c.Sections[e.indices[i]]}
	}

	// Advance odometer-style: rightmost course varies fastest.
	for i := len(e.indices) - 1; i >= 0; i-- {
		e.indices[i]++
		if e.indices[i] < len(e.courses[i].Sections) {
			return schedule, true
		}
		e.indices[i] = 0
	}
	e.done = true
	return schedule, true
}

// EmptyCourses returns the names of courses with no sections, in catalog
// order. Non-empty means the whole product is empty.
func (e *Enumerator) EmptyCourses() []string {
	var names []string
	for _, c := range e.courses {
		if len(c.Sections) == 0 {
			names = append(names, c.Name)
		}
	}
	return names
}
