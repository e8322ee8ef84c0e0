package testutil

import (
	"github.com/arshia5/course-scheduler/internal/domain"
)

// Sec builds a Section from literals, panicking on malformed input. Test
// fixtures only.
func Sec(day, start, end string) domain.Section {
	s, err := domain.ParseSection(day, start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// Course options
type CourseOption func(*domain.Course)

func WithSection(day, start, end string) CourseOption {
	return func(c *domain.Course) {
		c.Sections = append(c.Sections, Sec(day, start, end))
	}
}

// NewTestCourse builds a course. With no options it has zero sections,
// which is itself a meaningful fixture (a sectionless course empties the
// whole combination product).
func NewTestCourse(name string, opts ...CourseOption) domain.Course {
	c := domain.Course{Name: name}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestCatalog builds a catalog from courses in the given order.
func NewTestCatalog(courses ...domain.Course) *domain.Catalog {
	catalog := domain.NewCatalog()
	for _, c := range courses {
		catalog.Upsert(c)
	}
	return catalog
}
