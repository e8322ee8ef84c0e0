package service

import (
	"context"

	"github.com/arshia5/course-scheduler/internal/domain"
	"github.com/arshia5/course-scheduler/internal/scheduler"
)

// CatalogService manages the active student's catalog. One session owns one
// catalog copy at a time; loading a different student replaces it.
type CatalogService interface {
	// LoadStudent makes the given student active and loads their saved
	// catalog. A previously-unseen id starts with an empty catalog.
	LoadStudent(ctx context.Context, studentID string) error
	// SaveStudent persists the active catalog back to the store.
	SaveStudent(ctx context.Context) error
	// ActiveStudent returns the active student id, or "" if none.
	ActiveStudent() string
	// ListStudentIDs returns every student id known to the store.
	ListStudentIDs(ctx context.Context) ([]string, error)
	// Catalog returns a snapshot copy of the active catalog.
	Catalog() *domain.Catalog
	// AddSection appends a section to the named course, creating the
	// course if it does not exist yet.
	AddSection(ctx context.Context, course string, section domain.Section) error
	// RemoveSection removes the section at the given index (0-based, in
	// stored order) from the named course.
	RemoveSection(ctx context.Context, course string, index int) error
	// SaveOrUpdateCourse sets the named course's full section list,
	// replacing any prior sections.
	SaveOrUpdateCourse(ctx context.Context, name string, sections []domain.Section) error
	// DeleteCourse removes the named course from the catalog.
	DeleteCourse(ctx context.Context, name string) error
}

// ScheduleService generates conflict-free schedules from the active catalog.
type ScheduleService interface {
	Generate(ctx context.Context, opts scheduler.Options) (*scheduler.Result, error)
}
