// Package store persists per-student catalogs. One store holds the catalogs
// of many students, keyed by student id; it is the sole source of truth
// across sessions. Reads are lenient: an unknown student, a missing file, or
// a corrupt record loads as an empty catalog. Writes replace the student's
// prior catalog and must report failure rather than swallow it.
package store

import (
	"context"

	"github.com/arshia5/course-scheduler/internal/domain"
)

// Store is the catalog persistence contract the rest of the system depends
// on. Implementations must preserve course insertion order and section order
// through a save/load round trip.
type Store interface {
	// Load returns the saved catalog for a student, or an empty catalog if
	// the student is unknown or the underlying record is unreadable.
	Load(ctx context.Context, studentID string) (*domain.Catalog, error)
	// Save persists the catalog, replacing any prior catalog for that
	// student.
	Save(ctx context.Context, studentID string, catalog *domain.Catalog) error
	// ListStudentIDs returns every known student id, sorted ascending.
	ListStudentIDs(ctx context.Context) ([]string, error)
}
