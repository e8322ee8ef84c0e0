package scheduler

import (
	"context"

	"github.com/arshia5/course-scheduler/internal/domain"
)

// Options bounds a generation run. The zero value means no cap.
type Options struct {
	// MaxSchedules caps the number of valid schedules returned; 0 means
	// unlimited. The worst case is the full product of per-course section
	// counts, so interactive callers should set a cap.
	MaxSchedules int
}

// Result is the outcome of one generation run.
type Result struct {
	// Schedules holds every valid schedule, each in display order, in
	// generation order relative to each other.
	Schedules []domain.Schedule
	// Considered counts candidate combinations examined.
	Considered int
	// EmptyCourses names courses with zero sections. When non-empty, the
	// combination product is empty and Schedules is always empty too.
	EmptyCourses []string
	// Truncated is true when MaxSchedules stopped the run before the
	// product was exhausted.
	Truncated bool
}

// Generate enumerates every combination of one section per course, keeps
// the conflict-free ones, and display-orders each survivor. The sequence is
// deterministic for a given catalog. Cancellation is checked between
// candidates; a cancelled context aborts with ctx.Err().
func Generate(ctx context.Context, catalog *domain.Catalog, opts Options) (*Result, error) {
	enum := NewEnumerator(catalog)
	result := &Result{EmptyCourses: enum.EmptyCourses()}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, ok := enum.Next()
		if !ok {
			return result, nil
		}
		result.Considered++

		if !Valid(candidate) {
			continue
		}
		result.Schedules = append(result.Schedules, SortForDisplay(candidate))

		if opts.MaxSchedules > 0 && len(result.Schedules) >= opts.MaxSchedules {
			if _, more := enum.Next(); more {
				result.Truncated = true
			}
			return result, nil
		}
	}
}
