package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/arshia5/course-scheduler/internal/domain"
	"github.com/arshia5/course-scheduler/internal/scheduler"
	"github.com/arshia5/course-scheduler/internal/store"
)

// Session is the working state for one student at a time: the active student
// id plus an exclusively-owned copy of their catalog. It implements both
// CatalogService and ScheduleService.
//
// The scheduling core itself is synchronous and single-threaded; the mutex
// exists only because the autosaver calls SaveStudent from its own
// goroutine.
type Session struct {
	mu       sync.Mutex
	store    store.Store
	observer UseCaseObserver

	activeStudent string
	catalog       *domain.Catalog
}

// NewSession creates a session over the given store. No student is active
// until LoadStudent succeeds.
func NewSession(st store.Store, observers ...UseCaseObserver) *Session {
	return &Session{
		store:    st,
		observer: useCaseObserverOrNoop(observers),
		catalog:  domain.NewCatalog(),
	}
}

var (
	_ CatalogService  = (*Session)(nil)
	_ ScheduleService = (*Session)(nil)
)

func (s *Session) LoadStudent(ctx context.Context, studentID string) (err error) {
	defer s.observe(ctx, "load-student", time.Now().UTC(), map[string]any{"student": studentID}, &err)

	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return ErrEmptyStudentID
	}

	catalog, err := s.store.Load(ctx, studentID)
	if err != nil {
		return fmt.Errorf("loading student %q: %w", studentID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeStudent = studentID
	s.catalog = catalog
	return nil
}

func (s *Session) SaveStudent(ctx context.Context) (err error) {
	s.mu.Lock()
	studentID := s.activeStudent
	snapshot := s.catalog.Clone()
	s.mu.Unlock()

	defer s.observe(ctx, "save-student", time.Now().UTC(), map[string]any{"student": studentID}, &err)

	if studentID == "" {
		return ErrNoActiveStudent
	}
	if err := s.store.Save(ctx, studentID, snapshot); err != nil {
		return fmt.Errorf("saving student %q: %w", studentID, err)
	}
	return nil
}

func (s *Session) ActiveStudent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeStudent
}

func (s *Session) ListStudentIDs(ctx context.Context) ([]string, error) {
	return s.store.ListStudentIDs(ctx)
}

func (s *Session) Catalog() *domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Clone()
}

func (s *Session) AddSection(ctx context.Context, course string, section domain.Section) (err error) {
	defer s.observe(ctx, "add-section", time.Now().UTC(), map[string]any{"course": course}, &err)

	course = strings.TrimSpace(course)
	if course == "" {
		return ErrEmptyCourseName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeStudent == "" {
		return ErrNoActiveStudent
	}

	existing, _ := s.catalog.Get(course)
	existing.Name = course
	existing.Sections = append(existing.Sections, section)
	s.catalog.Upsert(existing)
	return nil
}

func (s *Session) RemoveSection(ctx context.Context, course string, index int) (err error) {
	defer s.observe(ctx, "remove-section", time.Now().UTC(), map[string]any{"course": course, "index": index}, &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeStudent == "" {
		return ErrNoActiveStudent
	}

	existing, ok := s.catalog.Get(course)
	if !ok {
		return fmt.Errorf("%w: %q", ErrCourseNotFound, course)
	}
	if index < 0 || index >= len(existing.Sections) {
		return fmt.Errorf("%w: index %d out of range for course %q (%d sections)",
			ErrSectionNotFound, index, course, len(existing.Sections))
	}
	existing.Sections = append(existing.Sections[:index], existing.Sections[index+1:]...)
	s.catalog.Upsert(existing)
	return nil
}

func (s *Session) SaveOrUpdateCourse(ctx context.Context, name string, sections []domain.Section) (err error) {
	defer s.observe(ctx, "save-course", time.Now().UTC(), map[string]any{"course": name, "sections": len(sections)}, &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCourseName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeStudent == "" {
		return ErrNoActiveStudent
	}
	s.catalog.Upsert(domain.Course{Name: name, Sections: sections})
	return nil
}

func (s *Session) DeleteCourse(ctx context.Context, name string) (err error) {
	defer s.observe(ctx, "delete-course", time.Now().UTC(), map[string]any{"course": name}, &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeStudent == "" {
		return ErrNoActiveStudent
	}
	if _, ok := s.catalog.Get(name); !ok {
		return fmt.Errorf("%w: %q", ErrCourseNotFound, name)
	}
	s.catalog.Delete(name)
	return nil
}

func (s *Session) Generate(ctx context.Context, opts scheduler.Options) (result *scheduler.Result, err error) {
	s.mu.Lock()
	studentID := s.activeStudent
	snapshot := s.catalog.Clone()
	s.mu.Unlock()

	fields := map[string]any{
		"run_id":  uuid.New().String(),
		"student": studentID,
		"courses": snapshot.Len(),
		"sections": lo.SumBy(snapshot.Courses(), func(c domain.Course) int {
			return len(c.Sections)
		}),
	}
	defer s.observe(ctx, "generate-schedules", time.Now().UTC(), fields, &err)

	if studentID == "" {
		return nil, ErrNoActiveStudent
	}
	if snapshot.Len() == 0 {
		return nil, ErrNoCourses
	}

	result, err = scheduler.Generate(ctx, snapshot, opts)
	if err != nil {
		return nil, err
	}
	fields["considered"] = result.Considered
	fields["valid"] = len(result.Schedules)
	return result, nil
}

func (s *Session) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}
