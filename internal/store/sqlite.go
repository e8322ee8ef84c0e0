package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/arshia5/course-scheduler/internal/db"
	"github.com/arshia5/course-scheduler/internal/domain"
)

// SQLiteStore implements Store on a SQLite database. Saves replace the
// student's rows inside one transaction, so a failed save leaves the prior
// catalog intact.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a store over an already-opened database.
func NewSQLiteStore(conn *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: conn}
}

var _ Store = (*SQLiteStore)(nil)

func (s *SQLiteStore) Load(ctx context.Context, studentID string) (*domain.Catalog, error) {
	catalog := domain.NewCatalog()

	courses, err := s.loadCourses(ctx, s.db, studentID)
	if err != nil {
		// Lenient read policy: an unreadable record loads as empty.
		return domain.NewCatalog(), nil
	}
	for _, course := range courses {
		catalog.Upsert(course)
	}
	return catalog, nil
}

func (s *SQLiteStore) loadCourses(ctx context.Context, conn db.DBTX, studentID string) ([]domain.Course, error) {
	rows, err := conn.QueryContext(ctx,
		`SELECT id, name FROM courses WHERE student_id = ? ORDER BY position`, studentID)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	type courseRow struct {
		id   int64
		name string
	}
	var courseRows []courseRow
	for rows.Next() {
		var cr courseRow
		if err := rows.Scan(&cr.id, &cr.name); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courseRows = append(courseRows, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	courses := make([]domain.Course, 0, len(courseRows))
	for _, cr := range courseRows {
		sections, err := s.loadSections(ctx, conn, cr.id)
		if err != nil {
			return nil, err
		}
		courses = append(courses, domain.Course{Name: cr.name, Sections: sections})
	}
	return courses, nil
}

func (s *SQLiteStore) loadSections(ctx context.Context, conn db.DBTX, courseID int64) ([]domain.Section, error) {
	rows, err := conn.QueryContext(ctx,
		`SELECT day, start_min, end_min FROM sections WHERE course_id = ? ORDER BY position`, courseID)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var day string
		var startMin, endMin int
		if err := rows.Scan(&day, &startMin, &endMin); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		weekday, err := domain.ParseWeekday(day)
		if err != nil {
			return nil, err
		}
		section, err := domain.NewSection(weekday, domain.Clock(startMin), domain.Clock(endMin))
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return sections, nil
}

func (s *SQLiteStore) Save(ctx context.Context, studentID string, catalog *domain.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting save transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO students (id) VALUES (?)`, studentID); err != nil {
		return fmt.Errorf("upserting student: %w", err)
	}
	// Replace semantics: the prior catalog rows go away wholesale.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM courses WHERE student_id = ?`, studentID); err != nil {
		return fmt.Errorf("clearing prior catalog: %w", err)
	}

	for pos, course := range catalog.Courses() {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO courses (student_id, name, position) VALUES (?, ?, ?)`,
			studentID, course.Name, pos)
		if err != nil {
			return fmt.Errorf("inserting course %q: %w", course.Name, err)
		}
		courseID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading course id: %w", err)
		}
		for i, sec := range course.Sections {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO sections (course_id, position, day, start_min, end_min) VALUES (?, ?, ?, ?, ?)`,
				courseID, i, sec.Day.String(), int(sec.Start), int(sec.End)); err != nil {
				return fmt.Errorf("inserting section for %q: %w", course.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	committed = true
	return nil
}

func (s *SQLiteStore) ListStudentIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM students`)
	if err != nil {
		return nil, fmt.Errorf("querying students: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning student id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}
