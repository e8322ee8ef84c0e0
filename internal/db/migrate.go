package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs at every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The position columns record insertion order: course order within a
// student's catalog drives schedule enumeration order, and section order
// within a course drives the enumerator's per-course iteration order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL,
		UNIQUE(student_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id INTEGER NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		day       TEXT NOT NULL,
		start_min INTEGER NOT NULL,
		end_min   INTEGER NOT NULL,
		CHECK(start_min < end_min)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_student ON courses(student_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_sections_course ON sections(course_id, position)`,
}
