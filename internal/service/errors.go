package service

import "errors"

// Failures are local and recoverable: the operation is a no-op, the caller
// is informed, and no partial state mutation survives.
var (
	ErrNoActiveStudent = errors.New("no active student: load a student first")
	ErrEmptyStudentID  = errors.New("student id must not be empty")
	ErrEmptyCourseName = errors.New("course name must not be empty")
	ErrCourseNotFound  = errors.New("course not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrNoCourses       = errors.New("no courses in catalog")
)
