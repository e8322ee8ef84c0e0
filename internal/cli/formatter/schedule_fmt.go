package formatter

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/arshia5/course-scheduler/internal/domain"
	"github.com/arshia5/course-scheduler/internal/scheduler"
)

// FormatGenerateResult renders a generation run: a count line followed by
// one block per schedule, sections in display order.
func FormatGenerateResult(studentID string, result *scheduler.Result) string {
	var b strings.Builder

	if len(result.EmptyCourses) > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf(
			"No schedules possible: %s no sections.",
			describeCourses(result.EmptyCourses))))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(Header(fmt.Sprintf("Found %d valid schedules for student %s.", len(result.Schedules), studentID)))
	b.WriteString("\n\n")

	for i, schedule := range result.Schedules {
		b.WriteString(StyleBlue.Render(fmt.Sprintf("--- Schedule #%d ---", i+1)))
		b.WriteString("\n")
		for _, p := range schedule {
			b.WriteString(fmt.Sprintf("%s, %s - %s: %s\n",
				p.Section.Day, p.Section.Start, p.Section.End, StyleBold.Render(p.Course)))
		}
		b.WriteString("\n")
	}

	if result.Truncated {
		b.WriteString(Dim(fmt.Sprintf("Output capped; %d combinations were considered before stopping.\n", result.Considered)))
	}

	return b.String()
}

func describeCourses(names []string) string {
	quoted := lo.Map(names, func(n string, _ int) string { return fmt.Sprintf("%q", n) })
	if len(quoted) == 1 {
		return fmt.Sprintf("course %s has", quoted[0])
	}
	return fmt.Sprintf("courses %s have", strings.Join(quoted, ", "))
}

// FormatCatalog renders every course and its sections for the active
// student.
func FormatCatalog(studentID string, catalog *domain.Catalog) string {
	if catalog.Len() == 0 {
		return Dim(fmt.Sprintf("No courses saved for student %s.\n", studentID))
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Courses for student %s:", studentID)))
	b.WriteString("\n\n")
	for _, course := range catalog.Courses() {
		b.WriteString(StyleBold.Render(course.Name))
		b.WriteString("\n")
		if len(course.Sections) == 0 {
			b.WriteString(Dim("   (no sections)\n"))
		}
		for _, sec := range course.Sections {
			b.WriteString(fmt.Sprintf("   - %s\n", sec))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCourseTable renders a compact course/section-count table.
func FormatCourseTable(catalog *domain.Catalog) string {
	rows := lo.Map(catalog.Courses(), func(c domain.Course, _ int) []string {
		return []string{c.Name, fmt.Sprintf("%d", len(c.Sections))}
	})
	return RenderTable([]string{"COURSE", "SECTIONS"}, rows)
}

// FormatStudentList renders the ids of every student known to the store.
func FormatStudentList(ids []string) string {
	if len(ids) == 0 {
		return Dim("No students found.\n")
	}
	var b strings.Builder
	b.WriteString(Header("All students:"))
	b.WriteString("\n")
	for _, id := range ids {
		b.WriteString(fmt.Sprintf("- %s\n", id))
	}
	return b.String()
}
