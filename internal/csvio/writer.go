// Package csvio exports generated schedules as CSV for spreadsheet use.
package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/arshia5/course-scheduler/internal/domain"
)

// ScheduleRow is one section of one generated schedule.
type ScheduleRow struct {
	Schedule int    `csv:"schedule"`
	Course   string `csv:"course"`
	Day      string `csv:"day"`
	Start    string `csv:"start"`
	End      string `csv:"end"`
}

// Rows flattens schedules into CSV rows, numbering schedules from 1 and
// keeping each schedule's display order.
func Rows(schedules []domain.Schedule) []*ScheduleRow {
	var rows []*ScheduleRow
	for i, schedule := range schedules {
		for _, p := range schedule {
			rows = append(rows, &ScheduleRow{
				Schedule: i + 1,
				Course:   p.Course,
				Day:      p.Section.Day.String(),
				Start:    p.Section.Start.String(),
				End:      p.Section.End.String(),
			})
		}
	}
	return rows
}

// ExportSchedules writes the schedules to a CSV file at the given path,
// replacing any existing file.
func ExportSchedules(schedules []domain.Schedule, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer out.Close()

	rows := Rows(schedules)
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// ExportSchedulesString renders the schedules as a CSV document.
func ExportSchedulesString(schedules []domain.Schedule) (string, error) {
	rows := Rows(schedules)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("encoding csv: %w", err)
	}
	return str, nil
}
