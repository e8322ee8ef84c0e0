package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/arshia5/course-scheduler/internal/cli/formatter"
	"github.com/arshia5/course-scheduler/internal/domain"
)

// schedHuhTheme matches the formatter palette.
func schedHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var errEmptyInput = errors.New("value required")

func validateStudentID(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyInput
	}
	return nil
}

func validateCourseName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyInput
	}
	return nil
}

func validateClock(s string) error {
	_, err := domain.ParseClock(s)
	return err
}

// studentForm collects the student id to load or create.
type studentForm struct {
	ID string
}

func (f *studentForm) build() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student ID").
				Placeholder("s123").
				Value(&f.ID).
				Validate(validateStudentID),
		),
	).WithTheme(schedHuhTheme()).WithShowHelp(false)
}

// sectionForm collects one meeting time for a (possibly new) course.
type sectionForm struct {
	Course string
	Day    string
	Start  string
	End    string
}

func newSectionForm(course string) *sectionForm {
	return &sectionForm{Course: course, Day: string(domain.Monday)}
}

func (f *sectionForm) build() *huh.Form {
	dayOptions := lo.Map(domain.AllWeekdays, func(d domain.Weekday, _ int) huh.Option[string] {
		return huh.NewOption(string(d), string(d))
	})

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course Name").
				Placeholder("Math").
				Value(&f.Course).
				Validate(validateCourseName),
			huh.NewSelect[string]().
				Title("Day").
				Options(dayOptions...).
				Value(&f.Day),
			huh.NewInput().
				Title("Start Time (HH:MM)").
				Placeholder("08:30").
				Value(&f.Start).
				Validate(validateClock),
			huh.NewInput().
				Title("End Time (HH:MM)").
				Placeholder("10:20").
				Value(&f.End).
				Validate(validateClock),
		),
	).WithTheme(schedHuhTheme()).WithShowHelp(false)
}

// section parses the collected values. End-before-start is caught here,
// after the per-field validators have passed.
func (f *sectionForm) section() (domain.Section, error) {
	return domain.ParseSection(f.Day, f.Start, f.End)
}
