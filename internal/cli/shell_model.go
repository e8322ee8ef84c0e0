package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/arshia5/course-scheduler/internal/cli/formatter"
	"github.com/arshia5/course-scheduler/internal/domain"
	"github.com/arshia5/course-scheduler/internal/scheduler"
	"github.com/arshia5/course-scheduler/internal/service"
)

// shellMaxSchedules caps interactive generation; the product of section
// counts can explode and the shell must stay responsive.
const shellMaxSchedules = 500

type shellMode int

const (
	modeStudent shellMode = iota // collecting a student id
	modeBrowse                   // course list
	modeSection                  // collecting a new section
	modeOutput                   // scrollable output view
)

// courseItem adapts a course for the bubbles list.
type courseItem struct {
	course domain.Course
}

func (i courseItem) Title() string { return i.course.Name }
func (i courseItem) Description() string {
	n := len(i.course.Sections)
	if n == 0 {
		return "no sections"
	}
	if n == 1 {
		return i.course.Sections[0].String()
	}
	return fmt.Sprintf("%d sections", n)
}
func (i courseItem) FilterValue() string { return i.course.Name }

// resultMsg carries the outcome of a service call back into the model.
type resultMsg struct {
	output string
	err    error
	// browse returns to the course list instead of the output view.
	browse bool
}

type shellModel struct {
	app  *App
	mode shellMode

	courses  list.Model
	output   viewport.Model
	form     *huh.Form
	student  *studentForm
	section  *sectionForm
	statusln string

	width  int
	height int
}

func newShellModel(app *App) shellModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(formatter.ColorHeader).BorderLeftForeground(formatter.ColorHeader)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(formatter.ColorDim).BorderLeftForeground(formatter.ColorHeader)

	courses := list.New(nil, delegate, 0, 0)
	courses.Title = "Saved Courses"
	courses.SetShowHelp(false)
	courses.SetShowStatusBar(false)

	m := shellModel{
		app:     app,
		courses: courses,
		output:  viewport.New(0, 0),
	}

	if app.Catalogs.ActiveStudent() == "" {
		m.mode = modeStudent
		m.student = &studentForm{}
		m.form = m.student.build()
	} else {
		m.mode = modeBrowse
		m.refreshCourses()
	}
	return m
}

func (m *shellModel) refreshCourses() {
	items := lo.Map(m.app.Catalogs.Catalog().Courses(), func(c domain.Course, _ int) list.Item {
		return courseItem{course: c}
	})
	m.courses.SetItems(items)
}

func (m shellModel) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.courses.SetSize(msg.Width, msg.Height-4)
		m.output.Width = msg.Width
		m.output.Height = msg.Height - 3
		return m, nil

	case resultMsg:
		m.refreshCourses()
		if msg.err != nil {
			m.statusln = formatter.StyleRed.Render(msg.err.Error())
			m.mode = modeBrowse
			return m, nil
		}
		m.statusln = ""
		if msg.browse {
			if msg.output != "" {
				m.statusln = formatter.StyleGreen.Render(msg.output)
			}
			m.mode = modeBrowse
			return m, nil
		}
		m.output.SetContent(msg.output)
		m.output.GotoTop()
		m.mode = modeOutput
		return m, nil
	}

	switch m.mode {
	case modeStudent, modeSection:
		return m.updateForm(msg)
	case modeOutput:
		return m.updateOutput(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m shellModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.mode == modeSection {
		// Cancelling the student form would leave the shell with nothing
		// to show, so only the section form is cancellable.
		m.mode = modeBrowse
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		switch m.mode {
		case modeStudent:
			return m.completeStudentForm()
		case modeSection:
			return m.completeSectionForm()
		}
	}
	return m, cmd
}

func (m shellModel) completeStudentForm() (tea.Model, tea.Cmd) {
	id := m.student.ID
	m.form = nil
	m.mode = modeBrowse
	app := m.app
	return m, func() tea.Msg {
		if err := app.Catalogs.LoadStudent(context.Background(), id); err != nil {
			return resultMsg{err: err, browse: true}
		}
		return resultMsg{output: fmt.Sprintf("Loaded data for student %s.", id), browse: true}
	}
}

func (m shellModel) completeSectionForm() (tea.Model, tea.Cmd) {
	f := m.section
	m.form = nil
	m.mode = modeBrowse
	app := m.app
	return m, func() tea.Msg {
		section, err := f.section()
		if err != nil {
			return resultMsg{err: err, browse: true}
		}
		if err := app.Catalogs.AddSection(context.Background(), f.Course, section); err != nil {
			return resultMsg{err: err, browse: true}
		}
		return resultMsg{output: fmt.Sprintf("Added %s to %q.", section, f.Course), browse: true}
	}
}

func (m shellModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.courses.SettingFilter() {
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "a":
			// Pre-fill the course name when a course is selected.
			course := ""
			if item, ok := m.courses.SelectedItem().(courseItem); ok {
				course = item.course.Name
			}
			m.section = newSectionForm(course)
			m.form = m.section.build()
			m.mode = modeSection
			return m, m.form.Init()

		case "n":
			m.section = newSectionForm("")
			m.form = m.section.build()
			m.mode = modeSection
			return m, m.form.Init()

		case "d":
			item, ok := m.courses.SelectedItem().(courseItem)
			if !ok {
				m.statusln = formatter.Dim("No course selected.")
				return m, nil
			}
			app := m.app
			name := item.course.Name
			return m, func() tea.Msg {
				if err := app.Catalogs.DeleteCourse(context.Background(), name); err != nil {
					return resultMsg{err: err, browse: true}
				}
				return resultMsg{output: fmt.Sprintf("Course %q deleted.", name), browse: true}
			}

		case "x":
			item, ok := m.courses.SelectedItem().(courseItem)
			if !ok {
				m.statusln = formatter.Dim("No course selected.")
				return m, nil
			}
			app := m.app
			name := item.course.Name
			last := len(item.course.Sections) - 1
			return m, func() tea.Msg {
				if err := app.Catalogs.RemoveSection(context.Background(), name, last); err != nil {
					return resultMsg{err: err, browse: true}
				}
				return resultMsg{output: fmt.Sprintf("Removed last section from %q.", name), browse: true}
			}

		case "g":
			app := m.app
			return m, func() tea.Msg {
				result, err := app.Schedules.Generate(context.Background(),
					scheduler.Options{MaxSchedules: shellMaxSchedules})
				if errors.Is(err, service.ErrNoCourses) {
					return resultMsg{output: "No courses found; nothing to schedule.", browse: true}
				}
				if err != nil {
					return resultMsg{err: err, browse: true}
				}
				return resultMsg{output: formatter.FormatGenerateResult(app.Catalogs.ActiveStudent(), result)}
			}

		case "v":
			app := m.app
			return m, func() tea.Msg {
				return resultMsg{output: formatter.FormatCatalog(app.Catalogs.ActiveStudent(), app.Catalogs.Catalog())}
			}

		case "u":
			app := m.app
			return m, func() tea.Msg {
				ids, err := app.Catalogs.ListStudentIDs(context.Background())
				if err != nil {
					return resultMsg{err: err, browse: true}
				}
				return resultMsg{output: formatter.FormatStudentList(ids)}
			}

		case "w":
			app := m.app
			return m, func() tea.Msg {
				if err := app.Catalogs.SaveStudent(context.Background()); err != nil {
					return resultMsg{err: err, browse: true}
				}
				return resultMsg{output: fmt.Sprintf("Data saved for student %q.", app.Catalogs.ActiveStudent()), browse: true}
			}

		case "l":
			m.student = &studentForm{}
			m.form = m.student.build()
			m.mode = modeStudent
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.courses, cmd = m.courses.Update(msg)
	return m, cmd
}

func (m shellModel) updateOutput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "esc":
			m.mode = modeBrowse
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.output, cmd = m.output.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	switch m.mode {
	case modeStudent, modeSection:
		if m.form == nil {
			return ""
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())

	case modeOutput:
		footer := formatter.Dim("esc back · ↑/↓ scroll · ctrl+c quit")
		return m.output.View() + "\n" + footer

	default:
		header := formatter.Header(fmt.Sprintf("coursched · student %s", m.app.Catalogs.ActiveStudent()))
		help := formatter.Dim("a add section · n new course · d delete course · x drop last section · g generate · v view all · u students · w save · l switch student · q quit")
		body := m.courses.View()
		if m.statusln != "" {
			help = m.statusln + "\n" + help
		}
		return header + "\n" + body + "\n" + help
	}
}
