package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshia5/course-scheduler/internal/service"
	"github.com/arshia5/course-scheduler/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	st := store.NewJSONStore(filepath.Join(t.TempDir(), "schedules.json"))
	session := service.NewSession(st)
	return &App{
		Catalogs:      session,
		Schedules:     session,
		IsInteractive: func() bool { return false },
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommandsRequireStudentFlag(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "course", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--student")
}

func TestCourseSetListRemove(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "course", "set", "Math",
		"--section", "Monday,08:00,09:00",
		"--section", "Wednesday,08:00,09:00",
		"-s", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, `Course "Math" saved with 2 sections.`)

	out, err = execute(t, app, "course", "list", "-s", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "Math")
	assert.Contains(t, out, "2")

	out, err = execute(t, app, "course", "remove", "Math", "-s", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, `Course "Math" deleted.`)

	out, err = execute(t, app, "course", "list", "-s", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "No courses saved")
}

func TestCourseSetRejectsBadSectionSpec(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "course", "set", "Math", "--section", "Monday,08:00", "-s", "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAY,START,END")
}

func TestSectionAddAndRemove(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "section", "add", "Math", "Monday", "08:00", "09:00", "-s", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, `Added Monday, 08:00 - 09:00 to "Math".`)

	out, err = execute(t, app, "student", "show", "-s", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "- Monday, 08:00 - 09:00")

	out, err = execute(t, app, "section", "remove", "Math", "--index", "0", "-s", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, `Removed section 0 from "Math".`)

	_, err = execute(t, app, "section", "remove", "Math", "--index", "0", "-s", "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestSectionAddRejectsInvalidTimes(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "section", "add", "Math", "Monday", "09:00", "08:00", "-s", "s1")
	require.Error(t, err)
}

func TestStudentList(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "student", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No students found.")

	_, err = execute(t, app, "course", "set", "Math", "-s", "bob")
	require.NoError(t, err)

	out, err = execute(t, app, "student", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "- bob")
}

func TestGenerateCommand(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "course", "set", "Math",
		"--section", "Monday,08:00,09:00",
		"--section", "Monday,10:00,11:00",
		"-s", "s1")
	require.NoError(t, err)
	_, err = execute(t, app, "course", "set", "Phys",
		"--section", "Monday,08:30,09:30",
		"-s", "s1")
	require.NoError(t, err)

	out, err := execute(t, app, "generate", "-s", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 valid schedules for student s1.")
	assert.Contains(t, out, "Monday, 08:30 - 09:30: Phys")
}

func TestGenerateCommandNoCourses(t *testing.T) {
	app := newTestApp(t)
	out, err := execute(t, app, "generate", "-s", "empty")
	require.NoError(t, err)
	assert.Contains(t, out, "No courses found; nothing to schedule.")
}

func TestGenerateCommandWritesCSV(t *testing.T) {
	app := newTestApp(t)
	csvPath := filepath.Join(t.TempDir(), "out.csv")

	_, err := execute(t, app, "course", "set", "Math", "--section", "Monday,08:00,09:00", "-s", "s1")
	require.NoError(t, err)

	out, err := execute(t, app, "generate", "--csv", csvPath, "-s", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+csvPath)
}

func TestParseSectionSpec(t *testing.T) {
	section, err := parseSectionSpec("tuesday,14:00,15:20")
	require.NoError(t, err)
	assert.Equal(t, "Tuesday, 14:00 - 15:20", section.String())

	_, err = parseSectionSpec("Monday 08:00 09:00")
	assert.Error(t, err)
}
