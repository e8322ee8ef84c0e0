package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arshia5/course-scheduler/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Catalogs  service.CatalogService
	Schedules service.ScheduleService

	// AutosaveInterval is used by the interactive shell; zero disables
	// autosave.
	AutosaveInterval time.Duration

	// IsInteractive reports whether stdin is a terminal; the bare command
	// launches the shell only when it is.
	IsInteractive func() bool

	// studentID is the value of the persistent --student flag.
	studentID string
}

// requireStudent loads the student named by --student and makes it active.
// One-shot commands call this before touching the catalog.
func (app *App) requireStudent(ctx context.Context) error {
	if app.studentID == "" {
		return fmt.Errorf("no student selected: pass --student")
	}
	return app.Catalogs.LoadStudent(ctx, app.studentID)
}

// registerStudentFlag attaches the shared --student flag to a flag set.
func registerStudentFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, "student", "s", "", "student id to operate on")
}

// NewRootCmd creates the top-level "coursched" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "coursched",
		Short: "Pick conflict-free course schedules",
		Long: "coursched stores each student's course catalog and generates every\n" +
			"conflict-free combination of one section per course.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	registerStudentFlag(root.PersistentFlags(), &app.studentID)

	root.AddCommand(
		newStudentCmd(app),
		newCourseCmd(app),
		newSectionCmd(app),
		newGenerateCmd(app),
		newShellCmd(app),
	)

	return root
}
