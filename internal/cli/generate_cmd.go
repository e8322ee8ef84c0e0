package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/arshia5/course-scheduler/internal/cli/formatter"
	"github.com/arshia5/course-scheduler/internal/csvio"
	"github.com/arshia5/course-scheduler/internal/scheduler"
	"github.com/arshia5/course-scheduler/internal/service"
)

func newGenerateCmd(app *App) *cobra.Command {
	var maxSchedules int
	var csvPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate every conflict-free schedule for the selected student",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.requireStudent(ctx); err != nil {
				return err
			}

			result, err := app.Schedules.Generate(ctx, scheduler.Options{MaxSchedules: maxSchedules})
			if errors.Is(err, service.ErrNoCourses) {
				cmd.Print(formatter.Dim("No courses found; nothing to schedule.\n"))
				return nil
			}
			if err != nil {
				return err
			}

			cmd.Print(formatter.FormatGenerateResult(app.Catalogs.ActiveStudent(), result))

			if csvPath != "" {
				if err := csvio.ExportSchedules(result.Schedules, csvPath); err != nil {
					return err
				}
				cmd.Printf("Wrote %s\n", csvPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxSchedules, "max", 0, "cap on returned schedules (0 = unlimited)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also write schedules to a CSV file")
	return cmd
}
