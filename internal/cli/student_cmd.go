package cli

import (
	"github.com/spf13/cobra"

	"github.com/arshia5/course-scheduler/internal/cli/formatter"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students",
	}

	cmd.AddCommand(
		newStudentListCmd(app),
		newStudentShowCmd(app),
	)

	return cmd
}

func newStudentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every student id in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := app.Catalogs.ListStudentIDs(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Print(formatter.FormatStudentList(ids))
			return nil
		},
	}
}

func newStudentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the selected student's courses and sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.requireStudent(ctx); err != nil {
				return err
			}
			cmd.Print(formatter.FormatCatalog(app.Catalogs.ActiveStudent(), app.Catalogs.Catalog()))
			return nil
		},
	}
}
