package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arshia5/course-scheduler/internal/cli/formatter"
	"github.com/arshia5/course-scheduler/internal/domain"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage the selected student's courses",
	}

	cmd.AddCommand(
		newCourseSetCmd(app),
		newCourseListCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseSetCmd(app *App) *cobra.Command {
	var sections []string

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or replace a course and its sections",
		Long: "Create or replace a course. Each --section is DAY,START,END,\n" +
			"for example --section Monday,08:00,09:00. Passing no sections\n" +
			"creates a sectionless course, which empties the whole schedule\n" +
			"product until sections are added.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.requireStudent(ctx); err != nil {
				return err
			}

			parsed := make([]domain.Section, 0, len(sections))
			for _, spec := range sections {
				section, err := parseSectionSpec(spec)
				if err != nil {
					return err
				}
				parsed = append(parsed, section)
			}

			if err := app.Catalogs.SaveOrUpdateCourse(ctx, args[0], parsed); err != nil {
				return err
			}
			if err := app.Catalogs.SaveStudent(ctx); err != nil {
				return err
			}
			cmd.Printf("Course %q saved with %d sections.\n", args[0], len(parsed))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sections, "section", nil, "section as DAY,START,END (repeatable)")
	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the selected student's courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.requireStudent(ctx); err != nil {
				return err
			}
			catalog := app.Catalogs.Catalog()
			if catalog.Len() == 0 {
				cmd.Print(formatter.Dim(fmt.Sprintf("No courses saved for student %s.\n", app.Catalogs.ActiveStudent())))
				return nil
			}
			cmd.Print(formatter.FormatCourseTable(catalog))
			return nil
		},
	}
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.requireStudent(ctx); err != nil {
				return err
			}
			if err := app.Catalogs.DeleteCourse(ctx, args[0]); err != nil {
				return err
			}
			if err := app.Catalogs.SaveStudent(ctx); err != nil {
				return err
			}
			cmd.Printf("Course %q deleted.\n", args[0])
			return nil
		},
	}
}
