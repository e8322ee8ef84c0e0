package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arshia5/course-scheduler/internal/domain"
)

// parseSectionSpec parses the "DAY,START,END" form used by section flags,
// e.g. "Monday,08:00,09:00". Day is case-insensitive.
func parseSectionSpec(spec string) (domain.Section, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return domain.Section{}, fmt.Errorf("invalid section %q: expected DAY,START,END", spec)
	}
	return domain.ParseSection(parts[0], parts[1], parts[2])
}

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage a course's sections",
	}

	cmd.AddCommand(
		newSectionAddCmd(app),
		newSectionRemoveCmd(app),
	)

	return cmd
}

func newSectionAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <course> <day> <start> <end>",
		Short: "Add one meeting time to a course",
		Long: "Add a meeting time, e.g.:\n" +
			"  coursched section add Math Monday 08:00 09:00\n" +
			"The course is created if it does not exist. End must be after start.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.requireStudent(ctx); err != nil {
				return err
			}

			section, err := domain.ParseSection(args[1], args[2], args[3])
			if err != nil {
				return err
			}
			if err := app.Catalogs.AddSection(ctx, args[0], section); err != nil {
				return err
			}
			if err := app.Catalogs.SaveStudent(ctx); err != nil {
				return err
			}
			cmd.Printf("Added %s to %q.\n", section, args[0])
			return nil
		},
	}
}

func newSectionRemoveCmd(app *App) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "remove <course>",
		Short: "Remove a section by its position",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.requireStudent(ctx); err != nil {
				return err
			}
			if err := app.Catalogs.RemoveSection(ctx, args[0], index); err != nil {
				return err
			}
			if err := app.Catalogs.SaveStudent(ctx); err != nil {
				return err
			}
			cmd.Printf("Removed section %d from %q.\n", index, args[0])
			return nil
		},
	}

	cmd.Args = cobra.ExactArgs(1)
	cmd.Flags().IntVar(&index, "index", 0, "0-based section position, in stored order")
	return cmd
}
