package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arshia5/course-scheduler/internal/service"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive course editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app)
		},
	}
}

// runShell starts the TUI and, alongside it, the periodic autosave loop.
// The autosaver stops when the shell exits.
func runShell(app *App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if app.AutosaveInterval > 0 {
		saver := service.NewAutoSaver(app.Catalogs, app.AutosaveInterval)
		go saver.Run(ctx)
	}

	p := tea.NewProgram(newShellModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running shell: %w", err)
	}

	// One final save so edits made between autosave ticks are not lost.
	if app.Catalogs.ActiveStudent() != "" {
		if err := app.Catalogs.SaveStudent(ctx); err != nil {
			return fmt.Errorf("saving on exit: %w", err)
		}
	}
	return nil
}
