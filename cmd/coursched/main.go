package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/arshia5/course-scheduler/internal/cli"
	"github.com/arshia5/course-scheduler/internal/db"
	"github.com/arshia5/course-scheduler/internal/service"
	"github.com/arshia5/course-scheduler/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	// Optional use-case logging to stderr.
	var observers []service.UseCaseObserver
	if os.Getenv("COURSESCHED_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	session := service.NewSession(st, observers...)

	app := &cli.App{
		Catalogs:         session,
		Schedules:        session,
		AutosaveInterval: autosaveInterval(),
	}

	// The bare command opens the interactive shell only on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// openStore selects the persistence backend: the JSON file store by
// default, or SQLite via COURSESCHED_STORE=sqlite.
func openStore() (store.Store, func(), error) {
	noop := func() {}

	dataPath := os.Getenv("COURSESCHED_DATA")
	switch os.Getenv("COURSESCHED_STORE") {
	case "sqlite":
		if dataPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, noop, fmt.Errorf("finding home directory: %w", err)
			}
			dataPath = filepath.Join(home, ".coursched", "coursched.db")
		}
		database, err := db.OpenDB(dataPath)
		if err != nil {
			return nil, noop, fmt.Errorf("opening database: %w", err)
		}
		return store.NewSQLiteStore(database), func() { database.Close() }, nil

	case "", "json":
		if dataPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, noop, fmt.Errorf("finding home directory: %w", err)
			}
			dataPath = filepath.Join(home, ".coursched", "schedules.json")
		}
		return store.NewJSONStore(dataPath), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown COURSESCHED_STORE %q (want json or sqlite)", os.Getenv("COURSESCHED_STORE"))
	}
}

// autosaveInterval reads COURSESCHED_AUTOSAVE: a duration such as "10s",
// "off" to disable, or empty for the 5-second default.
func autosaveInterval() time.Duration {
	switch v := os.Getenv("COURSESCHED_AUTOSAVE"); v {
	case "":
		return service.DefaultAutosaveInterval
	case "off":
		return 0
	default:
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return service.DefaultAutosaveInterval
		}
		return d
	}
}
