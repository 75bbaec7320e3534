package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GeekPO11/dlulu/internal/cli"
	"github.com/GeekPO11/dlulu/internal/db"
	"github.com/GeekPO11/dlulu/internal/planner"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/service"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.dlulu/dlulu.db
	dbPath := os.Getenv("DLULU_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dlulu", "dlulu.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	goalRepo := repository.NewSQLiteGoalRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	profileRepo := repository.NewSQLiteUserProfileRepo(database)

	// Wire the planning collaborator. A disabled client fails fast with
	// ErrDisabled and every service falls back to deterministic strategy.
	plannerCfg := planner.LoadConfig()
	var plannerObs planner.Observer = planner.NoopObserver{}
	if plannerCfg.LogCalls {
		plannerObs = planner.NewLogObserver(os.Stderr)
	}
	plannerClient := planner.NewOllamaClient(plannerCfg, plannerObs)

	var observers []service.UseCaseObserver
	if v := os.Getenv("DLULU_LOG"); v != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	newID := func() string { return uuid.New().String() }

	app := &cli.App{
		Goals:      service.NewGoalService(goalRepo, newID, observers...),
		Focus:      service.NewFocusService(goalRepo, eventRepo, profileRepo, observers...),
		Schedule:   service.NewScheduleService(goalRepo, eventRepo, profileRepo, plannerClient, newID, observers...),
		MasterPlan: service.NewMasterPlanService(goalRepo, eventRepo, profileRepo, plannerClient, newID, observers...),
		Conflicts:  service.NewConflictService(eventRepo, profileRepo, observers...),
		Events:     service.NewEventService(eventRepo, profileRepo, observers...),
	}

	// Detect interactive terminal for the form and TUI entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
