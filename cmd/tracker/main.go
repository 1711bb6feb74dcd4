package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Emilyfan-learn/Project-manage/internal/cli"
	"github.com/Emilyfan-learn/Project-manage/internal/db"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tracker/tracker.db
	dbPath := os.Getenv("TRACKER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tracker", "tracker.db")
	}

	// Suppress styling when output is piped or redirected. lipgloss honors
	// NO_COLOR, which keeps CSV and scripted output clean.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	itemRepo := repository.NewSQLiteTrackingItemRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	pendingRepo := repository.NewSQLitePendingRepo(database)
	issueRepo := repository.NewSQLiteIssueRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)

	// Wire services
	settingsSvc := service.NewSettingsService(settingsRepo, holidayRepo)

	app := &cli.App{
		Projects:     service.NewProjectService(projectRepo),
		WBS:          service.NewWBSService(itemRepo, settingsSvc),
		Settings:     settingsSvc,
		Pending:      service.NewPendingService(pendingRepo),
		Issues:       service.NewIssueService(issueRepo),
		Dependencies: service.NewDependencyService(depRepo, itemRepo),
		DB:           database,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
