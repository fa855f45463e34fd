package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rvaughn/taskdesk/internal/cli"
	"github.com/rvaughn/taskdesk/internal/config"
	"github.com/rvaughn/taskdesk/internal/db"
	"github.com/rvaughn/taskdesk/internal/notify"
	"github.com/rvaughn/taskdesk/internal/repository"
	"github.com/rvaughn/taskdesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	messageRepo := repository.NewSQLiteMessageRepo(database)

	// Unit of work for operations that span a read and a write.
	uow := db.NewSQLiteUnitOfWork(database)

	// Notification hub: services publish workflow events into it, the
	// store watcher adds change events from other processes.
	hub := notify.NewHub()
	if cfg.WatchStore {
		watcher, err := notify.StartWatcher(hub, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("watching store: %w", err)
		}
		defer watcher.Close()
	}

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, hub, cfg.CommissionPct),
		Feed:     service.NewFeedService(projectRepo),
		Earnings: service.NewEarningsService(projectRepo),
		Chat:     service.NewChatService(messageRepo, uow, hub),
		Profiles: service.NewProfileService(profileRepo),
		Hub:      hub,
		Config:   cfg,
	}

	// Detect interactive terminal for dashboard entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
