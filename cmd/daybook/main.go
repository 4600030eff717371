package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daybookapp/daybook/internal/cli"
	"github.com/daybookapp/daybook/internal/config"
	"github.com/daybookapp/daybook/internal/db"
	"github.com/daybookapp/daybook/internal/domain"
	"github.com/daybookapp/daybook/internal/planner"
	"github.com/daybookapp/daybook/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Determine DB path: env var, then config, then ~/.daybook/daybook.db
	dbPath := os.Getenv("DAYBOOK_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".daybook", "daybook.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := storage.NewSlotStore(database)

	// Seed the hour window from config on the very first run. After that
	// the planner's own persisted range wins.
	if !store.Has(storage.SlotTimeRange) {
		if r := cfg.SeedRange(); r.Valid() {
			store.SaveTimeRange(r)
		}
	}

	clock := domain.SystemClock{}
	app := &cli.App{
		Planner:      planner.New(store, clock),
		Clock:        clock,
		DefaultColor: cfg.DefaultColor,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
