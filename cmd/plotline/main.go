package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mkoval/plotline/internal/cli"
	"github.com/mkoval/plotline/internal/client"
	"github.com/mkoval/plotline/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dataDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	positions, err := client.OpenPositionStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening position store: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	store := client.NewStore(cfg.ServerURL, positions, logger)

	app := &cli.App{
		Config:    cfg,
		Store:     store,
		Positions: positions,
	}

	// Detect interactive terminal; styled output is reserved for humans.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
