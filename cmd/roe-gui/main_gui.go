//go:build !cli

package main

import (
	"fmt"
	"os"

	"roe-gui/internal/channel"
	"roe-gui/internal/cli"
	"roe-gui/internal/config"
	"roe-gui/internal/log"
	"roe-gui/internal/ui"
	"roe-gui/internal/worker"
)

// run is the GUI+CLI entry point.
// It first checks for CLI subcommands, and if none are found, launches the GUI.
func run() {
	if cli.Execute(version) {
		return
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		cfg = config.Default()
	}

	closer, err := log.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	// Log the resolved executable at startup.
	locator := channel.NewLocator(cfg.Executable.SearchPaths())
	locator.Resolve()

	app, err := ui.NewApp(ui.Options{
		Version: version,
		Config:  cfg,
		Worker:  worker.New(channel.NewExecChannel(locator, nil)),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	app.Run()
}
