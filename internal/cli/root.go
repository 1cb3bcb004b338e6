package cli

import (
	"fmt"
	"io"
	"os"

	"roe-gui/internal/config"
	"roe-gui/internal/errors"
	"roe-gui/internal/log"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

var (
	configPath string
	logLevel   string
)

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "roe-gui",
	Short: "Batch front end for the roe-cli image cipher",
	Long: `roe-gui encrypts files into .bmp images and decrypts them back by
running the roe-cli executable once per input path.

Without a subcommand the graphical interface starts. The batch command
runs the same job queue from a terminal.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		level := cfg.Log.Level
		if logLevel != "" {
			level = logLevel
		}
		closer, err := log.Setup(level, cfg.Log.File)
		if err != nil {
			return err
		}
		logCloser = closer
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
			logCloser = nil
		}
	},
}

var logCloser io.Closer

// subcommands lists the first arguments that select CLI mode.
var subcommands = map[string]bool{
	"batch":     true,
	"locate":    true,
	"help":      true,
	"--help":    true,
	"-h":        true,
	"version":   true,
	"--version": true,
	"-v":        true,
}

// Execute runs the CLI application.
// Returns true if CLI mode was activated, false if GUI should run instead.
func Execute(version string) bool {
	Version = version
	rootCmd.Version = version

	if len(os.Args) < 2 || !subcommands[os.Args[1]] {
		return false
	}

	if err := rootCmd.Execute(); err != nil {
		var r reported
		if !errors.As(err, &r) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	return true
}

// loadConfig reads --config, or the default location when it is unset.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "roe-gui %s\n", Version)
	},
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $"+config.EnvPath+" or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(versionCmd)
}
