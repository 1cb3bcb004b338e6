package cli

import (
	"fmt"

	"roe-gui/internal/channel"
	"roe-gui/internal/errors"

	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the roe-cli executable that batches would run",
	Args:  cobra.NoArgs,
	RunE:  runLocate,
}

func init() {
	locateCmd.SilenceErrors = true
	locateCmd.SilenceUsage = true
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	locator := channel.NewLocator(cfg.Executable.SearchPaths())
	if path, ok := locator.Resolve(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, "Searched:")
	for _, c := range locator.Candidates() {
		fmt.Fprintf(w, "  %s\n", c)
	}
	return errors.ErrExecutableNotFound
}
