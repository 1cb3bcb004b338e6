//go:build cli

package main

import (
	"fmt"
	"os"

	"roe-gui/internal/cli"
)

// run is the CLI-only entry point.
// This build excludes the Fyne window driver and can run on headless
// systems without graphics hardware.
func run() {
	if !cli.Execute(version) {
		fmt.Fprintf(os.Stderr, "roe-gui %s (CLI-only build)\n", version)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: roe-gui <command> [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  batch      Encrypt or decrypt a list of inputs with roe-cli")
		fmt.Fprintln(os.Stderr, "  locate     Print the roe-cli executable in use")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run 'roe-gui <command> --help' for more information.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Note: This is a CLI-only build without GUI support.")
		fmt.Fprintln(os.Stderr, "For GUI version, build without the 'cli' tag.")
		os.Exit(0)
	}
}
