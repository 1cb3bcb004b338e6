package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"roe-gui/internal/app"
	"roe-gui/internal/channel"
	"roe-gui/internal/config"
	"roe-gui/internal/errors"
	"roe-gui/internal/util"
	"roe-gui/internal/worker"

	"github.com/spf13/cobra"
)

var (
	batchEncrypt       bool
	batchDecrypt       bool
	batchOutDir        string
	batchPassword      string
	batchPasswordStdin bool
	batchRecursive     bool
	batchQuiet         bool
	batchYes           bool
)

// batchOutput receives progress and results.
var batchOutput io.Writer = os.Stderr

// newChannel builds the channel batches are sent through.
var newChannel = func(cfg *config.Config) channel.Channel {
	return channel.NewExecChannel(channel.NewLocator(cfg.Executable.SearchPaths()), nil)
}

var batchCmd = &cobra.Command{
	Use:   "batch (--encrypt | --decrypt) -o DIR [flags] INPUT...",
	Short: "Run roe-cli once per input path",
	Long: `Run roe-cli once per input path and stop at the first failure.

Inputs are regular files, or a single directory with --recursive.
Encryption writes .bmp images into the output directory; decryption
restores the original files from them.`,
	Example: `  roe-gui batch --encrypt -o out/ notes.txt photo.jpg
  roe-gui batch --decrypt -o restored/ out/*.bmp
  roe-gui batch --encrypt --recursive -o out/ documents/
  echo "secret" | roe-gui batch --decrypt -P -o restored/ out/notes.bmp`,
	RunE: runBatch,
}

func init() {
	batchCmd.SilenceErrors = true
	batchCmd.SilenceUsage = true

	// Action
	batchCmd.Flags().BoolVarP(&batchEncrypt, "encrypt", "e", false, "Encrypt the inputs into .bmp images")
	batchCmd.Flags().BoolVarP(&batchDecrypt, "decrypt", "d", false, "Decrypt .bmp images")
	batchCmd.MarkFlagsMutuallyExclusive("encrypt", "decrypt")

	// Paths
	batchCmd.Flags().StringVarP(&batchOutDir, "outdir", "o", "", "Output directory (required)")
	batchCmd.Flags().BoolVarP(&batchRecursive, "recursive", "r", false, "Treat the single input as a directory tree")

	// Credentials
	batchCmd.Flags().StringVarP(&batchPassword, "password", "p", "", "Password (visible in process list; prefer -P)")
	batchCmd.Flags().BoolVarP(&batchPasswordStdin, "password-stdin", "P", false, "Read password from stdin")

	// Other
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "Suppress progress output")
	batchCmd.Flags().BoolVarP(&batchYes, "yes", "y", false, "Start without asking for confirmation")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	action, err := batchAction()
	if err != nil {
		return err
	}

	inputs, err := checkInputs(args, batchRecursive)
	if err != nil {
		return err
	}

	if batchOutDir != "" {
		if info, err := os.Stat(batchOutDir); err != nil || !info.IsDir() {
			return errors.NewValidationError("output directory", fmt.Errorf("%w: %s is not a directory", errors.ErrNoOutputDir, batchOutDir))
		}
	}

	password := batchPassword
	if batchPasswordStdin {
		password, err = ReadPasswordFromStdin()
		if err != nil {
			return err
		}
	} else if password == "" && len(inputs) > 0 && batchOutDir != "" {
		password, err = ReadPasswordInteractive()
		if err != nil {
			return errors.Wrap(err, "password input")
		}
	}

	state := app.State{
		Action:          action,
		InputPaths:      inputs,
		OutputDir:       batchOutDir,
		Password:        password,
		PasswordConfirm: password,
		Recursive:       batchRecursive,
	}
	if err := state.Validate(); err != nil {
		return err
	}

	if !batchYes && isTerminal() && !confirm(app.ConfirmText) {
		return fmt.Errorf("operation cancelled")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reporter := NewReporter(batchQuiet)
	reporter.out = batchOutput
	w := worker.New(newChannel(cfg))
	w.SetObserver(reporter)

	if !batchQuiet {
		fmt.Fprintf(batchOutput, "%sing %d input(s) into %s\n", action.Title(), len(inputs), batchOutDir)
	}

	done, ok := w.Start(context.Background(), state.Params())
	if !ok {
		return errors.ErrBatchRunning
	}
	out := <-done

	n := app.BuildNotification(out, cfg.UI.TruncateLimit)
	switch out.Kind {
	case worker.OutcomeSuccess:
		reporter.PrintSuccess("%s: %d of %d in %s", n.Message, out.Dispatched, out.Total, util.Timeify(out.Elapsed))
		return nil
	case worker.OutcomeEmpty:
		reporter.PrintSuccess("%s", n.Message)
		return nil
	}

	err = out.Err()
	reporter.PrintError("%s", n.Message)
	if errors.IsNotFound(err) {
		fmt.Fprintln(reporter.out, "Run 'roe-gui locate' to list the paths searched for roe-cli.")
	}
	return reported{err}
}

// batchAction maps --encrypt/--decrypt to an action.
func batchAction() (worker.Action, error) {
	switch {
	case batchEncrypt && batchDecrypt:
		return "", fmt.Errorf("--encrypt and --decrypt are mutually exclusive")
	case batchEncrypt:
		return worker.ActionEncrypt, nil
	case batchDecrypt:
		return worker.ActionDecrypt, nil
	}
	return "", fmt.Errorf("%w: one of --encrypt or --decrypt is required", errors.ErrUnknownAction)
}

// checkInputs returns args as cleaned paths. Without recursive every input
// must be a regular file; with it, exactly one directory is accepted.
func checkInputs(args []string, recursive bool) ([]string, error) {
	if recursive {
		if len(args) != 1 {
			return nil, fmt.Errorf("--recursive takes exactly one directory, got %d inputs", len(args))
		}
		info, err := os.Stat(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", args[0], err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", args[0])
		}
		return []string{filepath.Clean(args[0])}, nil
	}

	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory (use --recursive)", arg)
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s is not a regular file", arg)
		}
		inputs = append(inputs, filepath.Clean(arg))
	}
	return inputs, nil
}

// confirm asks question on stderr and reads a yes/no answer from stdin.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// reported marks an error the reporter has already printed.
type reported struct{ error }

func (r reported) Unwrap() error { return r.error }
