package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"roe-gui/internal/errors"

	"golang.org/x/term"
)

// isTerminal returns true if stdin is a terminal (not piped/redirected).
func isTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// readLine reads one line from r without its line ending.
func readLine(r io.Reader) (string, error) {
	pw, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || pw == "") {
		return "", err
	}
	pw = strings.TrimSuffix(pw, "\n")
	pw = strings.TrimSuffix(pw, "\r")
	return pw, nil
}

// readPasswordSecure reads a password from stdin without echo.
// Falls back to buffered read if stdin is not a terminal.
func readPasswordSecure(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !isTerminal() {
		pw, err := readLine(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return pw, nil
	}

	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}

// ReadPasswordInteractive prompts for the password and its confirmation.
func ReadPasswordInteractive() (string, error) {
	password, err := readPasswordSecure("Password: ")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", errors.ErrNoPassword
	}

	confirm, err := readPasswordSecure("Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", errors.ErrPasswordMismatch
	}
	return password, nil
}

// ReadPasswordFromStdin reads password from stdin (for piped input with -P flag).
func ReadPasswordFromStdin() (string, error) {
	return readPasswordFrom(os.Stdin)
}

func readPasswordFrom(r io.Reader) (string, error) {
	pw, err := readLine(r)
	if err != nil {
		return "", fmt.Errorf("reading password from stdin: %w", err)
	}
	if pw == "" {
		return "", errors.ErrNoPassword
	}
	return pw, nil
}
