// Package errors provides typed errors for roe-gui batches.
// Callers use errors.Is() and errors.As() to tell the failure classes apart.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// PasswordMismatchMarker is the substring roe-cli prints on stdout when a
// volume cannot be decrypted with the supplied password.
const PasswordMismatchMarker = "failed to decrypt"

// Sentinel errors for common error conditions.
var (
	// Executable errors
	ErrExecutableNotFound = errors.New("roe-cli executable not found")

	// Batch errors
	ErrEmptyBatch   = errors.New("no input paths in batch")
	ErrBatchRunning = errors.New("a batch is already running")
	ErrNotReady     = errors.New("batch parameters are incomplete")

	// Input validation errors
	ErrNoInputFiles     = errors.New("no input files specified")
	ErrNoOutputDir      = errors.New("no output directory specified")
	ErrNoPassword       = errors.New("no password provided")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUnknownAction    = errors.New("unknown action")
)

// ProcessError is reported when roe-cli ran but signalled a failure for one job.
type ProcessError struct {
	Message string // Error detail from the process runner (e.g. "exit status 1")
	Stdout  string
	Stderr  string
}

func (e *ProcessError) Error() string {
	if e.Message == "" {
		return "roe-cli failed"
	}
	return fmt.Sprintf("roe-cli: %s", e.Message)
}

// PasswordMismatch reports whether the process output looks like a wrong password.
func (e *ProcessError) PasswordMismatch() bool {
	return strings.Contains(e.Stdout, PasswordMismatchMarker)
}

// NewProcessError creates a new ProcessError.
func NewProcessError(message, stdout, stderr string) *ProcessError {
	return &ProcessError{Message: message, Stdout: stdout, Stderr: stderr}
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field string // Field that failed validation
	Err   error  // One of the sentinel errors above
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// ConfigError wraps a failure to read or parse the configuration file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(path string, err error) *ConfigError {
	return &ConfigError{Path: path, Err: err}
}

// Is checks if target matches any error in err's chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsNotFound checks if the error means the executable could not be located.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrExecutableNotFound)
}

// IsPasswordMismatch checks if err is a ProcessError whose output matches
// the wrong-password marker. This is a heuristic, not a distinct failure.
func IsPasswordMismatch(err error) bool {
	var pe *ProcessError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.PasswordMismatch()
}
