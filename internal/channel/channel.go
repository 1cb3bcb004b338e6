// Package channel is the transport between the frontends and the roe-cli
// executable.
//
// A Channel turns one argument list into exactly one Response. It knows
// nothing about jobs, batches or UI state; the worker package builds the
// argument lists and decides what to send next.
//
// Correlation is by call order only. There is no request identifier, so a
// Channel serves one Send at a time: ExecChannel enforces that with a mutex,
// and callers must not rely on overlapping sends making progress together.
package channel

import (
	"context"

	"roe-gui/internal/errors"
)

// Code classifies a failed Response.
type Code string

const (
	// CodeNotFound means the executable was not located and nothing was spawned.
	CodeNotFound Code = "not_found"
	// CodeProcess means the executable could not be run or exited with an error.
	CodeProcess Code = "process"
)

// Messages carried by the pre-flight failure Response.
const (
	NotFoundMessage = "file not found"
	NotFoundStderr  = "cannot find roe-cli binary"
)

// ErrorInfo describes why a job failed.
type ErrorInfo struct {
	Code    Code
	Message string
}

// Response is the outcome of one dispatched job.
// Stdout and Stderr are the process output, unparsed.
type Response struct {
	Error  *ErrorInfo
	Stdout string
	Stderr string
}

// Failed reports whether the response carries an error.
func (r Response) Failed() bool {
	return r.Error != nil
}

// Err converts the response into a typed error, or nil on success.
func (r Response) Err() error {
	if r.Error == nil {
		return nil
	}
	if r.Error.Code == CodeNotFound {
		return errors.ErrExecutableNotFound
	}
	return errors.NewProcessError(r.Error.Message, r.Stdout, r.Stderr)
}

// NotFoundResponse is returned for every job when no executable was located.
func NotFoundResponse() Response {
	return Response{
		Error:  &ErrorInfo{Code: CodeNotFound, Message: NotFoundMessage},
		Stdout: "",
		Stderr: NotFoundStderr,
	}
}

// Request is what the executable-owning side spawns.
type Request struct {
	ExecutablePath string
	Argv           []string
}

// Channel sends one argument list to the executable and blocks until its
// Response arrives. Implementations never retry and apply no timeout; ctx
// is the only way to abandon a hung process.
type Channel interface {
	Send(ctx context.Context, argv []string) Response
}
