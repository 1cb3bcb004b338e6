// Package app holds the roe-gui application state and the state machine
// that drives the worker from user actions.
//
// This package serves three purposes:
//
//  1. State management (state.go, view.go):
//     State is one plain value describing the whole form. Every change goes
//     through a Patch, and Derive turns a State into the View that the UI
//     shows. Nothing in the UI keeps its own enablement logic.
//
//  2. Orchestration (machine.go):
//     Machine serializes state changes, asks for confirmation, starts the
//     worker when the rendered state says running, and turns the batch
//     outcome into a notification.
//
//  3. Progress reporting (reporter.go, binding.go):
//     UIReporter implements worker.Observer and feeds Fyne data bindings
//     with per-job status text.
//
// The package knows nothing about Fyne widgets; internal/ui implements the
// Renderer, Dialogs, Confirmer and Notifier interfaces on top of Fyne.
package app

import (
	"fmt"

	"roe-gui/internal/errors"
	"roe-gui/internal/worker"
)

// State holds everything the form shows.
type State struct {
	InputPaths      []string
	OutputDir       string
	Password        string
	PasswordConfirm string
	Action          worker.Action

	// Recursive is only true when the input is a single selected directory.
	Recursive bool
	// Running mirrors the worker from the confirmed start to the outcome.
	Running bool
}

// Initial returns the empty form for action.
func Initial(action worker.Action) State {
	return State{Action: action}
}

// Ready reports whether the form is complete enough to start a batch.
func (s State) Ready() bool {
	return s.Validate() == nil
}

// Validate explains why the form is not ready, or returns nil.
func (s State) Validate() error {
	switch {
	case s.Password == "":
		return errors.NewValidationError("password", errors.ErrNoPassword)
	case s.Password != s.PasswordConfirm:
		return errors.NewValidationError("password confirmation", errors.ErrPasswordMismatch)
	case len(s.InputPaths) == 0:
		return errors.NewValidationError("input", errors.ErrNoInputFiles)
	case s.OutputDir == "":
		return errors.NewValidationError("output directory", errors.ErrNoOutputDir)
	case !s.Action.Valid():
		return errors.NewValidationError("action", fmt.Errorf("%w: %q", errors.ErrUnknownAction, s.Action))
	}
	return nil
}

// Params returns the batch parameters described by s.
func (s State) Params() worker.Params {
	return worker.Params{
		Action:     s.Action,
		InputPaths: append([]string(nil), s.InputPaths...),
		OutputDir:  s.OutputDir,
		Password:   s.Password,
		Recursive:  s.Recursive,
	}
}

func (s State) clone() State {
	s.InputPaths = append([]string(nil), s.InputPaths...)
	return s
}

// Patch is a partial State. Nil fields are left untouched by Merge.
type Patch struct {
	InputPaths      *[]string
	OutputDir       *string
	Password        *string
	PasswordConfirm *string
	Action          *worker.Action
	Recursive       *bool
	Running         *bool
}

// Merge returns s with every non-nil field of p applied. s is not modified.
func (s State) Merge(p Patch) State {
	s = s.clone()
	if p.InputPaths != nil {
		s.InputPaths = append([]string(nil), (*p.InputPaths)...)
	}
	if p.OutputDir != nil {
		s.OutputDir = *p.OutputDir
	}
	if p.Password != nil {
		s.Password = *p.Password
	}
	if p.PasswordConfirm != nil {
		s.PasswordConfirm = *p.PasswordConfirm
	}
	if p.Action != nil {
		s.Action = *p.Action
	}
	if p.Recursive != nil {
		s.Recursive = *p.Recursive
	}
	if p.Running != nil {
		s.Running = *p.Running
	}
	return s
}

func ref[T any](v T) *T {
	return &v
}
