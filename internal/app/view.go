package app

import (
	"roe-gui/internal/util"
	"roe-gui/internal/worker"
)

// Action descriptions shown above the form.
const (
	EncryptMessage = "Encrypt any file (or a folder recursively) into a valid .bmp image. Big files are split."
	DecryptMessage = "Decrypt a .bmp image (or a folder recursively) back to the original file."
)

// View is everything a Renderer needs to draw the form.
type View struct {
	Action        worker.Action
	ActionMessage string
	ActionEnabled bool

	Password            string
	PasswordConfirm     string
	PasswordPlaceholder string
	ConfirmPlaceholder  string
	PasswordEnabled     bool
	// ShowStrength is true when a strength meter helps the user.
	ShowStrength bool

	InputButtonLabel string
	InputSummary     string
	OutputDir        string
	SelectionEnabled bool

	PrimaryLabel   string
	PrimaryEnabled bool
	Busy           bool
	Ready          bool
}

// Derive computes the View for s. It has no side effects.
func Derive(s State) View {
	ready := s.Ready()
	v := View{
		Action:           s.Action,
		ActionEnabled:    !s.Running,
		Password:         s.Password,
		PasswordConfirm:  s.PasswordConfirm,
		PasswordEnabled:  !s.Running,
		InputSummary:     util.InputSummary(s.InputPaths),
		OutputDir:        s.OutputDir,
		SelectionEnabled: !s.Running,
		PrimaryLabel:     s.Action.Title(),
		PrimaryEnabled:   ready && !s.Running,
		Busy:             s.Running,
		Ready:            ready,
	}

	if s.Action == worker.ActionDecrypt {
		v.ActionMessage = DecryptMessage
		v.PasswordPlaceholder = "Decryption password"
		v.InputButtonLabel = "Select .bmp images..."
	} else {
		v.ActionMessage = EncryptMessage
		v.PasswordPlaceholder = "Encryption password"
		v.InputButtonLabel = "Select files..."
		v.ShowStrength = s.Password != ""
	}
	v.ConfirmPlaceholder = "Confirm password"

	return v
}

// InputFilter returns the extensions the input file dialog accepts for
// action. Nil means all files.
func InputFilter(action worker.Action) []string {
	if action == worker.ActionDecrypt {
		return []string{".bmp"}
	}
	return nil
}
