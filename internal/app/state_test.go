package app

import (
	"testing"

	"roe-gui/internal/errors"
	"roe-gui/internal/worker"
)

func readyState() State {
	return State{
		InputPaths:      []string{"/in/a.txt"},
		OutputDir:       "/out",
		Password:        "pw",
		PasswordConfirm: "pw",
		Action:          worker.ActionEncrypt,
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*State)
		want   bool
		err    error
	}{
		{"complete", func(s *State) {}, true, nil},
		{"no password", func(s *State) { s.Password, s.PasswordConfirm = "", "" }, false, errors.ErrNoPassword},
		{"mismatch", func(s *State) { s.PasswordConfirm = "other" }, false, errors.ErrPasswordMismatch},
		{"no confirm", func(s *State) { s.PasswordConfirm = "" }, false, errors.ErrPasswordMismatch},
		{"no inputs", func(s *State) { s.InputPaths = nil }, false, errors.ErrNoInputFiles},
		{"no output", func(s *State) { s.OutputDir = "" }, false, errors.ErrNoOutputDir},
		{"running is still ready", func(s *State) { s.Running = true }, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := readyState()
			tt.mutate(&s)
			if got := s.Ready(); got != tt.want {
				t.Errorf("Ready() = %v; want %v", got, tt.want)
			}
			err := s.Validate()
			if tt.err == nil {
				if err != nil {
					t.Errorf("Validate() = %v; want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Validate() = %v; want %v", err, tt.err)
			}
			var ve *errors.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Validate() should return a ValidationError, got %T", err)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	s := readyState()
	inputs := []string{"/x", "/y"}
	got := s.Merge(Patch{InputPaths: &inputs, Recursive: ref(true)})

	if len(got.InputPaths) != 2 || !got.Recursive {
		t.Errorf("Merge did not apply patch: %+v", got)
	}
	if got.Password != "pw" || got.OutputDir != "/out" {
		t.Error("Merge should keep untouched fields")
	}
	if len(s.InputPaths) != 1 {
		t.Error("Merge must not modify the receiver")
	}

	inputs[0] = "/mutated"
	if got.InputPaths[0] != "/x" {
		t.Error("Merge should copy the patched slice")
	}
}

func TestParams(t *testing.T) {
	s := readyState()
	s.Recursive = true
	p := s.Params()

	if p.Action != worker.ActionEncrypt || p.OutputDir != "/out" || p.Password != "pw" || !p.Recursive {
		t.Errorf("Params() = %+v", p)
	}
	p.InputPaths[0] = "/mutated"
	if s.InputPaths[0] != "/in/a.txt" {
		t.Error("Params should copy InputPaths")
	}
}

func TestDerive_PrimaryEnablement(t *testing.T) {
	s := readyState()
	if v := Derive(s); !v.PrimaryEnabled || !v.Ready {
		t.Error("primary control should be enabled when ready and idle")
	}

	s.Running = true
	if v := Derive(s); v.PrimaryEnabled {
		t.Error("primary control should be disabled while running")
	}

	s = readyState()
	s.PasswordConfirm = "nope"
	if v := Derive(s); v.PrimaryEnabled {
		t.Error("primary control should be disabled when not ready")
	}
}

func TestDerive_Running(t *testing.T) {
	s := readyState()
	s.Running = true
	v := Derive(s)

	if v.PasswordEnabled {
		t.Error("password fields should be disabled while running")
	}
	if v.SelectionEnabled {
		t.Error("selection controls should be inert while running")
	}
	if v.ActionEnabled {
		t.Error("action selector should be disabled while running")
	}
	if !v.Busy {
		t.Error("busy indicator should be visible while running")
	}

	s.Running = false
	v = Derive(s)
	if !v.PasswordEnabled || !v.SelectionEnabled || !v.ActionEnabled || v.Busy {
		t.Errorf("idle view should be fully enabled: %+v", v)
	}
}

func TestDerive_Labels(t *testing.T) {
	enc := Derive(Initial(worker.ActionEncrypt))
	if enc.PrimaryLabel != "Encrypt" {
		t.Errorf("PrimaryLabel = %q; want Encrypt", enc.PrimaryLabel)
	}
	if enc.PasswordPlaceholder != "Encryption password" {
		t.Errorf("PasswordPlaceholder = %q", enc.PasswordPlaceholder)
	}
	if enc.InputButtonLabel != "Select files..." {
		t.Errorf("InputButtonLabel = %q", enc.InputButtonLabel)
	}
	if enc.ActionMessage != EncryptMessage {
		t.Errorf("ActionMessage = %q", enc.ActionMessage)
	}

	dec := Derive(Initial(worker.ActionDecrypt))
	if dec.PrimaryLabel != "Decrypt" {
		t.Errorf("PrimaryLabel = %q; want Decrypt", dec.PrimaryLabel)
	}
	if dec.PasswordPlaceholder != "Decryption password" {
		t.Errorf("PasswordPlaceholder = %q", dec.PasswordPlaceholder)
	}
	if dec.InputButtonLabel != "Select .bmp images..." {
		t.Errorf("InputButtonLabel = %q", dec.InputButtonLabel)
	}
	if dec.ShowStrength {
		t.Error("strength meter is only shown for encryption")
	}
}

func TestDerive_InputSummary(t *testing.T) {
	s := Initial(worker.ActionEncrypt)
	if v := Derive(s); v.InputSummary != "" {
		t.Errorf("empty summary = %q", v.InputSummary)
	}
	s.InputPaths = []string{"/in/a.txt"}
	if v := Derive(s); v.InputSummary != "/in/a.txt" {
		t.Errorf("single summary = %q", v.InputSummary)
	}
	s.InputPaths = []string{"/a", "/b", "/c"}
	if v := Derive(s); v.InputSummary != "(3 files)" {
		t.Errorf("multi summary = %q", v.InputSummary)
	}
}

func TestInputFilter(t *testing.T) {
	if f := InputFilter(worker.ActionEncrypt); f != nil {
		t.Errorf("encrypt filter = %v; want all files", f)
	}
	if f := InputFilter(worker.ActionDecrypt); len(f) != 1 || f[0] != ".bmp" {
		t.Errorf("decrypt filter = %v; want [.bmp]", f)
	}
}
