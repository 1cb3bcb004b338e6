package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"roe-gui/internal/config"
	"roe-gui/internal/errors"
	"roe-gui/internal/log"
	"roe-gui/internal/util"
	"roe-gui/internal/worker"
)

// ConfirmText is the question asked before a batch starts.
const ConfirmText = "Continue?"

// Starter starts batches. *worker.Worker implements it.
type Starter interface {
	Start(ctx context.Context, p worker.Params) (<-chan worker.Outcome, bool)
}

// Renderer draws a View.
type Renderer interface {
	Render(v View)
}

// Dialogs opens picker dialogs. The callbacks receive ok=false when the
// user cancelled.
type Dialogs interface {
	OpenFiles(extensions []string, done func(paths []string, ok bool))
	OpenDirectory(done func(paths []string, ok bool))
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(message string, done func(ok bool))
}

// Notifier shows the end-of-batch message.
type Notifier interface {
	Notify(n Notification)
}

// FS answers stat questions about selected paths.
type FS interface {
	IsFile(path string) bool
	IsDir(path string) bool
}

// OSFS implements FS with os.Lstat, so symbolic links are neither.
type OSFS struct{}

func (OSFS) IsFile(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode().IsRegular()
}

func (OSFS) IsDir(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.IsDir()
}

// Options wire a Machine to its collaborators. Worker and Renderer are
// required; the rest have defaults.
type Options struct {
	Context   context.Context
	Worker    Starter
	Renderer  Renderer
	Dialogs   Dialogs
	Confirmer Confirmer
	Notifier  Notifier
	FS        FS

	// InitialAction defaults to encrypt.
	InitialAction worker.Action
	NotifyDelay   time.Duration
	TruncateLimit int

	// Schedule runs f after d. Defaults to time.AfterFunc.
	Schedule func(d time.Duration, f func())
	// Dispatch runs f on the UI goroutine. Defaults to calling f directly.
	Dispatch func(f func())
}

// Machine owns the State. All changes go through SetState, which merges,
// derives and renders under one lock, so renders never interleave.
type Machine struct {
	ctx       context.Context
	worker    Starter
	renderer  Renderer
	dialogs   Dialogs
	confirmer Confirmer
	notifier  Notifier
	fs        FS
	delay     time.Duration
	limit     int
	schedule  func(d time.Duration, f func())
	dispatch  func(f func())

	mu       sync.Mutex
	state    State
	inFlight bool
}

// NewMachine creates a Machine and renders the initial state.
func NewMachine(opts Options) *Machine {
	m := &Machine{
		ctx:       opts.Context,
		worker:    opts.Worker,
		renderer:  opts.Renderer,
		dialogs:   opts.Dialogs,
		confirmer: opts.Confirmer,
		notifier:  opts.Notifier,
		fs:        opts.FS,
		delay:     opts.NotifyDelay,
		limit:     opts.TruncateLimit,
		schedule:  opts.Schedule,
		dispatch:  opts.Dispatch,
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.fs == nil {
		m.fs = OSFS{}
	}
	if m.delay <= 0 {
		m.delay = config.DefaultNotifyDelay
	}
	if m.limit <= 0 {
		m.limit = util.DefaultTruncateLimit
	}
	if m.schedule == nil {
		m.schedule = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if m.dispatch == nil {
		m.dispatch = func(f func()) { f() }
	}

	action := opts.InitialAction
	if !action.Valid() {
		action = worker.ActionEncrypt
	}
	m.mu.Lock()
	m.state = Initial(action)
	m.renderLocked()
	m.mu.Unlock()
	return m
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// SetState merges p into the state and renders the result. When the new
// state is running and this form has no batch in flight, the worker is
// started.
func (m *Machine) SetState(p Patch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = m.state.Merge(p)
	m.renderLocked()
}

func (m *Machine) renderLocked() {
	m.renderer.Render(Derive(m.state))
	if m.state.Running {
		m.startLocked()
	}
}

func (m *Machine) startLocked() {
	// One Start per batch: the worker goes idle before finish runs.
	if m.inFlight {
		return
	}
	done, ok := m.worker.Start(m.ctx, m.state.Params())
	if !ok {
		// Someone else owns the worker; this form never got a batch.
		log.Warn("worker busy, start request dropped")
		m.state.Running = false
		m.renderer.Render(Derive(m.state))
		return
	}
	m.inFlight = true
	go func() {
		out := <-done
		m.dispatch(func() { m.finish(out) })
	}()
}

func (m *Machine) finish(out worker.Outcome) {
	m.mu.Lock()
	m.inFlight = false
	m.state = m.state.Merge(Patch{
		Running:         ref(false),
		Password:        ref(""),
		PasswordConfirm: ref(""),
	})
	m.renderLocked()
	m.mu.Unlock()

	if m.notifier == nil {
		return
	}
	n := BuildNotification(out, m.limit)
	m.schedule(m.delay, func() {
		m.dispatch(func() { m.notifier.Notify(n) })
	})
}

// SetPassword records the first password field.
func (m *Machine) SetPassword(s string) {
	m.SetState(Patch{Password: &s})
}

// SetPasswordConfirm records the confirmation field.
func (m *Machine) SetPasswordConfirm(s string) {
	m.SetState(Patch{PasswordConfirm: &s})
}

// ChangeAction resets the form, keeping only the new action.
func (m *Machine) ChangeAction(a worker.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Running {
		return
	}
	m.state = Initial(a)
	m.renderLocked()
}

// RequestStart asks for confirmation and, if given, marks the form running.
// It fails straight away if the form is incomplete or a batch is running.
func (m *Machine) RequestStart() error {
	s := m.State()
	if s.Running {
		return errors.ErrBatchRunning
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNotReady, err)
	}
	if m.confirmer == nil {
		m.confirmed(true)
		return nil
	}
	m.confirmer.Confirm(ConfirmText, m.confirmed)
	return nil
}

func (m *Machine) confirmed(ok bool) {
	if !ok {
		log.Debug("batch start declined")
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// The form may have changed while the dialog was open.
	if m.state.Running || !m.state.Ready() {
		return
	}
	m.state = m.state.Merge(Patch{Running: ref(true)})
	m.renderLocked()
}

// SelectInputFiles opens the file picker for the current action.
func (m *Machine) SelectInputFiles() {
	s := m.State()
	if s.Running || m.dialogs == nil {
		return
	}
	m.dialogs.OpenFiles(InputFilter(s.Action), func(paths []string, ok bool) {
		if !ok {
			return
		}
		m.setInputFiles(paths)
	})
}

func (m *Machine) setInputFiles(paths []string) {
	files := m.keep(paths, m.fs.IsFile)
	m.SetState(Patch{InputPaths: &files, Recursive: ref(false)})
}

// AddInputFiles opens the file picker and appends the picked files to the
// current file selection. A directory selection is replaced.
func (m *Machine) AddInputFiles() {
	s := m.State()
	if s.Running || m.dialogs == nil {
		return
	}
	m.dialogs.OpenFiles(InputFilter(s.Action), func(paths []string, ok bool) {
		if !ok {
			return
		}
		m.addInputFiles(paths)
	})
}

func (m *Machine) addInputFiles(paths []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Running {
		return
	}

	var files []string
	if !m.state.Recursive {
		files = append(files, m.state.InputPaths...)
	}
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f] = true
	}
	for _, p := range m.keep(paths, m.fs.IsFile) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	m.state = m.state.Merge(Patch{InputPaths: &files, Recursive: ref(false)})
	m.renderLocked()
}

// SelectInputDirectory opens the folder picker for a recursive input.
func (m *Machine) SelectInputDirectory() {
	if m.State().Running || m.dialogs == nil {
		return
	}
	m.dialogs.OpenDirectory(func(paths []string, ok bool) {
		if !ok {
			return
		}
		dirs := m.keep(paths, m.fs.IsDir)
		if len(dirs) != 1 {
			return
		}
		m.SetState(Patch{InputPaths: &dirs, Recursive: ref(true)})
	})
}

// SelectOutputDirectory opens the folder picker for the output directory.
func (m *Machine) SelectOutputDirectory() {
	if m.State().Running || m.dialogs == nil {
		return
	}
	m.dialogs.OpenDirectory(func(paths []string, ok bool) {
		if !ok {
			return
		}
		dirs := m.keep(paths, m.fs.IsDir)
		if len(dirs) != 1 {
			return
		}
		m.SetState(Patch{OutputDir: &dirs[0]})
	})
}

// Drop takes paths dropped onto the window as input. A single directory
// becomes a recursive input; otherwise the regular files are used.
func (m *Machine) Drop(paths []string) {
	if m.State().Running {
		return
	}
	if len(paths) == 1 && m.fs.IsDir(paths[0]) {
		m.SetState(Patch{InputPaths: &[]string{paths[0]}, Recursive: ref(true)})
		return
	}
	files := m.keep(paths, m.fs.IsFile)
	if len(files) == 0 {
		log.Debug("drop ignored, no regular files", log.Int("paths", len(paths)))
		return
	}
	m.SetState(Patch{InputPaths: &files, Recursive: ref(false)})
}

func (m *Machine) keep(paths []string, pred func(string) bool) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
