// Package ui provides the roe-gui graphical user interface using Fyne.
//
// The UI is a thin view over app.Machine:
//   - Widgets forward user input to Machine methods
//   - Machine.SetState renders a derived app.View through App.Render
//   - Fyne dialogs implement the pickers, the confirmation and the
//     end-of-batch notification
//
// Render sets every widget from the View and never decides enablement on
// its own. While it runs, widget change callbacks are ignored so a render
// cannot feed back into the machine.
package ui

import (
	"context"
	"errors"

	"roe-gui/internal/app"
	"roe-gui/internal/config"
	"roe-gui/internal/worker"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// AppID identifies roe-gui to the Fyne preferences store.
const AppID = "io.github.roe-gui"

// Options configure NewApp.
type Options struct {
	Version string
	Config  *config.Config
	Worker  *worker.Worker
	// FyneApp defaults to a new desktop app. Tests pass test.NewApp().
	FyneApp fyne.App
	Context context.Context
}

// App is the main application.
type App struct {
	fyneApp fyne.App
	Window  fyne.Window
	Machine *app.Machine

	version  string
	worker   *worker.Worker
	progress *app.BoundProgress
	paths    *app.BoundPaths

	// rendering is true while Render writes into widgets.
	rendering bool

	// Action
	actionSelect *widget.Select
	actionMsg    *widget.Label

	// Input and output
	inputEntry  *DisabledEntry
	inputBtn    *widget.Button
	inputDirBtn *widget.Button
	addBtn      *widget.Button
	outputEntry *DisabledEntry
	outputBtn   *widget.Button

	// Password
	passwordEntry     *PasswordEntry
	cPasswordEntry    *PasswordEntry
	showHideBtn       *widget.Button
	clearPwdBtn       *widget.Button
	pasteBtn          *widget.Button
	strengthIndicator *PasswordStrengthIndicator
	validIndicator    *ValidationIndicator

	// Start and status
	sendButton  *TooltipButton
	busy        *widget.ProgressBarInfinite
	progressBar *widget.ProgressBar
	statusLabel *ColoredLabel
	lastView    app.View
}

// NewApp creates the window, its widgets and the state machine behind them.
func NewApp(opts Options) (*App, error) {
	if opts.Worker == nil {
		return nil, errors.New("ui: a worker is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fa := opts.FyneApp
	if fa == nil {
		fa = fyneapp.NewWithID(AppID)
	}
	fa.Settings().SetTheme(NewCompactTheme())

	a := &App{
		fyneApp:  fa,
		version:  opts.Version,
		worker:   opts.Worker,
		progress: app.NewBoundProgress(),
		paths:    app.NewBoundPaths(),
	}

	a.Window = fa.NewWindow("roe " + opts.Version)
	a.Window.Resize(fyne.NewSize(600, 500))
	a.Window.SetFixedSize(true)
	a.Window.SetContent(a.buildUI())
	a.Window.SetOnDropped(a.onDrop)
	a.Window.SetCloseIntercept(a.onClose)

	// Observer callbacks run on the batch goroutine.
	r := a.progress.Reporter()
	r.OnStatus = func(s string) { fyne.Do(func() { a.progress.SetStatus(s) }) }
	r.OnProgress = func(f float64) { fyne.Do(func() { a.progress.SetProgress(f) }) }
	opts.Worker.SetObserver(r)

	dialogs := &fyneDialogs{window: a.Window}
	a.Machine = app.NewMachine(app.Options{
		Context:       opts.Context,
		Worker:        opts.Worker,
		Renderer:      a,
		Dialogs:       dialogs,
		Confirmer:     dialogs,
		Notifier:      a,
		NotifyDelay:   cfg.UI.GetNotifyDelay(),
		TruncateLimit: cfg.UI.TruncateLimit,
		Dispatch:      fyne.Do,
	})

	return a, nil
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.Window.ShowAndRun()
}

// QuitText is asked when the window is closed during a batch.
const QuitText = "A batch is still running. Quit anyway?"

// onClose asks before quitting while roe-cli is working.
func (a *App) onClose() {
	if !a.worker.Running() {
		a.Window.Close()
		return
	}
	dialog.ShowConfirm("Quit", QuitText, func(ok bool) {
		if ok {
			a.Window.Close()
		}
	}, a.Window)
}

// onDrop handles files and folders dropped onto the window.
func (a *App) onDrop(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, u := range uris {
		if u.Scheme() != "file" {
			continue
		}
		paths = append(paths, u.Path())
	}
	a.Machine.Drop(paths)
}
