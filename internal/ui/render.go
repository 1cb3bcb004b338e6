package ui

import (
	"roe-gui/internal/app"
	"roe-gui/internal/util"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

var _ app.Renderer = (*App)(nil)
var _ app.Notifier = (*App)(nil)

// Render implements app.Renderer. It must run on the Fyne goroutine.
func (a *App) Render(v app.View) {
	a.rendering = true
	defer func() { a.rendering = false }()

	a.lastView = v

	a.actionSelect.SetSelected(v.Action.Title())
	setEnabled(a.actionSelect, v.ActionEnabled)
	a.actionMsg.SetText(v.ActionMessage)

	a.inputBtn.SetText(v.InputButtonLabel)
	for _, w := range []fyne.Disableable{a.inputBtn, a.addBtn, a.inputDirBtn, a.outputBtn} {
		setEnabled(w, v.SelectionEnabled)
	}
	a.paths.Sync(v)

	a.renderPasswords(v)

	a.sendButton.SetText(v.PrimaryLabel)
	setEnabled(a.sendButton, v.PrimaryEnabled)

	if v.Busy {
		if !a.busy.Visible() {
			a.statusLabel.SetText("Working...")
			a.statusLabel.SetColor(util.WHITE)
		}
		a.busy.Show()
		a.progressBar.Show()
	} else {
		a.busy.Hide()
		a.progressBar.Hide()
	}
}

// Notify implements app.Notifier.
func (a *App) Notify(n app.Notification) {
	switch n.Kind {
	case app.NotifySuccess:
		a.statusLabel.SetText("Completed")
		a.statusLabel.SetColor(util.GREEN)
	case app.NotifyEmpty:
		a.statusLabel.SetText("Ready")
		a.statusLabel.SetColor(util.WHITE)
	default:
		a.statusLabel.SetText(n.Title)
		a.statusLabel.SetColor(util.RED)
	}
	a.progress.Reset()
	dialog.ShowInformation(n.Title, n.Message, a.Window)
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
