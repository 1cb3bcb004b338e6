package ui

import (
	"roe-gui/internal/app"
	"roe-gui/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// fileDialogSize fits the 600x500 window.
var fileDialogSize = fyne.NewSize(560, 440)

// fyneDialogs implements app.Dialogs and app.Confirmer with Fyne dialogs.
// The Fyne file dialog selects one item at a time; several files can be
// dropped onto the window instead.
type fyneDialogs struct {
	window fyne.Window
}

var (
	_ app.Dialogs   = (*fyneDialogs)(nil)
	_ app.Confirmer = (*fyneDialogs)(nil)
)

// OpenFiles shows the file picker, restricted to extensions if any.
func (d *fyneDialogs) OpenFiles(extensions []string, done func(paths []string, ok bool)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Warn("file dialog failed", log.Err(err))
		}
		if err != nil || reader == nil {
			done(nil, false)
			return
		}
		// Only the path is needed.
		path := reader.URI().Path()
		reader.Close()
		done([]string{path}, true)
	}, d.window)

	if len(extensions) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(extensions))
	}
	fd.Resize(fileDialogSize)
	fd.Show()
}

// OpenDirectory shows the folder picker.
func (d *fyneDialogs) OpenDirectory(done func(paths []string, ok bool)) {
	fd := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			log.Warn("folder dialog failed", log.Err(err))
		}
		if err != nil || dir == nil {
			done(nil, false)
			return
		}
		done([]string{dir.Path()}, true)
	}, d.window)
	fd.Resize(fileDialogSize)
	fd.Show()
}

// Confirm asks message with Yes/No buttons.
func (d *fyneDialogs) Confirm(message string, done func(ok bool)) {
	dialog.ShowConfirm("Confirm", message, done, d.window)
}
