package ui

import (
	"roe-gui/internal/util"
	"roe-gui/internal/worker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var actionTitles = []string{worker.ActionEncrypt.Title(), worker.ActionDecrypt.Title()}

// buildUI creates the window content. Widget state is set later by Render.
func (a *App) buildUI() fyne.CanvasObject {
	a.actionSelect = widget.NewSelect(actionTitles, func(title string) {
		if a.rendering {
			return
		}
		action, err := worker.ParseAction(title)
		if err != nil {
			return
		}
		a.Machine.ChangeAction(action)
	})

	a.actionMsg = widget.NewLabel("")
	a.actionMsg.Wrapping = fyne.TextWrapWord

	return container.NewVBox(
		a.actionSelect,
		a.actionMsg,
		widget.NewSeparator(),
		a.buildInputSection(),
		widget.NewSeparator(),
		a.buildPasswordSection(),
		widget.NewSeparator(),
		a.buildStartSection(),
	)
}

func (a *App) buildInputSection() fyne.CanvasObject {
	a.inputEntry = NewDisabledEntry()
	a.inputEntry.Bind(a.paths.Input)
	a.inputEntry.SetPlaceHolder("Drop files and folders into this window")

	a.inputBtn = widget.NewButtonWithIcon("Select files...", theme.FileIcon(), func() {
		a.Machine.SelectInputFiles()
	})
	a.addBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		a.Machine.AddInputFiles()
	})
	a.inputDirBtn = widget.NewButtonWithIcon("Select folder...", theme.FolderIcon(), func() {
		a.Machine.SelectInputDirectory()
	})

	a.outputEntry = NewDisabledEntry()
	a.outputEntry.Bind(a.paths.Output)
	a.outputEntry.SetPlaceHolder("Output folder")

	a.outputBtn = widget.NewButtonWithIcon("Change", theme.FolderOpenIcon(), func() {
		a.Machine.SelectOutputDirectory()
	})

	inputLabel := widget.NewLabel("Input:")
	inputLabel.TextStyle = fyne.TextStyle{Bold: true}
	outputLabel := widget.NewLabel("Save output in:")
	outputLabel.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewVBox(
		inputLabel,
		container.NewBorder(nil, nil, nil, container.NewHBox(a.inputBtn, a.addBtn, a.inputDirBtn), a.inputEntry),
		outputLabel,
		container.NewBorder(nil, nil, nil, a.outputBtn, a.outputEntry),
	)
}

func (a *App) buildStartSection() fyne.CanvasObject {
	a.sendButton = NewTooltipButton("Encrypt", "Run roe-cli on every selected input", func() {
		if err := a.Machine.RequestStart(); err != nil {
			a.statusLabel.SetText(util.Truncate(err.Error(), 60))
			a.statusLabel.SetColor(util.YELLOW)
		}
	})
	a.sendButton.Importance = widget.HighImportance

	a.busy = widget.NewProgressBarInfinite()
	a.busy.Hide()

	a.progressBar = widget.NewProgressBarWithData(a.progress.Progress)
	a.progressBar.Min = 0
	a.progressBar.Max = 1
	a.progressBar.Hide()

	a.statusLabel = NewColoredLabel("Ready", util.WHITE)

	return container.NewVBox(
		a.sendButton,
		a.busy,
		a.progressBar,
		widget.NewLabelWithData(a.progress.Status),
		a.statusLabel,
	)
}
