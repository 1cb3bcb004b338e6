package ui

import (
	"roe-gui/internal/app"

	"github.com/Picocrypt/zxcvbn-go"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// buildPasswordSection creates the password input section.
func (a *App) buildPasswordSection() fyne.CanvasObject {
	a.showHideBtn = widget.NewButton("Show", func() {
		hidden := !a.passwordEntry.IsHidden()
		a.passwordEntry.SetHidden(hidden)
		a.cPasswordEntry.SetHidden(hidden)
		if hidden {
			a.showHideBtn.SetText("Show")
		} else {
			a.showHideBtn.SetText("Hide")
		}
	})

	a.clearPwdBtn = widget.NewButton("Clear", func() {
		a.Machine.SetPassword("")
		a.Machine.SetPasswordConfirm("")
	})

	a.pasteBtn = widget.NewButton("Paste", func() {
		text := a.fyneApp.Clipboard().Content()
		a.Machine.SetPassword(text)
		a.Machine.SetPasswordConfirm(text)
	})

	buttonRow := container.NewGridWithColumns(3, a.showHideBtn, a.clearPwdBtn, a.pasteBtn)

	a.passwordEntry = NewPasswordEntry()
	a.passwordEntry.OnChanged = func(text string) {
		if a.rendering {
			return
		}
		a.Machine.SetPassword(text)
	}
	a.strengthIndicator = NewPasswordStrengthIndicator()
	passwordRow := container.NewBorder(nil, nil, nil, a.strengthIndicator, a.passwordEntry)

	a.cPasswordEntry = NewPasswordEntry()
	a.cPasswordEntry.OnChanged = func(text string) {
		if a.rendering {
			return
		}
		a.Machine.SetPasswordConfirm(text)
	}
	a.validIndicator = NewValidationIndicator()
	confirmRow := container.NewBorder(nil, nil, nil, a.validIndicator, a.cPasswordEntry)

	passwordLabel := widget.NewLabel("Password:")
	passwordLabel.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewVBox(
		passwordLabel,
		buttonRow,
		passwordRow,
		confirmRow,
	)
}

// renderPasswords copies the password part of v into the widgets.
func (a *App) renderPasswords(v app.View) {
	a.passwordEntry.SetPlaceHolder(v.PasswordPlaceholder)
	a.cPasswordEntry.SetPlaceHolder(v.ConfirmPlaceholder)

	// SetText moves the cursor, so skip it when the text already matches.
	if a.passwordEntry.Text != v.Password {
		a.passwordEntry.SetText(v.Password)
	}
	if a.cPasswordEntry.Text != v.PasswordConfirm {
		a.cPasswordEntry.SetText(v.PasswordConfirm)
	}

	for _, w := range []fyne.Disableable{a.passwordEntry, a.cPasswordEntry, a.showHideBtn, a.clearPwdBtn, a.pasteBtn} {
		setEnabled(w, v.PasswordEnabled)
	}

	a.strengthIndicator.SetVisible(v.ShowStrength)
	if v.ShowStrength {
		a.strengthIndicator.SetStrength(passwordStrength(v.Password))
	}

	a.validIndicator.SetVisible(v.Password != "" && v.PasswordConfirm != "")
	a.validIndicator.SetValid(v.Password == v.PasswordConfirm)
}

// passwordStrength returns the zxcvbn score (0-4) of password.
func passwordStrength(password string) int {
	if password == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}
