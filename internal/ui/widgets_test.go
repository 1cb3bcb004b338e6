package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

// TestPasswordStrengthIndicator tests the password strength indicator widget.
func TestPasswordStrengthIndicator(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	t.Run("SetStrength clamps", func(t *testing.T) {
		indicator := NewPasswordStrengthIndicator()
		for _, tc := range []struct{ in, want int }{{-1, 0}, {0, 0}, {3, 3}, {4, 4}, {9, 4}} {
			indicator.SetStrength(tc.in)
			if indicator.strength != tc.want {
				t.Errorf("SetStrength(%d): strength = %d; want %d", tc.in, indicator.strength, tc.want)
			}
		}
	})

	t.Run("Hidden arc is transparent", func(t *testing.T) {
		indicator := NewPasswordStrengthIndicator()
		r := test.WidgetRenderer(indicator).(*passwordStrengthRenderer)
		if r.arc.FillColor != color.Transparent {
			t.Error("invisible indicator should draw nothing")
		}
	})

	t.Run("Arc grows with strength", func(t *testing.T) {
		indicator := NewPasswordStrengthIndicator()
		indicator.SetVisible(true)
		r := test.WidgetRenderer(indicator).(*passwordStrengthRenderer)

		indicator.SetStrength(0)
		if r.arc.EndAngle != 72 {
			t.Errorf("EndAngle at 0 = %v; want 72", r.arc.EndAngle)
		}
		indicator.SetStrength(4)
		if r.arc.EndAngle != 360 {
			t.Errorf("EndAngle at 4 = %v; want 360", r.arc.EndAngle)
		}
		if c := r.arc.FillColor.(color.RGBA); c.G <= c.R {
			t.Errorf("strong password should be green, got %v", c)
		}
	})

	t.Run("MinSize", func(t *testing.T) {
		indicator := NewPasswordStrengthIndicator()
		if indicator.MinSize() != fyne.NewSize(24, 24) {
			t.Errorf("MinSize = %v; want 24x24", indicator.MinSize())
		}
	})
}

// TestValidationIndicator tests the password match ring.
func TestValidationIndicator(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	v := NewValidationIndicator()
	r := test.WidgetRenderer(v).(*validationRenderer)

	if r.circle.StrokeColor != color.Transparent {
		t.Error("hidden indicator should be transparent")
	}

	v.SetVisible(true)
	v.SetValid(true)
	if r.circle.StrokeColor != (color.RGBA{0x4c, 0xc8, 0x4b, 0xff}) {
		t.Errorf("valid stroke = %v; want green", r.circle.StrokeColor)
	}

	v.SetValid(false)
	if r.circle.StrokeColor != (color.RGBA{0xc8, 0x4c, 0x4b, 0xff}) {
		t.Errorf("invalid stroke = %v; want red", r.circle.StrokeColor)
	}
}

// TestPasswordEntry tests the show/hide entry.
func TestPasswordEntry(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	e := NewPasswordEntry()
	if !e.IsHidden() || !e.Password {
		t.Error("new entry should be hidden")
	}

	e.SetHidden(false)
	if e.IsHidden() || e.Password {
		t.Error("SetHidden(false) should reveal the text")
	}

	e.SetHidden(true)
	if !e.IsHidden() || !e.Password {
		t.Error("SetHidden(true) should mask the text")
	}
}

// TestColoredLabel tests the status label.
func TestColoredLabel(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	l := NewColoredLabel("Ready", color.White)
	r := test.WidgetRenderer(l).(*coloredLabelRenderer)

	l.SetText("Completed")
	l.SetColor(color.RGBA{0, 0xff, 0, 0xff})
	if r.text.Text != "Completed" {
		t.Errorf("text = %q; want Completed", r.text.Text)
	}
	if r.text.Color != (color.RGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("color = %v", r.text.Color)
	}
	if l.MinSize().Width <= 0 {
		t.Error("MinSize should fit the text")
	}
	objs := r.Objects()
	if len(objs) != 1 {
		t.Fatalf("Objects() = %d; want 1", len(objs))
	}
	if _, ok := objs[0].(*canvas.Text); !ok {
		t.Error("label should render a canvas.Text")
	}
}

// TestDisabledEntry tests the read-only path entry.
func TestDisabledEntry(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	e := NewDisabledEntry()
	if !e.Disabled() {
		t.Error("entry should start disabled")
	}
	e.SetText("/out")
	if e.Text != "/out" {
		t.Errorf("Text = %q; want /out", e.Text)
	}
}

// TestTooltipButton tests the primary button type.
func TestTooltipButton(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	tapped := false
	b := NewTooltipButton("Encrypt", "tip", func() { tapped = true })
	if b.Text != "Encrypt" || b.tooltip != "tip" {
		t.Errorf("button = %q/%q", b.Text, b.tooltip)
	}

	test.Tap(b)
	if !tapped {
		t.Error("OnTapped was not called")
	}

	b.Disable()
	tapped = false
	test.Tap(b)
	if tapped {
		t.Error("disabled button should ignore taps")
	}

	b.SetTooltip("other")
	if b.tooltip != "other" {
		t.Error("SetTooltip did not update")
	}
}

// TestCompactTheme tests the theme overrides.
func TestCompactTheme(t *testing.T) {
	th := NewCompactTheme()

	if th.Size(theme.SizeNameText) != 13 {
		t.Errorf("text size = %v; want 13", th.Size(theme.SizeNameText))
	}
	if th.Size(theme.SizeNameScrollBar) != theme.DefaultTheme().Size(theme.SizeNameScrollBar) {
		t.Error("unlisted sizes should fall back to the default theme")
	}
	if th.Color(theme.ColorNamePrimary, theme.VariantDark) != theme.DefaultTheme().Color(theme.ColorNamePrimary, theme.VariantDark) {
		t.Error("unlisted colors should fall back to the default theme")
	}
	if th.Font(fyne.TextStyle{}) == nil || th.Icon(theme.IconNameHome) == nil {
		t.Error("font and icon should come from the default theme")
	}
}
