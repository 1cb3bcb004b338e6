package app

import (
	"fyne.io/fyne/v2/data/binding"
)

// BoundProgress provides Fyne data bindings for batch progress.
// Bound widgets update without manual SetText calls.
type BoundProgress struct {
	// Fraction of jobs finished (0.0 to 1.0)
	Progress binding.Float

	// Per-job status text (e.g. "Working on 2 of 5: photo.jpg")
	Status binding.String
}

// NewBoundProgress creates a new BoundProgress in the idle state.
func NewBoundProgress() *BoundProgress {
	b := &BoundProgress{
		Progress: binding.NewFloat(),
		Status:   binding.NewString(),
	}
	b.Reset()
	return b
}

// SetProgress updates the progress binding.
func (b *BoundProgress) SetProgress(fraction float64) {
	_ = b.Progress.Set(fraction)
}

// SetStatus updates the status binding.
func (b *BoundProgress) SetStatus(text string) {
	_ = b.Status.Set(text)
}

// Reset resets all bindings to default values.
func (b *BoundProgress) Reset() {
	_ = b.Progress.Set(0)
	_ = b.Status.Set("Ready")
}

// Reporter returns a UIReporter that writes into b.
func (b *BoundProgress) Reporter() *UIReporter {
	return NewUIReporter(b.SetStatus, b.SetProgress)
}

// BoundPaths provides Fyne data bindings for the read-only path fields.
type BoundPaths struct {
	// Input summary: the path, or "(N files)"
	Input binding.String

	// Output directory
	Output binding.String
}

// NewBoundPaths creates empty path bindings.
func NewBoundPaths() *BoundPaths {
	return &BoundPaths{
		Input:  binding.NewString(),
		Output: binding.NewString(),
	}
}

// Sync copies the path fields of v into the bindings.
func (b *BoundPaths) Sync(v View) {
	_ = b.Input.Set(v.InputSummary)
	_ = b.Output.Set(v.OutputDir)
}
