// Package cli provides the command-line interface of roe-gui.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"roe-gui/internal/channel"
	"roe-gui/internal/worker"

	"github.com/google/uuid"
)

// Reporter implements worker.Observer for terminal output.
// It displays progress updates on a single line that gets overwritten.
type Reporter struct {
	mu       sync.Mutex
	out      io.Writer
	status   string
	progress float32
	info     string
	quiet    bool
	lastLine int // Length of last printed line (for clearing)
}

var _ worker.Observer = (*Reporter)(nil)

// NewReporter creates a new CLI progress reporter writing to stderr.
// If quiet is true, only errors are printed.
func NewReporter(quiet bool) *Reporter {
	return &Reporter{
		out:   os.Stderr,
		quiet: quiet,
	}
}

// JobDispatched shows the job about to run.
func (r *Reporter) JobDispatched(batch uuid.UUID, index, total int, job worker.Job) {
	r.mu.Lock()
	r.status = "Working on " + filepath.Base(job.Input())
	r.progress = float32(index) / float32(total)
	r.info = fmt.Sprintf("%d/%d", index+1, total)
	r.mu.Unlock()
	r.Update()
}

// JobFinished advances the bar. A failed job leaves the bar where it is.
func (r *Reporter) JobFinished(batch uuid.UUID, index, total int, job worker.Job, resp channel.Response) {
	r.mu.Lock()
	if resp.Failed() {
		r.status = "Failed on " + filepath.Base(job.Input())
	} else {
		r.status = "Finished " + filepath.Base(job.Input())
		r.progress = float32(index+1) / float32(total)
	}
	r.mu.Unlock()
	r.Update()
}

// Update prints current status to the terminal.
func (r *Reporter) Update() {
	if r.quiet {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	barWidth := 30
	filled := min(int(r.progress*float32(barWidth)), barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	// Format: [████████░░░░░░░░░░░░░░░░░░░░░░] 2/8 | Working on a.txt
	line := fmt.Sprintf("\r[%s] %s | %s", bar, r.info, r.status)

	// Clear previous line if it was longer
	if len(line) < r.lastLine {
		line += strings.Repeat(" ", r.lastLine-len(line))
	}
	r.lastLine = len(line)

	fmt.Fprint(r.out, line)
}

// Finish prints a newline to move past the progress line.
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.quiet && r.lastLine > 0 {
		fmt.Fprintln(r.out)
		r.lastLine = 0
	}
}

// PrintError prints an error message.
func (r *Reporter) PrintError(format string, args ...any) {
	r.Finish()
	fmt.Fprintf(r.out, "Error: "+format+"\n", args...)
}

// PrintSuccess prints a success message.
func (r *Reporter) PrintSuccess(format string, args ...any) {
	if r.quiet {
		return
	}
	r.Finish()
	fmt.Fprintf(r.out, format+"\n", args...)
}
