package app

import (
	"fmt"
	"path/filepath"

	"roe-gui/internal/channel"
	"roe-gui/internal/worker"

	"github.com/google/uuid"
)

// UIReporter implements worker.Observer for UI integration.
// It formats per-job progress and forwards it to callbacks.
type UIReporter struct {
	OnStatus   func(text string)
	OnProgress func(fraction float64)
}

var _ worker.Observer = (*UIReporter)(nil)

// NewUIReporter creates a reporter with the given callbacks. Either may be nil.
func NewUIReporter(onStatus func(string), onProgress func(float64)) *UIReporter {
	return &UIReporter{
		OnStatus:   onStatus,
		OnProgress: onProgress,
	}
}

// JobDispatched implements worker.Observer.
func (r *UIReporter) JobDispatched(batch uuid.UUID, index, total int, job worker.Job) {
	r.set(fmt.Sprintf("Working on %d of %d: %s", index+1, total, filepath.Base(job.Input())),
		float64(index)/float64(total))
}

// JobFinished implements worker.Observer.
func (r *UIReporter) JobFinished(batch uuid.UUID, index, total int, job worker.Job, resp channel.Response) {
	if resp.Failed() {
		r.set(fmt.Sprintf("Failed on %s", filepath.Base(job.Input())), float64(index)/float64(total))
		return
	}
	if index+1 == total {
		r.set("Completed", 1)
		return
	}
	r.set(fmt.Sprintf("Finished %d of %d", index+1, total), float64(index+1)/float64(total))
}

func (r *UIReporter) set(status string, progress float64) {
	if r.OnStatus != nil {
		r.OnStatus(status)
	}
	if r.OnProgress != nil {
		r.OnProgress(progress)
	}
}
