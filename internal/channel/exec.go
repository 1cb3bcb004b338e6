package channel

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"
	"time"

	"roe-gui/internal/log"
)

// Spawner runs one process to completion and returns its output verbatim.
type Spawner func(ctx context.Context, req Request) (stdout, stderr string, err error)

// ExecSpawner runs req with os/exec, capturing stdout and stderr.
func ExecSpawner(ctx context.Context, req Request) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, req.ExecutablePath, req.Argv...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Locator finds the executable among an ordered list of candidate paths.
// The lookup runs once per Locator; later calls return the cached answer.
type Locator struct {
	candidates []string
	exists     func(path string) bool

	once  sync.Once
	path  string
	found bool
}

// NewLocator creates a Locator over candidates, checked in order.
func NewLocator(candidates []string) *Locator {
	return &Locator{
		candidates: append([]string(nil), candidates...),
		exists:     fileExists,
	}
}

// Resolve returns the first existing candidate.
func (l *Locator) Resolve() (string, bool) {
	l.once.Do(func() {
		for _, p := range l.candidates {
			if l.exists(p) {
				l.path, l.found = p, true
				log.Info("roe-cli located", log.String("path", p))
				return
			}
		}
		log.Warn("roe-cli not found", log.Strings("candidates", l.candidates))
	})
	return l.path, l.found
}

// Candidates returns the configured search order.
func (l *Locator) Candidates() []string {
	return append([]string(nil), l.candidates...)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ExecChannel is the process-spawning Channel.
type ExecChannel struct {
	mu      sync.Mutex
	locator *Locator
	spawn   Spawner
}

var _ Channel = (*ExecChannel)(nil)

// NewExecChannel creates a channel that spawns the executable found by
// locator. A nil spawn uses ExecSpawner.
func NewExecChannel(locator *Locator, spawn Spawner) *ExecChannel {
	if spawn == nil {
		spawn = ExecSpawner
	}
	return &ExecChannel{locator: locator, spawn: spawn}
}

// Send implements Channel. Concurrent callers are serialized.
func (c *ExecChannel) Send(ctx context.Context, argv []string) Response {
	c.mu.Lock()
	defer c.mu.Unlock()

	path, ok := c.locator.Resolve()
	if !ok {
		return NotFoundResponse()
	}

	start := time.Now()
	stdout, stderr, err := c.spawn(ctx, Request{
		ExecutablePath: path,
		Argv:           append([]string(nil), argv...),
	})
	resp := Response{Stdout: stdout, Stderr: stderr}
	if err != nil {
		resp.Error = &ErrorInfo{Code: CodeProcess, Message: err.Error()}
	}

	log.Debug("roe-cli finished",
		log.Duration("elapsed", time.Since(start)),
		log.Bool("failed", err != nil),
		log.Int("stdout_bytes", len(stdout)),
		log.Int("stderr_bytes", len(stderr)),
	)
	return resp
}
