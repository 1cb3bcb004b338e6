package worker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"roe-gui/internal/channel"
	"roe-gui/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeChannel records every argv and answers with respond.
type fakeChannel struct {
	mu      sync.Mutex
	sent    [][]string
	respond func(argv []string) channel.Response
}

func (f *fakeChannel) Send(ctx context.Context, argv []string) channel.Response {
	f.mu.Lock()
	f.sent = append(f.sent, argv)
	f.mu.Unlock()
	if f.respond == nil {
		return channel.Response{Stdout: "ok " + argv[len(argv)-1]}
	}
	return f.respond(argv)
}

func (f *fakeChannel) inputs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, argv := range f.sent {
		out = append(out, argv[len(argv)-1])
	}
	return out
}

func wait(t *testing.T, done <-chan Outcome) Outcome {
	t.Helper()
	select {
	case out, ok := <-done:
		require.True(t, ok, "completion channel closed without an outcome")
		_, more := <-done
		require.False(t, more, "completion channel must be single-shot")
		return out
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not finish")
		return Outcome{}
	}
}

func params(inputs ...string) Params {
	return Params{
		Action:     ActionEncrypt,
		InputPaths: inputs,
		OutputDir:  "/out",
		Password:   "hunter2",
	}
}

func TestStart_AllSucceed(t *testing.T) {
	ch := &fakeChannel{}
	w := New(ch)

	done, ok := w.Start(context.Background(), params("a", "b", "c", "d"))
	require.True(t, ok)
	out := wait(t, done)

	require.Equal(t, OutcomeSuccess, out.Kind)
	require.Len(t, ch.sent, 4)
	require.Equal(t, 4, out.Dispatched)
	require.Equal(t, 4, out.Total)
	require.NotEqual(t, uuid.Nil, out.BatchID)
	require.NoError(t, out.Err())
	require.False(t, w.Running())
}

func TestStart_DispatchesFromTail(t *testing.T) {
	ch := &fakeChannel{}
	w := New(ch)

	out := wait(t, mustStart(t, w, params("a.txt", "b.txt")))

	require.Equal(t, []string{"b.txt", "a.txt"}, ch.inputs())
	require.Equal(t, OutcomeSuccess, out.Kind)
	require.NotNil(t, out.Response)
	// The completion carries the response of the last job dispatched.
	require.Equal(t, "ok a.txt", out.Response.Stdout)
	require.Equal(t, "a.txt", out.Job.Input())
}

func TestStart_ArgvLayout(t *testing.T) {
	ch := &fakeChannel{}
	w := New(ch)

	p := Params{Action: ActionDecrypt, InputPaths: []string{"/in/x.bmp"}, OutputDir: "/out", Password: "pw"}
	wait(t, mustStart(t, w, p))
	require.Equal(t, []string{"-decrypt", "-outdir", "/out", "-p", "pw", "/in/x.bmp"}, ch.sent[0])

	p.Recursive = true
	p.InputPaths = []string{"/in/dir"}
	wait(t, mustStart(t, w, p))
	require.Equal(t, []string{"-decrypt", "-outdir", "/out", "-p", "pw", "-recursive", "/in/dir"}, ch.sent[1])
}

func TestStart_FailFast(t *testing.T) {
	// Dispatch order for a..e is e, d, c, b, a; c is the third job.
	ch := &fakeChannel{respond: func(argv []string) channel.Response {
		in := argv[len(argv)-1]
		if in == "c" {
			return channel.Response{
				Error:  &channel.ErrorInfo{Code: channel.CodeProcess, Message: "exit status 1"},
				Stdout: "ERROR: failed on c",
			}
		}
		return channel.Response{Stdout: "ok " + in}
	}}
	w := New(ch)

	out := wait(t, mustStart(t, w, params("a", "b", "c", "d", "e")))

	require.Equal(t, OutcomeFailure, out.Kind)
	require.Equal(t, []string{"e", "d", "c"}, ch.inputs())
	require.Equal(t, 3, out.Dispatched)
	require.Equal(t, 5, out.Total)
	require.Equal(t, "ERROR: failed on c", out.Response.Stdout)
	require.Equal(t, "c", out.Job.Input())

	var pe *errors.ProcessError
	require.True(t, errors.As(out.Err(), &pe))
	require.False(t, w.Running())
}

func TestStart_NoOpWhileRunning(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	ch := &fakeChannel{respond: func(argv []string) channel.Response {
		entered <- struct{}{}
		<-release
		return channel.Response{}
	}}
	w := New(ch)

	done := mustStart(t, w, params("only"))
	<-entered
	require.True(t, w.Running())

	again, ok := w.Start(context.Background(), params("x", "y"))
	require.False(t, ok)
	require.Nil(t, again)

	close(release)
	out := wait(t, done)
	require.Equal(t, OutcomeSuccess, out.Kind)
	require.Equal(t, []string{"only"}, ch.inputs())
}

func TestStart_EmptyBatch(t *testing.T) {
	ch := &fakeChannel{}
	w := New(ch)

	out := wait(t, mustStart(t, w, params()))

	require.Equal(t, OutcomeEmpty, out.Kind)
	require.Nil(t, out.Response)
	require.Zero(t, out.Dispatched)
	require.Empty(t, ch.sent)
	require.True(t, errors.Is(out.Err(), errors.ErrEmptyBatch))
	require.False(t, w.Running())
}

func TestStart_MissingExecutable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "roe-cli")
	_, err := os.Stat(missing)
	require.True(t, os.IsNotExist(err))

	spawned := false
	ch := channel.NewExecChannel(channel.NewLocator([]string{missing}),
		func(ctx context.Context, req channel.Request) (string, string, error) {
			spawned = true
			return "", "", nil
		})
	w := New(ch)

	out := wait(t, mustStart(t, w, params("a", "b")))

	require.Equal(t, OutcomeFailure, out.Kind)
	require.Equal(t, 1, out.Dispatched)
	require.Equal(t, channel.CodeNotFound, out.Response.Error.Code)
	require.Equal(t, channel.NotFoundStderr, out.Response.Stderr)
	require.True(t, errors.IsNotFound(out.Err()))
	require.False(t, spawned)
}

func TestStart_RestartFromReceiver(t *testing.T) {
	w := New(&fakeChannel{})

	first := wait(t, mustStart(t, w, params("a")))
	second := wait(t, mustStart(t, w, params("b")))

	require.NotEqual(t, first.BatchID, second.BatchID)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingObserver) JobDispatched(batch uuid.UUID, index, total int, job Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "start "+job.Input())
}

func (r *recordingObserver) JobFinished(batch uuid.UUID, index, total int, job Job, resp channel.Response) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "end "+job.Input())
}

func TestStart_Observer(t *testing.T) {
	obs := &recordingObserver{}
	w := New(&fakeChannel{})
	w.SetObserver(obs)

	wait(t, mustStart(t, w, params("a", "b")))

	require.Equal(t, "start b,end b,start a,end a", strings.Join(obs.events, ","))
}

func TestJob_ArgsAreCopied(t *testing.T) {
	j := NewJob(params(), "in")
	args := j.Args()
	args[0] = "-mutated"
	require.Equal(t, "-encrypt", j.Args()[0])
}

func TestQueue_PopFromTail(t *testing.T) {
	q := BuildQueue(params("1", "2", "3"))
	require.Equal(t, 3, q.Len())

	var got []string
	for {
		j, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, j.Input())
	}
	require.Equal(t, []string{"3", "2", "1"}, got)
	require.Zero(t, q.Len())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(" Decrypt ")
	require.NoError(t, err)
	require.Equal(t, ActionDecrypt, a)
	require.Equal(t, "Decrypt", a.Title())

	_, err = ParseAction("shred")
	require.True(t, errors.Is(err, errors.ErrUnknownAction))
}

func mustStart(t *testing.T, w *Worker, p Params) <-chan Outcome {
	t.Helper()
	done, ok := w.Start(context.Background(), p)
	require.True(t, ok)
	return done
}
