package worker

import (
	"fmt"
	"strings"

	"roe-gui/internal/errors"
)

// Action selects what roe-cli does with every input of a batch.
type Action string

const (
	ActionEncrypt Action = "encrypt"
	ActionDecrypt Action = "decrypt"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	return a == ActionEncrypt || a == ActionDecrypt
}

// Flag returns the command-line switch for a, e.g. "-encrypt".
func (a Action) Flag() string {
	return "-" + string(a)
}

// Title returns the capitalized action name used on buttons.
func (a Action) Title() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

// ParseAction converts user input into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownAction, s)
	}
	return a, nil
}

// Params are the batch-wide settings shared by every job.
type Params struct {
	Action     Action
	InputPaths []string
	OutputDir  string
	Password   string
	Recursive  bool
}

// Job is one invocation of roe-cli for exactly one input path.
// A Job is immutable once built.
type Job struct {
	input string
	args  []string
}

// NewJob builds the argument list for input:
//
//	-encrypt|-decrypt -outdir <dir> -p <password> [-recursive] <input>
func NewJob(p Params, input string) Job {
	args := []string{p.Action.Flag(), "-outdir", p.OutputDir, "-p", p.Password}
	if p.Recursive {
		args = append(args, "-recursive")
	}
	args = append(args, input)
	return Job{input: input, args: args}
}

// Input returns the path this job processes.
func (j Job) Input() string {
	return j.input
}

// Args returns a copy of the argument list.
func (j Job) Args() []string {
	return append([]string(nil), j.args...)
}

// Queue holds the pending jobs of one batch. Jobs are pushed in input order
// and popped from the tail, so the last input is dispatched first.
type Queue struct {
	jobs []Job
}

// BuildQueue creates one job per input path of p.
func BuildQueue(p Params) *Queue {
	q := &Queue{jobs: make([]Job, 0, len(p.InputPaths))}
	for _, in := range p.InputPaths {
		q.Push(NewJob(p, in))
	}
	return q
}

func (q *Queue) Push(j Job) {
	q.jobs = append(q.jobs, j)
}

// Pop removes and returns the tail job.
func (q *Queue) Pop() (Job, bool) {
	n := len(q.jobs)
	if n == 0 {
		return Job{}, false
	}
	j := q.jobs[n-1]
	q.jobs[n-1] = Job{}
	q.jobs = q.jobs[:n-1]
	return j, true
}

func (q *Queue) Len() int {
	return len(q.jobs)
}
