package scenario

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/logger"
	"github.com/joshuapare/heapkit/pkg/heap"
)

// StepResult records the outcome of one step. Reported conditions such as
// a double free or an allocation that does not fit land in Error; they do
// not stop the run.
type StepResult struct {
	Index    int      `json:"index"`
	Op       Op       `json:"op"`
	Name     string   `json:"name,omitempty"`
	Size     int      `json:"size,omitempty"`
	Strategy string   `json:"strategy,omitempty"`
	Ptr      heap.Ptr `json:"ptr"`
	Error    string   `json:"error,omitempty"`
}

// OK reports whether the step succeeded.
func (r StepResult) OK() bool { return r.Error == "" }

func (r StepResult) String() string {
	var s string
	switch r.Op {
	case OpCheck:
		s = fmt.Sprintf("#%d check", r.Index)
	case OpFree:
		s = fmt.Sprintf("#%d free %s", r.Index, r.Name)
	default:
		s = fmt.Sprintf("#%d %s %s size=%d %s -> %s", r.Index, r.Op, r.Name, r.Size, r.Strategy, r.Ptr)
	}
	if r.Error != "" {
		return s + ": " + r.Error
	}
	return s + ": ok"
}

// Result is the outcome of a run.
type Result struct {
	ArenaSize int                 `json:"arena_size"`
	Steps     []StepResult        `json:"steps"`
	Pointers  map[string]heap.Ptr `json:"pointers"`
}

// Failed returns the number of steps that reported an error.
func (r *Result) Failed() int {
	n := 0
	for _, st := range r.Steps {
		if !st.OK() {
			n++
		}
	}
	return n
}

// Runner replays a scenario one step at a time.
type Runner struct {
	h    *heap.Heap
	sc   *Scenario
	next int
	res  *Result
}

// NewRunner validates sc and initializes h with the scenario's arena size.
func NewRunner(h *heap.Heap, sc *Scenario) (*Runner, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if err := h.Init(sc.ArenaSize); err != nil {
		return nil, fmt.Errorf("scenario: init arena: %w", err)
	}
	return &Runner{
		h:  h,
		sc: sc,
		res: &Result{
			ArenaSize: h.Size(),
			Steps:     make([]StepResult, 0, len(sc.Steps)),
			Pointers:  map[string]heap.Ptr{},
		},
	}, nil
}

// Heap returns the heap the runner drives.
func (r *Runner) Heap() *heap.Heap { return r.h }

// Done reports whether every step has run.
func (r *Runner) Done() bool { return r.next >= len(r.sc.Steps) }

// Remaining returns the number of steps not yet run.
func (r *Runner) Remaining() int { return len(r.sc.Steps) - r.next }

// Step runs the next step. It returns false once the scenario is exhausted.
func (r *Runner) Step() (StepResult, bool) {
	if r.Done() {
		return StepResult{}, false
	}
	st := r.sc.Steps[r.next]
	r.next++

	res := StepResult{Index: r.next, Op: st.Op, Name: st.Name, Size: st.Size}
	var err error
	switch st.Op {
	case OpAlloc:
		s := r.sc.strategy(st)
		res.Strategy = s.String()
		res.Ptr, err = r.h.Alloc(st.Size, s)
		if err == nil {
			r.res.Pointers[st.Name] = res.Ptr
		}
	case OpResize:
		s := r.sc.strategy(st)
		res.Strategy = s.String()
		res.Ptr, err = r.h.Resize(r.res.Pointers[st.Name], st.Size, s)
		if err == nil {
			r.res.Pointers[st.Name] = res.Ptr
		}
	case OpFree:
		res.Ptr = r.res.Pointers[st.Name]
		err = r.h.Free(res.Ptr)
	case OpCheck:
		err = r.h.Verify()
	}
	if err != nil {
		res.Error = err.Error()
	}

	logger.Debug("scenario step", "index", res.Index, "op", string(res.Op), "name", res.Name, "ptr", res.Ptr.String(), "ok", res.OK())
	r.res.Steps = append(r.res.Steps, res)
	return res, true
}

// Result returns the results recorded so far.
func (r *Runner) Result() *Result { return r.res }

// Run replays every step of sc against h.
func Run(h *heap.Heap, sc *Scenario) (*Result, error) {
	r, err := NewRunner(h, sc)
	if err != nil {
		return nil, err
	}
	for !r.Done() {
		r.Step()
	}
	return r.Result(), nil
}
