// Package scenario loads YAML allocation scripts and replays them against a
// heap.
//
// A scenario names its pointers, so steps can refer back to earlier
// allocations:
//
//	arena_size: 1000
//	backing: heap
//	strategy: first_fit
//	steps:
//	  - {op: alloc, name: a, size: 100}
//	  - {op: resize, name: a, size: 200, strategy: best_fit}
//	  - {op: free, name: a}
//	  - {op: check}
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/arena/alloc"
	"github.com/joshuapare/heapkit/pkg/heap"
)

// ErrInvalidScenario is wrapped by every validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid")

// Op is a step operation.
type Op string

const (
	OpAlloc  Op = "alloc"
	OpFree   Op = "free"
	OpResize Op = "resize"
	OpCheck  Op = "check"
)

// Step is one scripted operation.
type Step struct {
	Op       Op     `yaml:"op"`
	Name     string `yaml:"name,omitempty"`
	Size     int    `yaml:"size,omitempty"`
	Strategy string `yaml:"strategy,omitempty"`
}

// Scenario is a scripted sequence of heap operations.
type Scenario struct {
	ArenaSize int    `yaml:"arena_size"`
	Backing   string `yaml:"backing,omitempty"`
	Strategy  string `yaml:"strategy,omitempty"`
	Steps     []Step `yaml:"steps"`
}

// Load reads and validates the scenario at path.
func Load(fs afero.Fs, path string) (*Scenario, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	sc, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a YAML scenario. Unknown fields are rejected.
func Parse(b []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario without running it and reports every
// problem found.
func (sc *Scenario) Validate() error {
	var errs []error
	if sc.ArenaSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: arena_size must be positive, got %d", ErrInvalidScenario, sc.ArenaSize))
	}
	if _, ok := arena.ParseBacking(sc.Backing); !ok {
		errs = append(errs, fmt.Errorf("%w: unknown backing %q", ErrInvalidScenario, sc.Backing))
	}
	if _, ok := alloc.ParseStrategy(sc.Strategy); !ok {
		errs = append(errs, fmt.Errorf("%w: unknown strategy %q", ErrInvalidScenario, sc.Strategy))
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: step %d: %w", ErrInvalidScenario, i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (st Step) validate() error {
	if _, ok := alloc.ParseStrategy(st.Strategy); !ok {
		return fmt.Errorf("unknown strategy %q", st.Strategy)
	}
	switch st.Op {
	case OpAlloc:
		if st.Name == "" {
			return errors.New("alloc needs a name")
		}
	case OpResize:
		if st.Name == "" {
			return errors.New("resize needs a name")
		}
	case OpFree:
		if st.Name == "" {
			return errors.New("free needs a name")
		}
	case OpCheck:
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

// HeapOptions applies the scenario's backing to base.
func (sc *Scenario) HeapOptions(base heap.Options) heap.Options {
	if b, ok := arena.ParseBacking(sc.Backing); ok {
		base.Backing = b
	}
	return base
}

// strategy resolves the effective strategy for st.
func (sc *Scenario) strategy(st Step) alloc.Strategy {
	if st.Strategy != "" {
		s, _ := alloc.ParseStrategy(st.Strategy)
		return s
	}
	s, _ := alloc.ParseStrategy(sc.Strategy)
	return s
}
