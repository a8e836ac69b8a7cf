// Package crucible defines core types and configuration options
// for the run-length constrained shortest-path search.
//
// Options:
//
//	– Mode:         MinRun / MaxRun pair (Basic by default).
//	– Model:        ModelCompressed (default) or ModelPerCell transitions.
//	– GoalRunCheck: require Run >= MinRun when the goal is popped (default true).
//	– ReturnPath:   if true, Result carries the witness path.
//	– OnPop:        hook called for every state popped from the frontier.
//	– OnSettle:     hook called for every state that survives the ledger.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the grid pointer is nil.
//	– ErrInvalidMode     if MinRun < 1 or MaxRun < MinRun.
//	– ErrOptionViolation if an Option received an invalid argument.
//	– ErrNoPath          if no legal route reaches the goal.
package crucible

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed to Search.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrInvalidMode indicates a Mode whose run bounds cannot be satisfied.
	ErrInvalidMode = errors.New("crucible: mode requires 1 <= MinRun <= MaxRun")

	// ErrUnknownMode indicates ModeByName was given a name it does not know.
	ErrUnknownMode = errors.New("crucible: unknown mode")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("crucible: invalid option supplied")

	// ErrNoPath indicates the frontier emptied before the goal was popped.
	ErrNoPath = errors.New("crucible: no path satisfies the run-length constraints")
)

// Mode bounds the length of every straight run.
// MinRun must be reached before turning (or stopping at the goal);
// MaxRun caps how far the mover may go without turning.
type Mode struct {
	Name   string
	MinRun int
	MaxRun int
}

var (
	// Basic allows a turn after any single step and at most 3 steps straight.
	Basic = Mode{Name: "basic", MinRun: 1, MaxRun: 3}

	// Ultra needs 4 steps before turning and allows at most 10 straight.
	Ultra = Mode{Name: "ultra", MinRun: 4, MaxRun: 10}
)

// Modes returns the built-in modes in a stable order.
func Modes() []Mode {
	return []Mode{Basic, Ultra}
}

// ModeByName looks up a built-in mode, ignoring case.
func ModeByName(name string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}

	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Validate reports ErrInvalidMode unless 1 <= MinRun <= MaxRun.
func (m Mode) Validate() error {
	if m.MinRun < 1 || m.MaxRun < m.MinRun {
		return fmt.Errorf("%w: got %s", ErrInvalidMode, m)
	}

	return nil
}

func (m Mode) String() string {
	name := m.Name
	if name == "" {
		name = "custom"
	}

	return fmt.Sprintf("%s(%d..%d)", name, m.MinRun, m.MaxRun)
}

// Model selects how turns are expanded.
type Model int

const (
	// ModelCompressed advances MinRun cells in one transition after a turn.
	ModelCompressed Model = iota

	// ModelPerCell advances one cell per transition and gates turns on Run.
	ModelPerCell
)

var modelNames = map[Model]string{
	ModelCompressed: "compressed",
	ModelPerCell:    "per-cell",
}

func (m Model) String() string {
	if s, ok := modelNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Model(%d)", int(m))
}

// ParseModel accepts "compressed" or "per-cell".
func ParseModel(s string) (Model, error) {
	for m, name := range modelNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown transition model %q", ErrOptionViolation, s)
}

// State is a node of the augmented search graph.
// Run counts the cells entered in Dir since the last turn; the start state
// has Dir == None and Run == 0.
type State struct {
	Pos gridgraph.Position
	Dir Direction
	Run int
}

// IsStart reports whether s has not moved yet.
func (s State) IsStart() bool {
	return s.Dir == None
}

func (s State) String() string {
	return fmt.Sprintf("%s %s×%d", s.Pos, s.Dir, s.Run)
}

// Result holds the outcome of one search.
//
//   - Cost:    minimal accumulated weight from start to goal.
//   - Path:    every cell on the witness route, start and goal included
//     (nil unless WithReturnPath was given).
//   - States:  the settled states along the route, start first
//     (nil unless WithReturnPath was given). A compressed turn is one state.
//   - Popped:  states taken off the frontier, dominated ones included.
//   - Settled: states that passed the ledger and were expanded.
//   - Pushed:  successor states pushed onto the frontier; the start is not counted.
type Result struct {
	Cost    int64
	Path    []gridgraph.Position
	States  []State
	Popped  int
	Settled int
	Pushed  int
}

// Options configures one search.
type Options struct {
	Mode         Mode
	Model        Model
	GoalRunCheck bool
	ReturnPath   bool

	// OnPop is called for every state popped from the frontier, before the
	// goal test. Costs arrive in non-decreasing order.
	OnPop func(s State, cost int64)

	// OnSettle is called for every state recorded in the ledger, just before
	// it is expanded.
	OnSettle func(s State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
// An invalid argument is recorded and surfaced as ErrOptionViolation
// when Search runs.
type Option func(*Options)

// DefaultOptions returns an Options struct with:
//   - Mode:         Basic
//   - Model:        ModelCompressed
//   - GoalRunCheck: true
//   - ReturnPath:   false
//   - no-op OnPop / OnSettle hooks.
func DefaultOptions() Options {
	return Options{
		Mode:         Basic,
		Model:        ModelCompressed,
		GoalRunCheck: true,
		ReturnPath:   false,
		OnPop:        func(State, int64) {},
		OnSettle:     func(State, int64) {},
	}
}

// WithMode selects the run-length bounds.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if err := m.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Mode = m
	}
}

// WithTransitionModel selects compressed or per-cell transitions.
func WithTransitionModel(m Model) Option {
	return func(o *Options) {
		if _, ok := modelNames[m]; !ok {
			o.err = fmt.Errorf("%w: unknown transition model %d", ErrOptionViolation, int(m))
			return
		}
		o.Model = m
	}
}

// WithGoalRunCheck decides whether a state at the goal cell must have
// Run >= MinRun to end the search. The start state is always accepted,
// so a 1×1 grid costs 0 either way.
func WithGoalRunCheck(enabled bool) Option {
	return func(o *Options) {
		o.GoalRunCheck = enabled
	}
}

// WithReturnPath makes Search fill Result.Path and Result.States.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnPop registers a hook run for every popped state.
func WithOnPop(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithOnSettle registers a hook run for every settled state.
func WithOnSettle(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
