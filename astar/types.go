package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by FindPath and FindPaths.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint is the parent of every rejected start/goal error.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = fmt.Errorf("%w: start cell out of bounds", ErrInvalidEndpoint)

	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = fmt.Errorf("%w: goal cell out of bounds", ErrInvalidEndpoint)

	// ErrBlockedEndpoint indicates the start or goal cell is an obstacle.
	ErrBlockedEndpoint = fmt.Errorf("%w: endpoint is blocked", ErrInvalidEndpoint)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Outcome classifies a finished search for metrics.
type Outcome string

const (
	OutcomeFound     Outcome = "found"
	OutcomeNotFound  Outcome = "not_found"
	OutcomeTruncated Outcome = "truncated"
	OutcomeInvalid   Outcome = "invalid"
)

// Recorder receives one observation per FindPath call.
// Implementations must be safe for concurrent use; FindPaths calls them
// from several goroutines.
type Recorder interface {
	ObserveSearch(outcome Outcome, expanded int, pathLen int, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveSearch(Outcome, int, int, time.Duration) {}

// Result holds the outcome of a search.
//   - Found: whether a path from start to goal exists (within MaxExpansions).
//   - Path: cells from start to goal inclusive; nil when not found.
//   - Moves: the direction taken for each step, len(Path)-1 entries.
//   - Cost: number of steps (uniform cost 1 per move).
//   - Expanded: nodes whose neighbours were generated.
//   - Generated: nodes created in the arena, root included.
//   - Truncated: the search stopped at MaxExpansions before deciding.
type Result struct {
	Found     bool
	Path      []gridgraph.Cell
	Moves     []gridgraph.Direction
	Cost      int
	Expanded  int
	Generated int
	Truncated bool
}

// Query is one start/goal pair for FindPaths.
type Query struct {
	Start gridgraph.Cell `yaml:"start"`
	Goal  gridgraph.Cell `yaml:"goal"`
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the parameters of a search.
type Options struct {
	// MaxExpansions, if > 0, caps the number of expanded nodes.
	// A value of 0 disables the cap.
	MaxExpansions int

	// LenientEndpoints accepts blocked start/goal cells. A blocked goal is
	// then simply never reached; a blocked start is still expanded.
	LenientEndpoints bool

	// Concurrency bounds the goroutines used by FindPaths.
	// A value of 0 means runtime.GOMAXPROCS(0).
	Concurrency int

	// Logger receives one Debug record per search.
	Logger *slog.Logger

	// Recorder receives one observation per search.
	Recorder Recorder

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no expansion cap, strict endpoints,
// GOMAXPROCS concurrency, a discarding logger and a no-op recorder.
func DefaultOptions() Options {
	return Options{
		MaxExpansions:    0,
		LenientEndpoints: false,
		Concurrency:      0,
		Logger:           slog.New(slog.DiscardHandler),
		Recorder:         noopRecorder{},
	}
}

// WithMaxExpansions stops the search after n expansions.
//
//	n > 0: cap at n
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLenientEndpoints disables the blocked-endpoint check.
func WithLenientEndpoints() Option {
	return func(o *Options) {
		o.LenientEndpoints = true
	}
}

// WithConcurrency limits FindPaths to n concurrent searches.
// n == 0 restores the GOMAXPROCS default; n < 0 is an ErrOptionViolation.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Concurrency cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the metrics recorder. A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

func (o Options) workers() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}
