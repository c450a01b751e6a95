package mis

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/ipc2023-classical/planner17-sub002/vset"
)

// Sentinel errors for the decomposition engine.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mis: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mis: invalid option supplied")

	// ErrInconsistentFold is returned when a closed-degree-3 vertex survives
	// domination with adjacent neighbours. Reaching it means the reduction
	// rules disagree with each other; callers treat it as a critical error.
	ErrInconsistentFold = errors.New("mis: degree-3 fold on adjacent neighbours")

	// ErrInternal reports a broken propagation invariant: a pending counter
	// below zero or a contribution delivered to a finalized subgraph.
	ErrInternal = errors.New("mis: internal consistency violation")
)

// Option configures a solve via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds the solve parameters.
type Options struct {
	// FindAll keeps tied alternatives when two vertices have identical
	// closed neighbourhoods, so several maximum sets can be reported.
	FindAll bool

	// MaxSets caps every per-subgraph result list (K). Always ≥ 1.
	MaxSets int

	// Timer is polled cooperatively; nil never expires.
	Timer Timer

	// Ctx cancellation counts as timer expiry.
	Ctx context.Context

	// OnProgress, if set, receives the running step and leaf counts.
	OnProgress func(steps, leaves int)

	// Dump, if set, receives the subgraph registry once the reduction
	// phase has finished and before results are propagated.
	Dump io.Writer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with
//   - FindAll disabled,
//   - MaxSets = 1,
//   - no timer and context.Background(),
//   - no hooks.
func DefaultOptions() Options {
	return Options{
		MaxSets: 1,
		Ctx:     context.Background(),
	}
}

// WithFindAll toggles tie-preserving domination.
func WithFindAll(on bool) Option {
	return func(o *Options) { o.FindAll = on }
}

// WithMaxSets sets K, the per-subgraph cap on result lists.
//
//	k ≥ 1: cap
//	k < 1: invalid option → ErrOptionViolation
func WithMaxSets(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxSets must be ≥ 1 (%d)", k)
			return
		}
		o.MaxSets = k
	}
}

// WithTimer installs an externally owned timer.
func WithTimer(t Timer) Option {
	return func(o *Options) {
		if t != nil {
			o.Timer = t
		}
	}
}

// WithTimeLimit installs a countdown timer started when the option is applied.
// A negative limit is rejected; zero means no limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "time limit cannot be negative (%v)", d)
			return
		}
		if d > 0 {
			o.Timer = NewCountdownTimer(d)
		}
	}
}

// WithContext sets a context whose cancellation stops the search like a timeout.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnProgress registers a progress callback.
func WithOnProgress(fn func(steps, leaves int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithDump writes the subgraph registry to w after the reduction phase.
func WithDump(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Dump = w
		}
	}
}

// Result is the outcome of a solve.
//   - Sets: the root's maximum independent sets, at most MaxSets, all of the
//     same size. Empty when the best set is empty.
//   - Steps: subgraphs expanded by the reduction engine.
//   - Leaves: subgraphs finalized without children, including those left
//     pending by a timeout.
//   - Pending: subgraphs never expanded because the timer fired.
//   - Subgraphs: distinct presence patterns registered.
//   - Twins: parent links attached to an already registered subgraph.
type Result struct {
	Sets      []vset.Set
	Steps     int
	Leaves    int
	Pending   int
	Subgraphs int
	Twins     int
	TimedOut  bool
	Elapsed   time.Duration
}
