package solve

import (
	"context"
	"fmt"
	"time"
)

// Defaults for the solver options.
const (
	DefaultStageTimeout   = 30 * time.Second
	DefaultMaxSearchDepth = 8
	DefaultNodeBudget     = 20_000_000
)

type options struct {
	ctx            context.Context
	stageTimeout   time.Duration
	maxSearchDepth int
	nodeBudget     int

	violations []error
}

// Option configures Solve. Invalid values are recorded and surfaced as
// ErrOptionViolation when Solve runs, never silently clamped.
type Option func(*options)

// WithContext attaches a context for cooperative cancellation, checked at
// every search-node boundary.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx == nil {
			o.violations = append(o.violations,
				fmt.Errorf("%w: nil context", ErrOptionViolation))
			return
		}
		o.ctx = ctx
	}
}

// WithStageTimeout caps the wall-clock time of each pipeline stage.
func WithStageTimeout(d time.Duration) Option {
	return func(o *options) {
		if d <= 0 {
			o.violations = append(o.violations,
				fmt.Errorf("%w: non-positive stage timeout %v", ErrOptionViolation, d))
			return
		}
		o.stageTimeout = d
	}
}

// WithMaxSearchDepth caps the depth of the edge-pairing fallback search.
func WithMaxSearchDepth(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.violations = append(o.violations,
				fmt.Errorf("%w: max search depth %d < 1", ErrOptionViolation, n))
			return
		}
		o.maxSearchDepth = n
	}
}

// WithNodeBudget caps the total number of search nodes a stage may expand.
func WithNodeBudget(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.violations = append(o.violations,
				fmt.Errorf("%w: node budget %d < 1", ErrOptionViolation, n))
			return
		}
		o.nodeBudget = n
	}
}

func buildOptions(opts []Option) (*options, error) {
	o := &options{
		ctx:            context.Background(),
		stageTimeout:   DefaultStageTimeout,
		maxSearchDepth: DefaultMaxSearchDepth,
		nodeBudget:     DefaultNodeBudget,
	}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.violations) > 0 {
		return nil, o.violations[0]
	}

	return o, nil
}

// budget is the per-stage resource account: one deadline, one node counter,
// one context, checked together at every search-node boundary.
type budget struct {
	stage    string
	ctx      context.Context
	deadline time.Time
	nodes    int
}

func (o *options) newBudget(stage string) *budget {
	return &budget{
		stage:    stage,
		ctx:      o.ctx,
		deadline: time.Now().Add(o.stageTimeout),
		nodes:    o.nodeBudget,
	}
}

// tick spends one node and reports whether the stage may continue.
func (b *budget) tick() error {
	if err := b.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s stage: %v", ErrCancelled, b.stage, err)
	}
	b.nodes--
	if b.nodes < 0 {
		return fmt.Errorf("%w: %s stage exhausted its node budget", ErrStageTimeout, b.stage)
	}
	// Checking the clock on every node would dominate the search; every
	// 4096 nodes keeps the overshoot well under a millisecond.
	if b.nodes&0xfff == 0 && time.Now().After(b.deadline) {
		return fmt.Errorf("%w: %s stage exceeded its wall-clock budget", ErrStageTimeout, b.stage)
	}

	return nil
}
