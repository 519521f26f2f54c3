package search

import (
	"context"
	"fmt"
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Build is called.
type Option func(*Options)

// Options holds parameters and callbacks shared by all searches.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnStep is called for every Step. A non-nil error aborts the search
	// and becomes the Result's cause.
	OnStep func(Step) error

	// MaxSteps, if > 0, aborts after this many expansions.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op OnStep hook
//   - no step limit (MaxSteps == 0)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnStep:   func(Step) error { return nil },
		MaxSteps: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback to run on every step.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps aborts the search after n expansions.
//
//	n > 0: limit to n
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Build applies opts over DefaultOptions and reports the first invalid one.
func Build(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Tracer carries Options through a single search run. It counts
// expansions, enforces MaxSteps and cancellation, and forwards steps to
// the hook. Every search owns its Tracer; it is never shared.
type Tracer struct {
	opts     Options
	expanded int
}

// NewTracer returns a Tracer for opts.
func NewTracer(opts Options) *Tracer {
	return &Tracer{opts: opts}
}

// Expanded returns how many times Tick succeeded.
func (t *Tracer) Expanded() int { return t.expanded }

// Tick records one expansion. It returns the context error once the
// context is done, or ErrStepLimit past MaxSteps.
func (t *Tracer) Tick() error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	if t.opts.MaxSteps > 0 && t.expanded >= t.opts.MaxSteps {
		return fmt.Errorf("%w: %d", ErrStepLimit, t.opts.MaxSteps)
	}
	t.expanded++
	return nil
}

// Emit forwards a step to the OnStep hook.
func (t *Tracer) Emit(step Step) error {
	if err := t.opts.OnStep(step); err != nil {
		return fmt.Errorf("search: OnStep hook at %v: %w", step.Pos, err)
	}
	return nil
}

// Abort wraps cause as an Aborted Result carrying the expansion count.
func (t *Tracer) Abort(cause error) Result {
	return Abort(cause, t.expanded)
}
