// Package distance provides options, results and sentinel errors for
// breadth-first distance labelling over a grid's links.
package distance

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for distance computation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distance: grid is nil")

	// ErrSourceNotFound is returned when the source is out of range or masked.
	ErrSourceNotFound = errors.New("distance: source cell not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")

	// ErrUnreached is returned by PathTo for a cell the search never labelled.
	ErrUnreached = errors.New("distance: cell not reached")
)

// Option configures Compute via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Compute runs.
type Option func(*Options)

// Options holds parameters and callbacks for one computation.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued cell.
	Ctx context.Context

	// MaxDepth, if > 0, stops labelling beyond this distance.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnVisit is called for each labelled cell in BFS order. A non-nil
	// error aborts the search.
	OnVisit func(cell, depth int) error

	err error
}

// DefaultOptions returns a background context, no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
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

// WithMaxDepth limits labelling to distance d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a hook run on every labelled cell.
func WithOnVisit(fn func(cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Span names the two ends of the longest shortest path and its length.
type Span struct {
	From   int `yaml:"from" json:"from"`
	To     int `yaml:"to" json:"to"`
	Length int `yaml:"length" json:"length"`
}
