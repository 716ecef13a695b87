package veffect

import "context"

// Options is the per-call validator configuration. Path is prepended to any
// error raised by the attempt and threads position into child calls;
// StopOnFirstError abandons remaining siblings after the first failure
// instead of collecting every failure into an aggregate.
type Options struct {
	Path             Path
	StopOnFirstError bool
}

// At returns child options whose path is extended by a property segment.
func (o Options) At(seg string) Options {
	o.Path = o.Path.Child(seg)
	return o
}

// AtIndex returns child options whose path is extended by an element index.
func (o Options) AtIndex(i int) Options {
	o.Path = o.Path.Index(i)
	return o
}

// ---- Parse-time context flags (internal wiring, exported for subpackages) ----

type contextKey int

const _ctxKeyAsync contextKey = iota

// WithAsyncMode returns a child context marking that declared-asynchronous
// refinements may run. This is set by ParseAsync and consumed by refinement
// implementations.
func WithAsyncMode(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyAsync, enabled)
}

// IsAsyncMode reports whether asynchronous refinements may run on this parse.
func IsAsyncMode(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyAsync).(bool)
	return b
}
