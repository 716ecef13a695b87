package veffect

import (
	"context"
	"fmt"

	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// Schema is an immutable description of an accepted input shape and its
// validated output type. It exposes exactly one operation: producing the
// runtime-executable Validator. Validators are rebuilt on demand and never
// cached, so a child schema reused in multiple parents is revalidated
// independently each time.
type Schema[T any] interface {
	Validator() Validator[T]
}

// Validator is the runtime-executable form of a schema: stateless after
// construction and safe for repeated and concurrent calls. All four
// observation styles are derived from one attempt primitive, so they can
// never disagree about validity.
type Validator[T any] interface {
	// Validate is the single source of truth. It never raises for expected
	// failures; it only returns a failure Outcome.
	Validate(ctx context.Context, input any, opt Options) Outcome[T]
	// Parse calls Validate with zero options and returns the underlying
	// *Error on failure.
	Parse(ctx context.Context, input any) (T, error)
	// SafeParse never returns a raised error: expected failures arrive as a
	// discriminated Result and an unexpected internal panic is converted into
	// a generic custom error instead of escaping raw.
	SafeParse(ctx context.Context, input any) Result[T]
	// ParseAsync behaves like Parse but additionally permits declared-
	// asynchronous refinements to run. Structural and combinator machinery
	// never suspends on its own, so a schema without asynchronous refinements
	// behaves identically on both surfaces.
	ParseAsync(ctx context.Context, input any) (T, error)
}

// AttemptFunc is the low-level validation primitive every surface derives from.
type AttemptFunc[T any] func(ctx context.Context, input any, opt Options) Outcome[T]

// NewValidator builds the standard four-method Validator over one attempt.
func NewValidator[T any](attempt AttemptFunc[T]) Validator[T] {
	return validator[T]{attempt: attempt}
}

type validator[T any] struct {
	attempt AttemptFunc[T]
}

func (v validator[T]) Validate(ctx context.Context, input any, opt Options) Outcome[T] {
	return v.attempt(ctx, input, opt)
}

func (v validator[T]) Parse(ctx context.Context, input any) (T, error) {
	out := v.attempt(ctx, input, Options{})
	if out.Err != nil {
		var zero T
		return zero, out.Err
	}
	return out.Value, nil
}

func (v validator[T]) SafeParse(ctx context.Context, input any) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[T]{Error: NewError(KindCustom, nil,
				fmt.Sprintf("%s: %v", i18n.T("internal_error", nil), r))}
		}
	}()
	out := v.attempt(ctx, input, Options{})
	if out.Err != nil {
		return Result[T]{Error: out.Err}
	}
	return Result[T]{Success: true, Data: out.Value}
}

func (v validator[T]) ParseAsync(ctx context.Context, input any) (T, error) {
	out := v.attempt(WithAsyncMode(ctx, true), input, Options{})
	if out.Err != nil {
		var zero T
		return zero, out.Err
	}
	return out.Value, nil
}

// ---- Convenience wrappers ----

// Parse validates v against s and returns the typed value.
func Parse[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	return s.Validator().Parse(ctx, v)
}

// SafeParse validates v against s through the non-throwing surface.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) Result[T] {
	return s.Validator().SafeParse(ctx, v)
}

// ParseAsync validates v against s, awaiting asynchronous refinements.
func ParseAsync[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	return s.Validator().ParseAsync(ctx, v)
}

// Is reports whether v conforms to the schema s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validator().Validate(ctx, v, Options{}).OK()
}
