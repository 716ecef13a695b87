package schema

import (
	"context"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// AnySchema adapts a strongly typed Schema[T] to the any-typed form consumed
// by structural containers and union resolvers. It keeps lightweight metadata
// about the underlying schema so resolvers can make pre-flight decisions
// (tolerated sentinels, literal discriminators, empty-object members) without
// running a validation attempt.
type AnySchema struct {
	attempt       veffect.AttemptFunc[any]
	acceptsAbsent bool
	acceptsNull   bool
	hasDefault    bool
	hasLiteral    bool
	literal       any
	// objectFields is the required-field count of an object-shaped schema,
	// -1 for anything else.
	objectFields int
}

// literalCarrier is implemented by Literal schemas so adapters and
// discriminated unions can read the constant without running validation.
type literalCarrier interface{ literalValue() any }

// fieldCounter is implemented by object-shaped schemas and reports how many
// declared fields must be present.
type fieldCounter interface{ requiredFieldCount() int }

// toleranceCarrier is implemented by widening combinators.
type toleranceCarrier interface{ tolerates() (absent, null bool) }

// defaultCarrier is implemented by default combinators.
type defaultCarrier interface{ defaulted() bool }

// Of erases a typed schema into an AnySchema field adapter.
func Of[T any](s veffect.Schema[T]) AnySchema {
	ad := AnySchema{objectFields: -1}
	ad.attempt = func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
		out := s.Validator().Validate(ctx, in, opt)
		if out.Err != nil {
			return veffect.Fail[any](out.Err)
		}
		return veffect.Succeed[any](out.Value)
	}
	if lc, ok := any(s).(literalCarrier); ok {
		ad.hasLiteral = true
		ad.literal = lc.literalValue()
	}
	if fc, ok := any(s).(fieldCounter); ok {
		ad.objectFields = fc.requiredFieldCount()
	}
	if tc, ok := any(s).(toleranceCarrier); ok {
		ad.acceptsAbsent, ad.acceptsNull = tc.tolerates()
	}
	if dc, ok := any(s).(defaultCarrier); ok {
		ad.hasDefault = dc.defaulted()
	}
	return ad
}

// Validate runs the erased attempt. The zero AnySchema is not runnable.
func (a AnySchema) Validate(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
	return a.attempt(ctx, in, opt)
}

func (a AnySchema) runnable() bool { return a.attempt != nil }

// Optional widens the adapter to tolerate the missing sentinel, which passes
// through unchanged so containers can distinguish "omit" from a value.
// Re-applying the widening is a no-op.
func (a AnySchema) Optional() AnySchema {
	if a.acceptsAbsent {
		return a
	}
	prev := a.attempt
	a.attempt = func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
		if veffect.IsAbsent(in) {
			return veffect.Succeed[any](veffect.Absent)
		}
		return prev(ctx, in, opt)
	}
	a.acceptsAbsent = true
	return a
}

// Nullable widens the adapter to tolerate explicit null, which validates to
// nil. Re-applying the widening is a no-op.
func (a AnySchema) Nullable() AnySchema {
	if a.acceptsNull {
		return a
	}
	prev := a.attempt
	a.attempt = func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
		if in == nil {
			return veffect.Succeed[any](nil)
		}
		return prev(ctx, in, opt)
	}
	a.acceptsNull = true
	return a
}

// Nullish widens the adapter to tolerate both sentinels.
func (a AnySchema) Nullish() AnySchema { return a.Optional().Nullable() }

// Default substitutes v when the input is the missing sentinel. The
// substituted value is not re-validated against the underlying schema's own
// checks, only against combinators chained after this one.
func (a AnySchema) Default(v any) AnySchema { return a.DefaultFunc(func() any { return v }) }

// DefaultFunc is like Default but re-evaluates the thunk on every call.
func (a AnySchema) DefaultFunc(fn func() any) AnySchema {
	prev := a.attempt
	a.attempt = func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
		if veffect.IsAbsent(in) {
			return veffect.Succeed[any](fn())
		}
		return prev(ctx, in, opt)
	}
	a.hasDefault = true
	a.acceptsAbsent = true
	return a
}

// Refine appends a post-condition on the already-validated value.
func (a AnySchema) Refine(pred func(any) bool, message string) AnySchema {
	prev := a.attempt
	a.attempt = func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
		out := prev(ctx, in, opt)
		if out.Err != nil {
			return out
		}
		if !pred(out.Value) {
			msg := message
			if msg == "" {
				msg = i18n.T("refinement_failed", nil)
			}
			return veffect.Fail[any](veffect.NewError(veffect.KindRefinement, opt.Path, msg))
		}
		return out
	}
	return a
}

// Invalid returns an adapter that rejects every input with a custom message.
// It is the explicit invalid signal for Pattern matchers.
func Invalid(message string) AnySchema {
	return AnySchema{
		objectFields: -1,
		attempt: func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
			return veffect.Fail[any](veffect.NewError(veffect.KindCustom, opt.Path, message))
		},
	}
}
