package schema

import (
	"context"
	"fmt"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// ---- refine ----

type refineSchema[T any] struct {
	base veffect.Schema[T]
	pred func(T) bool
	msg  func(T) string
}

// Refine appends a post-condition with a static failure message. The
// predicate runs strictly after the base schema accepted the value.
func Refine[T any](s veffect.Schema[T], pred func(T) bool, message string) veffect.Schema[T] {
	if message == "" {
		message = i18n.T("refinement_failed", nil)
	}
	return refineSchema[T]{base: s, pred: pred, msg: func(T) string { return message }}
}

// RefineLazy is Refine with a message computed from the already-valid value.
func RefineLazy[T any](s veffect.Schema[T], pred func(T) bool, message func(T) string) veffect.Schema[T] {
	return refineSchema[T]{base: s, pred: pred, msg: message}
}

func (s refineSchema[T]) Validator() veffect.Validator[T] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[T] {
		out := s.base.Validator().Validate(ctx, in, opt)
		if out.Err != nil {
			return out
		}
		if !s.pred(out.Value) {
			return veffect.Fail[T](veffect.NewError(veffect.KindRefinement, opt.Path, s.msg(out.Value)))
		}
		return out
	})
}

func (s refineSchema[T]) tolerates() (bool, bool) { return schemaTolerance(s.base) }

// ---- asynchronous refine ----

type asyncRefineSchema[T any] struct {
	base veffect.Schema[T]
	pred func(context.Context, T) (bool, error)
	msg  string
}

// RefineAsync appends a post-condition whose predicate may suspend (perform
// I/O). Synchrony is declared by the entry point, never probed: the
// synchronous surfaces fail at this refinement with a refinement error, while
// ParseAsync awaits the predicate. A predicate error is surfaced as a custom
// error rather than a refinement failure.
func RefineAsync[T any](s veffect.Schema[T], pred func(context.Context, T) (bool, error), message string) veffect.Schema[T] {
	if message == "" {
		message = i18n.T("refinement_failed", nil)
	}
	return asyncRefineSchema[T]{base: s, pred: pred, msg: message}
}

func (s asyncRefineSchema[T]) Validator() veffect.Validator[T] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[T] {
		out := s.base.Validator().Validate(ctx, in, opt)
		if out.Err != nil {
			return out
		}
		if !veffect.IsAsyncMode(ctx) {
			return veffect.Fail[T](veffect.NewError(veffect.KindRefinement, opt.Path,
				i18n.T("async_refinement", nil)))
		}
		ok, err := s.pred(ctx, out.Value)
		if err != nil {
			return veffect.Fail[T](veffect.NewError(veffect.KindCustom, opt.Path, err.Error()))
		}
		if !ok {
			return veffect.Fail[T](veffect.NewError(veffect.KindRefinement, opt.Path, s.msg))
		}
		return out
	})
}

func (s asyncRefineSchema[T]) tolerates() (bool, bool) { return schemaTolerance(s.base) }

// ---- transform ----

type transformSchema[A, B any] struct {
	base veffect.Schema[A]
	fn   func(A) (B, error)
}

// Transform produces a schema whose output type is the mapper's return type.
// The mapper runs strictly after every prior check succeeded; a mapper error
// becomes a custom failure. The result is a generic Schema[B] with no
// specialized chaining.
func Transform[A, B any](s veffect.Schema[A], fn func(A) (B, error)) veffect.Schema[B] {
	return transformSchema[A, B]{base: s, fn: fn}
}

func (s transformSchema[A, B]) Validator() veffect.Validator[B] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[B] {
		out := s.base.Validator().Validate(ctx, in, opt)
		if out.Err != nil {
			return veffect.Fail[B](out.Err)
		}
		mapped, err := s.fn(out.Value)
		if err != nil {
			return veffect.Fail[B](veffect.NewError(veffect.KindCustom, opt.Path,
				fmt.Sprintf("%s: %v", i18n.T("transform_failed", nil), err)))
		}
		return veffect.Succeed(mapped)
	})
}

func (s transformSchema[A, B]) tolerates() (bool, bool) { return schemaTolerance(s.base) }

// ---- default ----

type defaultSchema[T any] struct {
	base veffect.Schema[T]
	fn   func() T
}

// Default substitutes value when the input is the missing sentinel. The
// substituted value is intentionally NOT re-validated against the base
// schema's own checks, only against combinators chained after this one.
func Default[T any](s veffect.Schema[T], value T) veffect.Schema[T] {
	return defaultSchema[T]{base: s, fn: func() T { return value }}
}

// DefaultFunc is Default with a thunk re-evaluated on every call.
func DefaultFunc[T any](s veffect.Schema[T], fn func() T) veffect.Schema[T] {
	return defaultSchema[T]{base: s, fn: fn}
}

func (s defaultSchema[T]) Validator() veffect.Validator[T] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[T] {
		if veffect.IsAbsent(in) {
			return veffect.Succeed(s.fn())
		}
		return s.base.Validator().Validate(ctx, in, opt)
	})
}

func (s defaultSchema[T]) tolerates() (bool, bool) {
	_, null := schemaTolerance(s.base)
	return true, null
}

func (s defaultSchema[T]) defaulted() bool { return true }

// ---- widenings ----

type optionalSchema[T any] struct {
	base        veffect.Schema[T]
	allowAbsent bool
	allowNull   bool
}

// Optional widens accepted input to include the missing sentinel, which
// short-circuits to an absent Opt before delegating to the base validator.
func Optional[T any](s veffect.Schema[T]) veffect.Schema[veffect.Opt[T]] {
	return optionalSchema[T]{base: s, allowAbsent: true}
}

// Nullable widens accepted input to include explicit null.
func Nullable[T any](s veffect.Schema[T]) veffect.Schema[veffect.Opt[T]] {
	return optionalSchema[T]{base: s, allowNull: true}
}

// Nullish widens accepted input to include both sentinels.
func Nullish[T any](s veffect.Schema[T]) veffect.Schema[veffect.Opt[T]] {
	return optionalSchema[T]{base: s, allowAbsent: true, allowNull: true}
}

func (s optionalSchema[T]) Validator() veffect.Validator[veffect.Opt[T]] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[veffect.Opt[T]] {
		if s.allowAbsent && veffect.IsAbsent(in) {
			return veffect.Succeed(veffect.None[T]())
		}
		if s.allowNull && in == nil {
			return veffect.Succeed(veffect.Null[T]())
		}
		out := s.base.Validator().Validate(ctx, in, opt)
		if out.Err != nil {
			return veffect.Fail[veffect.Opt[T]](out.Err)
		}
		return veffect.Succeed(veffect.Some(out.Value))
	})
}

func (s optionalSchema[T]) tolerates() (bool, bool) {
	absent, null := schemaTolerance(s.base)
	return absent || s.allowAbsent, null || s.allowNull
}

// schemaTolerance reads the widening metadata of a schema when it carries any.
func schemaTolerance(s any) (absent, null bool) {
	if tc, ok := s.(toleranceCarrier); ok {
		return tc.tolerates()
	}
	return false, false
}
