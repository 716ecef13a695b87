package schema

import (
	"context"
	"fmt"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// ---- bool ----

type boolSchema struct{}

// Bool returns a schema accepting either boolean value.
func Bool() veffect.Schema[bool] { return boolSchema{} }

func (boolSchema) Validator() veffect.Validator[bool] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[bool] {
		b, ok := in.(bool)
		if !ok {
			return veffect.Fail[bool](veffect.TypeError(opt.Path, "boolean", veffect.ReceivedLabel(in)))
		}
		return veffect.Succeed(b)
	})
}

// ---- literal ----

type literalSchema[T comparable] struct{ value T }

// Literal returns a schema accepting exactly one constant value. Literal
// fields serve as discriminators in discriminated unions.
func Literal[T comparable](v T) veffect.Schema[T] { return literalSchema[T]{value: v} }

func (s literalSchema[T]) literalValue() any { return s.value }

func (s literalSchema[T]) Validator() veffect.Validator[T] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[T] {
		if tv, ok := in.(T); ok && tv == s.value {
			return veffect.Succeed(tv)
		}
		// numeric literals also match numerically equal wire values, so a
		// json.Number tag can satisfy a float64 literal
		if want, ok := numericLiteral(s.value); ok {
			if got, ok := numberValue(in); ok && got == want {
				return veffect.Succeed(s.value)
			}
		}
		return veffect.Fail[T](veffect.TypeError(opt.Path,
			fmt.Sprintf("literal %v", s.value), veffect.ReceivedLabel(in)))
	})
}

// ---- enum ----

type enumSchema struct{ values []string }

// Enum returns a schema accepting one of the given string values.
func Enum(values ...string) veffect.Schema[string] {
	vs := make([]string, len(values))
	copy(vs, values)
	return enumSchema{values: vs}
}

func (s enumSchema) Validator() veffect.Validator[string] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[string] {
		str, ok := in.(string)
		if !ok {
			return veffect.Fail[string](veffect.TypeError(opt.Path, "string", veffect.ReceivedLabel(in)))
		}
		for _, v := range s.values {
			if str == v {
				return veffect.Succeed(str)
			}
		}
		return veffect.Fail[string](veffect.NewError(veffect.KindString, opt.Path, i18n.T("invalid_enum", nil)))
	})
}

// ---- any ----

type anySchema struct{}

// Any returns a schema accepting every value, including null. The missing
// sentinel is still rejected: absence is not a value.
func Any() veffect.Schema[any] { return anySchema{} }

func (anySchema) Validator() veffect.Validator[any] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
		if veffect.IsAbsent(in) {
			return veffect.Fail[any](veffect.TypeError(opt.Path, "any value", "missing"))
		}
		return veffect.Succeed(in)
	})
}
