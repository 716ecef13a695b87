package schema

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// NumberSchema validates numeric inputs as float64. JSON numbers arrive as
// json.Number (ParseJSON decodes with UseNumber) or float64; direct Go
// integer values are accepted for ergonomic defaults and literals.
type NumberSchema struct {
	checks []numberCheck
}

type numberCheck struct {
	fn  func(float64) bool
	msg string
}

// Number returns a schema accepting any finite or non-finite number; chain
// Finite to reject NaN and infinities.
func Number() *NumberSchema { return &NumberSchema{} }

func (s *NumberSchema) with(c numberCheck) *NumberSchema {
	checks := make([]numberCheck, len(s.checks), len(s.checks)+1)
	copy(checks, s.checks)
	return &NumberSchema{checks: append(checks, c)}
}

func fmtFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Min requires v >= n.
func (s *NumberSchema) Min(n float64) *NumberSchema {
	return s.with(numberCheck{
		fn:  func(v float64) bool { return v >= n },
		msg: i18n.T("too_small", map[string]string{"min": fmtFloat(n)}),
	})
}

// Max requires v <= n.
func (s *NumberSchema) Max(n float64) *NumberSchema {
	return s.with(numberCheck{
		fn:  func(v float64) bool { return v <= n },
		msg: i18n.T("too_big", map[string]string{"max": fmtFloat(n)}),
	})
}

// Gt requires v > n.
func (s *NumberSchema) Gt(n float64) *NumberSchema {
	return s.with(numberCheck{
		fn:  func(v float64) bool { return v > n },
		msg: i18n.T("not_greater", map[string]string{"limit": fmtFloat(n)}),
	})
}

// Lt requires v < n.
func (s *NumberSchema) Lt(n float64) *NumberSchema {
	return s.with(numberCheck{
		fn:  func(v float64) bool { return v < n },
		msg: i18n.T("not_less", map[string]string{"limit": fmtFloat(n)}),
	})
}

// Int requires an integral value.
func (s *NumberSchema) Int() *NumberSchema {
	return s.with(numberCheck{
		fn:  func(v float64) bool { return math.Trunc(v) == v && !math.IsInf(v, 0) },
		msg: i18n.T("not_integer", nil),
	})
}

// Positive requires v > 0.
func (s *NumberSchema) Positive() *NumberSchema { return s.Gt(0) }

// Negative requires v < 0.
func (s *NumberSchema) Negative() *NumberSchema { return s.Lt(0) }

// MultipleOf requires v to be a multiple of step.
func (s *NumberSchema) MultipleOf(step float64) *NumberSchema {
	return s.with(numberCheck{
		fn: func(v float64) bool {
			if step == 0 {
				return false
			}
			q := v / step
			return math.Abs(q-math.Round(q)) < 1e-9
		},
		msg: i18n.T("not_multiple", map[string]string{"step": fmtFloat(step)}),
	})
}

// Finite rejects NaN and infinities.
func (s *NumberSchema) Finite() *NumberSchema {
	return s.with(numberCheck{
		fn:  func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) },
		msg: i18n.T("not_finite", nil),
	})
}

// numberValue coerces the supported wire representations to float64.
func numberValue(in any) (float64, bool) {
	switch t := in.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		return f, err == nil
	}
	return 0, false
}

func (s *NumberSchema) Validator() veffect.Validator[float64] {
	checks := s.checks
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[float64] {
		v, ok := numberValue(in)
		if !ok {
			return veffect.Fail[float64](veffect.TypeError(opt.Path, "number", veffect.ReceivedLabel(in)))
		}
		for _, c := range checks {
			if !c.fn(v) {
				return veffect.Fail[float64](veffect.NewError(veffect.KindNumber, opt.Path, c.msg))
			}
		}
		return veffect.Succeed(v)
	})
}
