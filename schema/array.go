package schema

import (
	"context"
	"strconv"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// ArraySchema validates every element of a slice against one element schema.
type ArraySchema[E any] struct {
	elem   veffect.Schema[E]
	checks []lenCheck
}

type lenCheck struct {
	fn  func(int) bool
	msg string
}

// Array returns a schema for slices whose elements all satisfy elem.
func Array[E any](elem veffect.Schema[E]) *ArraySchema[E] {
	return &ArraySchema[E]{elem: elem}
}

func (s *ArraySchema[E]) with(c lenCheck) *ArraySchema[E] {
	checks := make([]lenCheck, len(s.checks), len(s.checks)+1)
	copy(checks, s.checks)
	return &ArraySchema[E]{elem: s.elem, checks: append(checks, c)}
}

// Min requires at least n elements.
func (s *ArraySchema[E]) Min(n int) *ArraySchema[E] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l >= n },
		msg: i18n.T("too_short", map[string]string{"min": strconv.Itoa(n)}),
	})
}

// Max requires at most n elements.
func (s *ArraySchema[E]) Max(n int) *ArraySchema[E] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l <= n },
		msg: i18n.T("too_long", map[string]string{"max": strconv.Itoa(n)}),
	})
}

// Length requires exactly n elements.
func (s *ArraySchema[E]) Length(n int) *ArraySchema[E] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l == n },
		msg: i18n.T("wrong_size", map[string]string{"size": strconv.Itoa(n)}),
	})
}

// NonEmpty requires at least one element.
func (s *ArraySchema[E]) NonEmpty() *ArraySchema[E] { return s.Min(1) }

func (s *ArraySchema[E]) Validator() veffect.Validator[[]E] {
	elem := s.elem.Validator()
	checks := s.checks
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[[]E] {
		items, ok := sliceItems[E](in)
		if !ok {
			return veffect.Fail[[]E](veffect.TypeError(opt.Path, "array", veffect.ReceivedLabel(in)))
		}
		for _, c := range checks {
			if !c.fn(len(items)) {
				return veffect.Fail[[]E](veffect.NewError(veffect.KindArray, opt.Path, c.msg))
			}
		}
		out := make([]E, 0, len(items))
		var children []*veffect.Error
		for i, item := range items {
			res := elem.Validate(ctx, item, opt.AtIndex(i))
			if res.Err != nil {
				children = append(children, res.Err)
				if opt.StopOnFirstError {
					break
				}
				continue
			}
			out = append(out, res.Value)
		}
		if len(children) > 0 {
			return veffect.Fail[[]E](veffect.AggregateError(
				veffect.KindArray, opt.Path, i18n.T("array_invalid", nil), children))
		}
		return veffect.Succeed(out)
	})
}

// sliceItems widens either a decoded []any or an already-typed []E.
func sliceItems[E any](in any) ([]any, bool) {
	switch t := in.(type) {
	case []any:
		return t, true
	case []E:
		items := make([]any, len(t))
		for i, v := range t {
			items[i] = v
		}
		return items, true
	}
	return nil, false
}
