package schema

import (
	"context"
	"strconv"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// SetSchema validates a sequence of unique elements into a set. A repeated
// element is a validation failure at the position of the repeat, not a silent
// deduplication.
type SetSchema[E comparable] struct {
	elem   veffect.Schema[E]
	checks []lenCheck
}

// Set returns a schema producing a set of distinct validated elements.
func Set[E comparable](elem veffect.Schema[E]) *SetSchema[E] {
	return &SetSchema[E]{elem: elem}
}

func (s *SetSchema[E]) with(c lenCheck) *SetSchema[E] {
	checks := make([]lenCheck, len(s.checks), len(s.checks)+1)
	copy(checks, s.checks)
	return &SetSchema[E]{elem: s.elem, checks: append(checks, c)}
}

// MinSize requires at least n distinct elements.
func (s *SetSchema[E]) MinSize(n int) *SetSchema[E] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l >= n },
		msg: i18n.T("too_short", map[string]string{"min": strconv.Itoa(n)}),
	})
}

// MaxSize requires at most n distinct elements.
func (s *SetSchema[E]) MaxSize(n int) *SetSchema[E] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l <= n },
		msg: i18n.T("too_long", map[string]string{"max": strconv.Itoa(n)}),
	})
}

func (s *SetSchema[E]) Validator() veffect.Validator[map[E]struct{}] {
	elem := s.elem.Validator()
	checks := s.checks
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[map[E]struct{}] {
		items, ok := sliceItems[E](in)
		if !ok {
			return veffect.Fail[map[E]struct{}](veffect.TypeError(opt.Path, "set", veffect.ReceivedLabel(in)))
		}
		out := make(map[E]struct{}, len(items))
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
			if _, dup := out[res.Value]; dup {
				children = append(children, veffect.NewError(
					veffect.KindSet, opt.Path.Index(i), i18n.T("duplicate_element", nil)))
				if opt.StopOnFirstError {
					break
				}
				continue
			}
			out[res.Value] = struct{}{}
		}
		if len(children) > 0 {
			return veffect.Fail[map[E]struct{}](veffect.AggregateError(
				veffect.KindSet, opt.Path, i18n.T("set_invalid", nil), children))
		}
		for _, c := range checks {
			if !c.fn(len(out)) {
				return veffect.Fail[map[E]struct{}](veffect.NewError(veffect.KindSet, opt.Path, c.msg))
			}
		}
		return veffect.Succeed(out)
	})
}
