package schema

import (
	"context"
	"strconv"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// TupleSchema validates a fixed-arity sequence, each position against its own
// schema. Arity is checked before any position is validated.
type TupleSchema struct {
	items []AnySchema
}

// Tuple returns a schema for sequences with one schema per position.
func Tuple(items ...AnySchema) *TupleSchema {
	return &TupleSchema{items: items}
}

func (s *TupleSchema) Validator() veffect.Validator[[]any] {
	items := s.items
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[[]any] {
		seq, ok := in.([]any)
		if !ok {
			return veffect.Fail[[]any](veffect.TypeError(opt.Path, "array", veffect.ReceivedLabel(in)))
		}
		if len(seq) != len(items) {
			return veffect.Fail[[]any](veffect.NewError(veffect.KindTuple, opt.Path,
				i18n.T("tuple_arity", map[string]string{
					"expected": strconv.Itoa(len(items)),
					"received": strconv.Itoa(len(seq)),
				})))
		}
		out := make([]any, len(items))
		var children []*veffect.Error
		for i, item := range items {
			res := item.Validate(ctx, seq[i], opt.AtIndex(i))
			if res.Err != nil {
				children = append(children, res.Err)
				if opt.StopOnFirstError {
					break
				}
				continue
			}
			out[i] = res.Value
		}
		if len(children) > 0 {
			return veffect.Fail[[]any](veffect.AggregateError(
				veffect.KindTuple, opt.Path, i18n.T("tuple_invalid", nil), children))
		}
		return veffect.Succeed(out)
	})
}
