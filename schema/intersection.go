package schema

import (
	"context"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// IntersectionSchema requires the input to satisfy every member. All members
// are attempted even after one fails so the aggregate covers every violated
// constraint. Object-shaped member outputs are shallow-merged in declaration
// order with the later member winning on key conflict.
type IntersectionSchema struct {
	members []AnySchema
}

// Intersection returns a schema accepting inputs all members accept.
func Intersection(members ...AnySchema) *IntersectionSchema {
	return &IntersectionSchema{members: members}
}

func (s *IntersectionSchema) Validator() veffect.Validator[any] {
	members := s.members
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
		var children []*veffect.Error
		var merged map[string]any
		var last any
		for _, m := range members {
			res := m.Validate(ctx, in, opt)
			if res.Err != nil {
				children = append(children, res.Err)
				if opt.StopOnFirstError {
					break
				}
				continue
			}
			last = res.Value
			if obj, ok := res.Value.(map[string]any); ok {
				if merged == nil {
					merged = make(map[string]any, len(obj))
				}
				for k, v := range obj {
					merged[k] = v
				}
			}
		}
		if len(children) > 0 {
			return veffect.Fail[any](veffect.AggregateError(
				veffect.KindIntersection, opt.Path, i18n.T("intersection_failed", nil), children))
		}
		if merged != nil {
			return veffect.Succeed[any](merged)
		}
		return veffect.Succeed(last)
	})
}
