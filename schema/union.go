package schema

import (
	"context"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// UnionSchema tries each member in declaration order and keeps the first
// success. Declaration order is therefore precedence: when two members would
// both accept an input, the earlier one decides the output.
type UnionSchema struct {
	members []AnySchema
}

// Union returns a schema accepting any input one of its members accepts.
func Union(members ...AnySchema) *UnionSchema {
	return &UnionSchema{members: members}
}

func (s *UnionSchema) Validator() veffect.Validator[any] {
	members := s.members
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
		// Sentinel inputs are settled up front from member metadata instead of
		// attempting members that can only reject them.
		if code, reject := unionPrecheck(members, in); reject {
			return veffect.Fail[any](veffect.NewError(veffect.KindUnion, opt.Path, i18n.T(code, nil)))
		}
		branchErrs := make([]*veffect.Error, 0, len(members))
		for _, m := range members {
			res := m.Validate(ctx, in, opt)
			if res.Err == nil {
				return res
			}
			branchErrs = append(branchErrs, res.Err)
		}
		return veffect.Fail[any](veffect.AggregateError(
			veffect.KindUnion, opt.Path, i18n.T("union_no_match", nil), branchErrs))
	})
}

// unionPrecheck rejects sentinel inputs no member can tolerate. It returns the
// message code and true when the input is settled without any member attempt.
func unionPrecheck(members []AnySchema, in any) (string, bool) {
	switch {
	case veffect.IsAbsent(in):
		for _, m := range members {
			if m.acceptsAbsent {
				return "", false
			}
		}
		return "union_missing", true
	case in == nil:
		for _, m := range members {
			if m.acceptsNull {
				return "", false
			}
		}
		return "union_null", true
	}
	if m, ok := in.(map[string]any); ok && len(m) == 0 {
		// Only members that demonstrably require fields can be skipped; a
		// non-object member or a zero-field object might still accept {}.
		for _, member := range members {
			if member.objectFields <= 0 {
				return "", false
			}
		}
		return "union_empty_object", true
	}
	return "", false
}

// PatternSchema routes the input to a member chosen by a matcher callback
// before validating. It is the open-world counterpart of DiscriminatedUnion:
// the caller owns the dispatch logic.
type PatternSchema struct {
	match func(any) AnySchema
}

// Pattern returns a schema that validates against whichever member the
// matcher selects. Return Invalid(...) from the matcher to reject with a
// custom message, or the zero AnySchema to reject generically.
func Pattern(match func(any) AnySchema) *PatternSchema {
	return &PatternSchema{match: match}
}

func (s *PatternSchema) Validator() veffect.Validator[any] {
	match := s.match
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[any] {
		m := match(in)
		if !m.runnable() {
			return veffect.Fail[any](veffect.NewError(veffect.KindCustom, opt.Path,
				"pattern matcher returned no schema"))
		}
		return m.Validate(ctx, in, opt)
	})
}
