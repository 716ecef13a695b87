package schema

import (
	"context"
	"encoding/json"
	"fmt"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// DiscriminatedUnionSchema resolves the member by a shared literal tag field
// and then runs only that member. Unlike Union, a failing member is reported
// directly instead of trying the others.
type DiscriminatedUnionSchema struct {
	field    string
	members  []*ObjectSchema
	byTag    map[any]*ObjectSchema
	tagOrder []any
}

// DiscriminatedUnion builds a tag-routed union. Every member must declare the
// discriminator field as a Literal; construction fails otherwise, and a
// duplicate tag value across members is also a construction error.
func DiscriminatedUnion(field string, members ...*ObjectSchema) (*DiscriminatedUnionSchema, error) {
	s := &DiscriminatedUnionSchema{
		field:   field,
		members: members,
		byTag:   make(map[any]*ObjectSchema, len(members)),
	}
	for i, m := range members {
		tag, ok := m.fieldLiteral(field)
		if !ok {
			return nil, fmt.Errorf("discriminated union: member %d does not declare literal field %q", i, field)
		}
		if _, dup := s.byTag[tag]; dup {
			return nil, fmt.Errorf("discriminated union: duplicate tag value %v for field %q", tag, field)
		}
		s.byTag[tag] = m
		s.tagOrder = append(s.tagOrder, tag)
	}
	return s, nil
}

// MustDiscriminatedUnion is DiscriminatedUnion that panics on a construction
// error, for package-level schema variables.
func MustDiscriminatedUnion(field string, members ...*ObjectSchema) *DiscriminatedUnionSchema {
	s, err := DiscriminatedUnion(field, members...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *DiscriminatedUnionSchema) Validator() veffect.Validator[map[string]any] {
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[map[string]any] {
		m, ok := in.(map[string]any)
		if !ok {
			return veffect.Fail[map[string]any](veffect.TypeError(opt.Path, "object", veffect.ReceivedLabel(in)))
		}
		tag, present := m[s.field]
		if !present {
			return veffect.Fail[map[string]any](veffect.NewError(
				veffect.KindUnion, opt.Path.Child(s.field),
				i18n.T("discriminator_missing", map[string]string{"field": s.field})))
		}
		member := s.lookup(tag)
		if member == nil {
			msg := fmt.Sprintf("No schema matched for discriminated union with '%s' value: %v", s.field, tag)
			return veffect.Fail[map[string]any](veffect.AggregateError(
				veffect.KindUnion, opt.Path, msg,
				[]*veffect.Error{veffect.NewError(veffect.KindUnion, opt.Path.Child(s.field), msg)}))
		}
		return member.attempt(ctx, in, opt)
	})
}

// lookup matches the tag value against member literals, falling back to a
// numeric comparison so a json.Number tag matches a numeric literal.
func (s *DiscriminatedUnionSchema) lookup(tag any) *ObjectSchema {
	if m, ok := s.byTag[tag]; ok {
		return m
	}
	n, ok := tag.(json.Number)
	if !ok {
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil
	}
	for _, lit := range s.tagOrder {
		if lf, ok := numericLiteral(lit); ok && lf == f {
			return s.byTag[lit]
		}
	}
	return nil
}

func numericLiteral(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}
