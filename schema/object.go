package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// UnknownPolicy decides what happens to input keys not declared on the object.
type UnknownPolicy uint8

const (
	// UnknownStrict rejects undeclared keys. This is the default.
	UnknownStrict UnknownPolicy = iota
	// UnknownStrip silently drops undeclared keys from the output.
	UnknownStrip
	// UnknownPassthrough copies undeclared keys into the output unvalidated.
	UnknownPassthrough
)

type objectField struct {
	name   string
	schema AnySchema
	// keyOptional lets the key be wholly absent. Distinct from a
	// value-optional schema, which requires the key but tolerates the
	// missing sentinel as its value.
	keyOptional bool
}

// ObjectBuilder accumulates field declarations for an object schema.
// Declaration order is preserved and drives field validation order.
type ObjectBuilder struct {
	fields  []objectField
	unknown UnknownPolicy
}

// Object starts an object schema with no fields.
func Object() *ObjectBuilder {
	return &ObjectBuilder{}
}

// Field declares a required property. Declaring the same name twice replaces
// the earlier schema in place, keeping the original position.
func (b *ObjectBuilder) Field(name string, s AnySchema) *ObjectBuilder {
	return b.field(name, s, false)
}

// OptionalField declares a property whose key may be wholly absent. When the
// key is present its value is validated like any other field.
func (b *ObjectBuilder) OptionalField(name string, s AnySchema) *ObjectBuilder {
	return b.field(name, s, true)
}

func (b *ObjectBuilder) field(name string, s AnySchema, keyOptional bool) *ObjectBuilder {
	for i := range b.fields {
		if b.fields[i].name == name {
			b.fields[i].schema = s
			b.fields[i].keyOptional = keyOptional
			return b
		}
	}
	b.fields = append(b.fields, objectField{name: name, schema: s, keyOptional: keyOptional})
	return b
}

// Strict rejects undeclared keys.
func (b *ObjectBuilder) Strict() *ObjectBuilder {
	b.unknown = UnknownStrict
	return b
}

// Strip drops undeclared keys from the output.
func (b *ObjectBuilder) Strip() *ObjectBuilder {
	b.unknown = UnknownStrip
	return b
}

// Passthrough copies undeclared keys into the output unvalidated.
func (b *ObjectBuilder) Passthrough() *ObjectBuilder {
	b.unknown = UnknownPassthrough
	return b
}

// Build finalizes the builder into an immutable object schema. Later builder
// calls do not affect the built schema. A field declared with a zero
// AnySchema is a construction error.
func (b *ObjectBuilder) Build() (*ObjectSchema, error) {
	for _, f := range b.fields {
		if f.name == "" {
			return nil, fmt.Errorf("object: empty field name")
		}
		if !f.schema.runnable() {
			return nil, fmt.Errorf("object: field %q has no schema", f.name)
		}
	}
	fields := make([]objectField, len(b.fields))
	copy(fields, b.fields)
	return &ObjectSchema{fields: fields, unknown: b.unknown}, nil
}

// MustBuild is Build that panics on a construction error, for package-level
// schema variables.
func (b *ObjectBuilder) MustBuild() *ObjectSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ObjectSchema validates map[string]any inputs against a fixed field set.
type ObjectSchema struct {
	fields  []objectField
	unknown UnknownPolicy
}

func (s *ObjectSchema) requiredFieldCount() int {
	n := 0
	for _, f := range s.fields {
		if !f.keyOptional && !f.schema.hasDefault {
			n++
		}
	}
	return n
}

// fieldLiteral reports the constant value of a Literal-typed field, if the
// field exists and is literal. Discriminated unions use this to index members.
func (s *ObjectSchema) fieldLiteral(name string) (any, bool) {
	for _, f := range s.fields {
		if f.name == name && f.schema.hasLiteral {
			return f.schema.literal, true
		}
	}
	return nil, false
}

func (s *ObjectSchema) Validator() veffect.Validator[map[string]any] {
	return veffect.NewValidator(s.attempt)
}

func (s *ObjectSchema) attempt(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[map[string]any] {
	m, ok := in.(map[string]any)
	if !ok {
		return veffect.Fail[map[string]any](veffect.TypeError(opt.Path, "object", veffect.ReceivedLabel(in)))
	}

	// Presence first. Every missing required key is reported in one pass so a
	// caller sees the full shape gap, not one key per attempt. A value-optional
	// schema does not waive presence; only key-optionality and defaults do.
	var missing []string
	for _, f := range s.fields {
		if _, present := m[f.name]; !present && !f.keyOptional && !f.schema.hasDefault {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		children := make([]*veffect.Error, 0, len(missing))
		for _, k := range missing {
			children = append(children, veffect.NewError(veffect.KindObject, opt.Path.Child(k), i18n.T("required", nil)))
		}
		msg := "Missing required properties: " + strings.Join(missing, ", ")
		return veffect.Fail[map[string]any](veffect.AggregateError(veffect.KindObject, opt.Path, msg, children))
	}

	out := make(map[string]any, len(s.fields))
	var children []*veffect.Error
	for _, f := range s.fields {
		val, present := m[f.name]
		if !present {
			if !f.schema.hasDefault {
				continue
			}
			val = veffect.Absent
		}
		res := f.schema.Validate(ctx, val, opt.At(f.name))
		if res.Err != nil {
			children = append(children, res.Err)
			if opt.StopOnFirstError {
				break
			}
			continue
		}
		if veffect.IsAbsent(res.Value) {
			continue
		}
		out[f.name] = res.Value
	}

	if (len(children) == 0 || !opt.StopOnFirstError) && s.unknown != UnknownStrip {
		var extra []string
		declared := make(map[string]struct{}, len(s.fields))
		for _, f := range s.fields {
			declared[f.name] = struct{}{}
		}
		for k := range m {
			if _, ok := declared[k]; !ok {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		for _, k := range extra {
			if s.unknown == UnknownPassthrough {
				out[k] = m[k]
				continue
			}
			children = append(children, veffect.NewError(veffect.KindObject, opt.Path.Child(k),
				i18n.T("unknown_key", map[string]string{"name": k})))
			if opt.StopOnFirstError {
				break
			}
		}
	}

	if len(children) > 0 {
		return veffect.Fail[map[string]any](veffect.AggregateError(
			veffect.KindObject, opt.Path, i18n.T("object_invalid", nil), children))
	}
	return veffect.Succeed(out)
}
