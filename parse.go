package veffect

import (
	"bytes"
	"context"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// ParseJSON decodes a JSON document and validates it against s. Numbers are
// decoded as json.Number so integer precision survives until a schema decides
// how to interpret them.
func ParseJSON[T any](ctx context.Context, s Schema[T], data []byte) (T, error) {
	return ParseJSONReader(ctx, s, bytes.NewReader(data))
}

// ParseJSONReader streams a JSON document from r and validates it against s.
func ParseJSONReader[T any](ctx context.Context, s Schema[T], r io.Reader) (T, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, NewError(KindCustom, nil, fmt.Sprintf("%s: %v", i18n.T("parse_error", nil), err))
	}
	return s.Validator().Parse(ctx, v)
}

// ParseYAML decodes a YAML document, normalizes its containers to the JSON
// shape (map[string]any / []any), and validates it against s.
func ParseYAML[T any](ctx context.Context, s Schema[T], data []byte) (T, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, NewError(KindCustom, nil, fmt.Sprintf("%s: %v", i18n.T("parse_error", nil), err))
	}
	return s.Validator().Parse(ctx, normalizeYAML(v))
}

// normalizeYAML rewrites decoded YAML containers into the canonical input
// shape. yaml.v3 yields map[string]any for string-keyed mappings but may
// produce map[any]any for anything else.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}
