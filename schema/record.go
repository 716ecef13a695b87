package schema

import (
	"context"
	"sort"
	"strconv"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// RecordSchema validates string-keyed maps with uniform value schemas and an
// optional key schema. Entries are visited in sorted key order so failure
// aggregation is deterministic.
type RecordSchema[V any] struct {
	key    veffect.Schema[string]
	value  veffect.Schema[V]
	checks []lenCheck
}

// Record returns a schema validating every value of a string-keyed map.
func Record[V any](value veffect.Schema[V]) *RecordSchema[V] {
	return &RecordSchema[V]{value: value}
}

// RecordWithKeys additionally validates each key against a string schema.
func RecordWithKeys[V any](key veffect.Schema[string], value veffect.Schema[V]) *RecordSchema[V] {
	return &RecordSchema[V]{key: key, value: value}
}

func (s *RecordSchema[V]) with(c lenCheck) *RecordSchema[V] {
	checks := make([]lenCheck, len(s.checks), len(s.checks)+1)
	copy(checks, s.checks)
	return &RecordSchema[V]{key: s.key, value: s.value, checks: append(checks, c)}
}

// Min requires at least n entries.
func (s *RecordSchema[V]) Min(n int) *RecordSchema[V] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l >= n },
		msg: i18n.T("too_short", map[string]string{"min": strconv.Itoa(n)}),
	})
}

// Max requires at most n entries.
func (s *RecordSchema[V]) Max(n int) *RecordSchema[V] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l <= n },
		msg: i18n.T("too_long", map[string]string{"max": strconv.Itoa(n)}),
	})
}

// Size requires exactly n entries.
func (s *RecordSchema[V]) Size(n int) *RecordSchema[V] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l == n },
		msg: i18n.T("wrong_size", map[string]string{"size": strconv.Itoa(n)}),
	})
}

func (s *RecordSchema[V]) Validator() veffect.Validator[map[string]V] {
	var keyV veffect.Validator[string]
	if s.key != nil {
		keyV = s.key.Validator()
	}
	valueV := s.value.Validator()
	checks := s.checks
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[map[string]V] {
		m, ok := in.(map[string]any)
		if !ok {
			return veffect.Fail[map[string]V](veffect.TypeError(opt.Path, "object", veffect.ReceivedLabel(in)))
		}
		for _, c := range checks {
			if !c.fn(len(m)) {
				return veffect.Fail[map[string]V](veffect.NewError(veffect.KindRecord, opt.Path, c.msg))
			}
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]V, len(m))
		var children []*veffect.Error
		for _, k := range keys {
			if keyV != nil {
				if res := keyV.Validate(ctx, k, opt.At(k)); res.Err != nil {
					children = append(children, res.Err)
					if opt.StopOnFirstError {
						break
					}
					continue
				}
			}
			res := valueV.Validate(ctx, m[k], opt.At(k))
			if res.Err != nil {
				children = append(children, res.Err)
				if opt.StopOnFirstError {
					break
				}
				continue
			}
			out[k] = res.Value
		}
		if len(children) > 0 {
			return veffect.Fail[map[string]V](veffect.AggregateError(
				veffect.KindRecord, opt.Path, i18n.T("record_invalid", nil), children))
		}
		return veffect.Succeed(out)
	})
}
