package schema

import (
	"context"
	"fmt"
	"sort"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// MapSchema validates map entries against a key schema and a value schema,
// producing a typed map. Entries are visited in a stable order derived from
// the key's string form.
type MapSchema[K comparable, V any] struct {
	key    veffect.Schema[K]
	value  veffect.Schema[V]
	checks []lenCheck
}

// Map returns a schema validating every entry of a map.
func Map[K comparable, V any](key veffect.Schema[K], value veffect.Schema[V]) *MapSchema[K, V] {
	return &MapSchema[K, V]{key: key, value: value}
}

func (s *MapSchema[K, V]) with(c lenCheck) *MapSchema[K, V] {
	checks := make([]lenCheck, len(s.checks), len(s.checks)+1)
	copy(checks, s.checks)
	return &MapSchema[K, V]{key: s.key, value: s.value, checks: append(checks, c)}
}

// MinSize requires at least n entries.
func (s *MapSchema[K, V]) MinSize(n int) *MapSchema[K, V] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l >= n },
		msg: i18n.T("too_short", map[string]string{"min": fmt.Sprint(n)}),
	})
}

// MaxSize requires at most n entries.
func (s *MapSchema[K, V]) MaxSize(n int) *MapSchema[K, V] {
	return s.with(lenCheck{
		fn:  func(l int) bool { return l <= n },
		msg: i18n.T("too_long", map[string]string{"max": fmt.Sprint(n)}),
	})
}

type mapEntry struct {
	label string
	key   any
	value any
}

// mapEntries widens the supported map input shapes into a sorted entry list.
func mapEntries[K comparable, V any](in any) ([]mapEntry, bool) {
	var entries []mapEntry
	switch t := in.(type) {
	case map[any]any:
		for k, v := range t {
			entries = append(entries, mapEntry{label: fmt.Sprint(k), key: k, value: v})
		}
	case map[string]any:
		for k, v := range t {
			entries = append(entries, mapEntry{label: k, key: k, value: v})
		}
	case map[K]V:
		for k, v := range t {
			entries = append(entries, mapEntry{label: fmt.Sprint(k), key: k, value: v})
		}
	default:
		return nil, false
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].label < entries[j].label })
	return entries, true
}

func (s *MapSchema[K, V]) Validator() veffect.Validator[map[K]V] {
	keyV := s.key.Validator()
	valueV := s.value.Validator()
	checks := s.checks
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[map[K]V] {
		entries, ok := mapEntries[K, V](in)
		if !ok {
			return veffect.Fail[map[K]V](veffect.TypeError(opt.Path, "map", veffect.ReceivedLabel(in)))
		}
		for _, c := range checks {
			if !c.fn(len(entries)) {
				return veffect.Fail[map[K]V](veffect.NewError(veffect.KindMap, opt.Path, c.msg))
			}
		}
		out := make(map[K]V, len(entries))
		var children []*veffect.Error
		for _, e := range entries {
			entryOpt := opt.At(e.label)
			kres := keyV.Validate(ctx, e.key, entryOpt)
			if kres.Err != nil {
				children = append(children, kres.Err)
				if opt.StopOnFirstError {
					break
				}
				continue
			}
			vres := valueV.Validate(ctx, e.value, entryOpt)
			if vres.Err != nil {
				children = append(children, vres.Err)
				if opt.StopOnFirstError {
					break
				}
				continue
			}
			out[kres.Value] = vres.Value
		}
		if len(children) > 0 {
			return veffect.Fail[map[K]V](veffect.AggregateError(
				veffect.KindMap, opt.Path, i18n.T("map_invalid", nil), children))
		}
		return veffect.Succeed(out)
	})
}
