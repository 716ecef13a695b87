package schema

import (
	"sort"
	"strings"
)

// Interface builds an object schema from a plain field map, with key
// optionality spelled in the key itself: a trailing unescaped "?" marks the
// key as omittable, and a trailing `\?` escapes a literal question mark in a
// required key name.
//
// Key optionality lets the key be wholly absent. It is distinct from
// declaring the field schema itself Optional, which requires the key but lets
// its value be the missing sentinel.
//
// Map iteration order is random, so fields are declared in sorted raw-key
// order rather than the declaration order Object().Field preserves. That
// order drives field validation and the order of aggregate error children.
func Interface(fields map[string]AnySchema) *ObjectBuilder {
	b := Object()
	names := make([]string, 0, len(fields))
	for raw := range fields {
		names = append(names, raw)
	}
	// Map iteration order is random; fix the declaration order by raw key.
	sort.Strings(names)
	for _, raw := range names {
		name, optional := parseFieldKey(raw)
		if optional {
			b.OptionalField(name, fields[raw])
		} else {
			b.Field(name, fields[raw])
		}
	}
	return b
}

// parseFieldKey strips the optionality marker from a raw field key.
func parseFieldKey(raw string) (name string, optional bool) {
	if strings.HasSuffix(raw, `\?`) {
		return raw[:len(raw)-2] + "?", false
	}
	if strings.HasSuffix(raw, "?") {
		return raw[:len(raw)-1], true
	}
	return raw, false
}
