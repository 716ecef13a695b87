// Package registry attaches descriptive metadata to schemas by identity.
// Metadata never affects validation; it exists for documentation surfaces and
// example-driven tests.
package registry

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	veffect "github.com/chrismichaelps/veffect-sub000"
)

// Metadata is the descriptive record attached to a schema.
type Metadata struct {
	ID          string
	Title       string
	Description string
	Examples    []any
	Deprecated  bool
}

// Registry maps schemas to metadata by identity. The zero value is unusable;
// call New. All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[any]Metadata
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[any]Metadata)}
}

// hashable reports whether v can key a map. Combinator schemas are struct
// values carrying funcs, which cannot; take their address to register them.
func hashable(v any) bool {
	return v != nil && reflect.TypeOf(v).Comparable()
}

// Register associates meta with the schema, replacing any earlier record.
// Schemas are keyed by identity, so two structurally equal schemas built
// separately are distinct entries. Schemas whose values cannot key a map,
// such as combinator-built values, are rejected with an error; register a
// pointer to them instead.
func (r *Registry) Register(schema any, meta Metadata) error {
	if !hashable(schema) {
		return fmt.Errorf("registry: %T is not usable as a key, register a pointer to it", schema)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[schema] = meta
	return nil
}

// Lookup returns the metadata recorded for the schema.
func (r *Registry) Lookup(schema any) (Metadata, bool) {
	if !hashable(schema) {
		return Metadata{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.entries[schema]
	return meta, ok
}

// Remove deletes the schema's record, reporting whether one existed.
func (r *Registry) Remove(schema any) bool {
	if !hashable(schema) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[schema]
	delete(r.entries, schema)
	return ok
}

// Clear drops every record.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[any]Metadata)
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// ValidateExamples runs every example recorded for s through its validator
// and returns the failures, one Result per example in recorded order.
func ValidateExamples[T any](ctx context.Context, r *Registry, s veffect.Schema[T]) []veffect.Result[T] {
	meta, ok := r.Lookup(s)
	if !ok {
		return nil
	}
	results := make([]veffect.Result[T], 0, len(meta.Examples))
	for _, ex := range meta.Examples {
		results = append(results, s.Validator().SafeParse(ctx, ex))
	}
	return results
}
