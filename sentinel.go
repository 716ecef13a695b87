package veffect

// absentValue is the type behind the Absent marker.
type absentValue struct{}

func (absentValue) String() string { return "<missing>" }

// Absent is the sentinel passed to a child schema when a property key (or the
// whole input) is missing. It is distinct from an explicit null, which is a
// plain untyped nil. Both markers are threaded through every combinator.
var Absent any = absentValue{}

// IsAbsent reports whether v is the missing-value sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}

// Opt is the two-level optional produced by the widening combinators.
// Present=false means the value was missing entirely; Present=true with
// Null=true means an explicit null was supplied.
type Opt[T any] struct {
	Value   T
	Present bool
	Null    bool
}

// Some wraps a present, non-null value.
func Some[T any](v T) Opt[T] { return Opt[T]{Value: v, Present: true} }

// None marks a missing value.
func None[T any]() Opt[T] { return Opt[T]{} }

// Null marks a present but explicitly null value.
func Null[T any]() Opt[T] { return Opt[T]{Present: true, Null: true} }
