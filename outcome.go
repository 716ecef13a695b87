package veffect

// Outcome is the result of one validation attempt: success carrying a
// (possibly transformed) value, or failure carrying exactly one Error, which
// may itself be an aggregate.
type Outcome[T any] struct {
	Value T
	Err   *Error
}

// OK reports whether the attempt succeeded.
func (o Outcome[T]) OK() bool { return o.Err == nil }

// Succeed wraps a value in a successful Outcome.
func Succeed[T any](v T) Outcome[T] { return Outcome[T]{Value: v} }

// Fail wraps an error in a failed Outcome.
func Fail[T any](err *Error) Outcome[T] { return Outcome[T]{Err: err} }

// Result is the discriminated result returned by SafeParse. Exactly one of
// Data (Success=true) or Error (Success=false) is meaningful.
type Result[T any] struct {
	Success bool
	Data    T
	Error   *Error
}
