// Package middleware holds the framework-neutral pieces of the HTTP
// validation middlewares: context stashing for validated values and the
// error payload shape.
package middleware

import (
	"context"

	veffect "github.com/chrismichaelps/veffect-sub000"
)

// ctxKeyValue is a typed context key for storing a validated T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyValue[T any] struct{}

// ContextWithValue attaches a validated value to the context.
func ContextWithValue[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValue[T]{}, v)
}

// ValueFromContext retrieves a validated value from the context.
func ValueFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValue[T]{}).(T)
	return v, ok
}

// ErrorPayload shapes a validation error tree for JSON responses. Each leaf
// failure becomes one entry with its code, JSON Pointer path, and message.
func ErrorPayload(err *veffect.Error) map[string]any {
	leaves := err.Flatten()
	issues := make([]map[string]any, 0, len(leaves))
	for _, leaf := range leaves {
		issue := map[string]any{
			"code":    leaf.Kind.String(),
			"path":    leaf.Path.Pointer(),
			"message": leaf.Message,
		}
		if leaf.Expected != "" {
			issue["expected"] = leaf.Expected
			issue["received"] = leaf.Received
		}
		issues = append(issues, issue)
	}
	return map[string]any{"issues": issues}
}
