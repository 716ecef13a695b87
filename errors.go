package veffect

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// Kind identifies the variant of a validation failure. It is a closed set;
// code that needs to special-case a kind matches on Kind, never on message
// text or a free-form tag.
type Kind uint8

const (
	KindType Kind = iota // wrong kind of value; carries Expected/Received labels
	KindString
	KindNumber
	KindBoolean
	KindDate
	KindBigInt
	KindObject
	KindArray
	KindTuple
	KindRecord
	KindMap
	KindSet
	KindUnion
	KindIntersection
	KindRefinement
	KindCustom
)

var kindCodes = [...]string{
	KindType:         "invalid_type",
	KindString:       "string_error",
	KindNumber:       "number_error",
	KindBoolean:      "boolean_error",
	KindDate:         "date_error",
	KindBigInt:       "bigint_error",
	KindObject:       "object_error",
	KindArray:        "array_error",
	KindTuple:        "tuple_error",
	KindRecord:       "record_error",
	KindMap:          "map_error",
	KindSet:          "set_error",
	KindUnion:        "union_error",
	KindIntersection: "intersection_error",
	KindRefinement:   "refinement_error",
	KindCustom:       "custom_error",
}

// String returns the stable snake_case code for the kind, used in payloads.
func (k Kind) String() string {
	if int(k) < len(kindCodes) {
		return kindCodes[k]
	}
	return "custom_error"
}

// Aggregate reports whether errors of this kind may carry child errors.
func (k Kind) Aggregate() bool {
	switch k {
	case KindObject, KindArray, KindTuple, KindRecord, KindMap, KindSet, KindUnion, KindIntersection:
		return true
	}
	return false
}

// Error is a single validation failure. Every Error carries a Message and the
// Path to the failing location; aggregate kinds additionally carry the full,
// unreduced list of child failures discovered in the same attempt.
type Error struct {
	Kind    Kind
	Message string
	Path    Path
	// Expected and Received label the wanted vs observed kind of value.
	// They are set for KindType errors only.
	Expected string
	Received string
	Children []*Error
}

// NewError builds a leaf validation error.
func NewError(kind Kind, path Path, msg string) *Error {
	return &Error{Kind: kind, Path: path, Message: msg}
}

// TypeError builds a wrong-kind error with expected/received labels.
func TypeError(path Path, expected, received string) *Error {
	return &Error{
		Kind:     KindType,
		Path:     path,
		Message:  i18n.T("invalid_type", map[string]string{"expected": expected, "received": received}),
		Expected: expected,
		Received: received,
	}
}

// AggregateError builds a composite error wrapping one or more child failures.
// Child order is preserved as issued.
func AggregateError(kind Kind, path Path, msg string, children []*Error) *Error {
	return &Error{Kind: kind, Path: path, Message: msg, Children: children}
}

// Error summarizes the first few leaf failures.
func (e *Error) Error() string {
	leaves := e.Flatten()
	if len(leaves) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(leaves)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s: %s", leaves[i].Kind, leaves[i].Path.Pointer(), leaves[i].Message)
	}
	if len(leaves) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(leaves))
	}
	return b.String()
}

// Flatten returns every leaf failure beneath e in issuance order. An error
// without children is its own single leaf.
func (e *Error) Flatten() []*Error {
	if e == nil {
		return nil
	}
	if len(e.Children) == 0 {
		return []*Error{e}
	}
	var out []*Error
	for _, c := range e.Children {
		out = append(out, c.Flatten()...)
	}
	return out
}

// AsValidationError extracts a *Error from an error chain using errors.As.
func AsValidationError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ReceivedLabel names the observed kind of an input value for type errors.
func ReceivedLabel(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case absentValue:
		return "missing"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case *big.Int:
		return "bigint"
	case time.Time:
		return "date"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if n, ok := v.(interface{ Int64() (int64, error) }); ok {
		_ = n // json.Number and friends
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
