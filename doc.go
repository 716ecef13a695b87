// Package veffect is a declarative data-validation engine: a schema describes
// an expected value shape, its Validator checks an arbitrary untyped input
// against that shape, reports precisely where and why validation failed, and
// optionally transforms the value into a different representation.
//
// The package provides:
//
//   - The uniform Validator contract (Validate/Parse/SafeParse/ParseAsync),
//     all derived from a single attempt primitive
//   - A tree-shaped error model with ordered paths and aggregate child lists
//   - Two distinct absence markers (missing vs explicit null) threaded
//     consistently through every combinator
//   - JSON and YAML entry points for validating raw documents
//
// Schema constructors and the combinator vocabulary (refine, transform,
// default, optional/nullable/nullish, structural containers, unions) live in
// the schema subpackage.
package veffect
