// Package schema provides the schema constructors: primitive builders,
// combinators for widening and refinement, structural containers, and the
// union, intersection, and pattern resolvers.
//
// Typed schemas cross into the any-typed structural world through Of, which
// erases a Schema[T] into an AnySchema field adapter. Builders are
// copy-on-write: every chained call returns a derived schema and leaves the
// receiver usable, so a base schema can be shared between variants.
package schema
