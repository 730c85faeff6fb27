// Package result provides the Result[T] value type: the outcome of a
// computation that either succeeded with a value (Ok) or failed with an
// error (Err). The variant is fixed at construction; every operation except
// Unwrap and UnwrapErr is total. Each Result carries an id and a creation
// timestamp so a value can be traced through a composition chain.
//
// Highlights:
// - Ok/Err/FromTuple: construct a Result, FromTuple from Go's (T, error)
// - Map/AndThen/Match: transform, chain and eliminate results
// - MapErr/OrElse: work the failure side
// - Inspect/InspectErr: side-effect peeks that return the receiver
// - FromOption/ToOption: bridge to and from package option
// - Validate/AndValidate/ValidateAll: lift validation predicates into results
// - Unwrap/UnwrapErr: escape hatches that panic with fp faults on the
//   wrong variant
package result
