// Package option provides the Option[T] value type: a value that is either
// present (Some) or absent (None). The variant is fixed at construction and
// every operation except Unwrap is total.
//
// Highlights:
// - Some/None: construct a variant explicitly
// - FromNillable/FromPtr: bring possibly-nil platform values into the algebra
// - Map/AndThen/Match: transform, chain and eliminate options
// - OrElse/UnwrapOr/Inspect: fallbacks and side-effect peeks
// - Unwrap: escape hatch that panics with fp.UnwrapOnNone on a None
package option
