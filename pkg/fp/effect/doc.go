// Package effect provides IO[A], a deferred effect: a wrapped computation
// that performs its work only when explicitly executed with Run, never when
// constructed or composed. Composition guarantees left-to-right execution at
// Run time, and every Run re-executes the whole chain; nothing is memoized.
//
// Highlights:
// - New/Of: wrap a computation / lift a pure value, without running anything
// - Run: the one and only executor
// - Map/AndThen: build larger deferred computations from smaller ones
// - Then/Tee: same-typed fluent chaining and deferred side-effect peeks
//
// Running an effect at most once per top-level action is the caller's
// discipline; the type cannot enforce it.
package effect
