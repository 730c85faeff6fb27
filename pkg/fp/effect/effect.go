package effect

// IO wraps a single deferred computation. The wrapped thunk never changes,
// but each execution may observe external mutable state, so two Runs of the
// same IO are free to produce different results.
type IO[A any] struct {
	effect func() A
}

// New wraps f without invoking it.
func New[A any](f func() A) IO[A] {
	return IO[A]{effect: f}
}

// Of lifts a pure value into an IO that returns it on every Run.
func Of[A any](v A) IO[A] {
	return IO[A]{effect: func() A { return v }}
}

// Run executes the wrapped computation and returns its result. This is the
// only operation with externally observable effects; calling Run twice runs
// the whole chain twice.
func (io IO[A]) Run() A {
	return io.effect()
}

// Then sequences a same-typed continuation after io. Building the chain is
// pure; f itself only runs inside a later Run.
func (io IO[A]) Then(f func(A) IO[A]) IO[A] {
	return AndThen(io, f)
}

// Tee attaches a side-effect peek to io. The peek is as deferred as the
// computation it observes.
func (io IO[A]) Tee(f func(A)) IO[A] {
	return IO[A]{effect: func() A {
		v := io.effect()
		f(v)
		return v
	}}
}

// Map returns an IO that, when run, runs io and applies f to its result.
func Map[A, B any](io IO[A], f func(A) B) IO[B] {
	return IO[B]{effect: func() B {
		return f(io.effect())
	}}
}

// AndThen returns an IO that, when run, runs io, passes the result to f to
// obtain a second deferred effect, and runs that one too.
func AndThen[A, B any](io IO[A], f func(A) IO[B]) IO[B] {
	return IO[B]{effect: func() B {
		return f(io.effect()).effect()
	}}
}
