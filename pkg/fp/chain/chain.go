package chain

import (
	"github.com/ib-77/fp3/pkg/fp/result"
)

type Chain[T any] struct {
	res result.Result[T]
}

func Start[T any](r result.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(result.Ok(v))
}

func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then composes functions that already return result.Result[T]
func (c Chain[T]) Then(onOk func(t T) result.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: onOk(c.res.Value())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: result.FromTuple(try(c.res.Value()))}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: result.Ok(onOk(c.res.Value()))}
}

// While repeats onOk as long as the result stays Ok and the condition holds
func (c Chain[T]) While(onOk func(t T) result.Result[T],
	while func(t T) bool) Chain[T] {

	for c.res.IsOk() && while(c.res.Value()) {
		c = c.Then(onOk)
	}
	return c
}

// Or returns the first Ok chain among the receiver and the alternative;
// with no Ok the receiver's failure wins
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And returns the first Err chain among the receiver and the required one;
// with no Err the required chain's value wins
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onOk func(T), onErr func(error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.Err())
		}
		return c
	}

	if onOk != nil {
		onOk(c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to result.Match
func (c Chain[T]) Finally(onOk func(T) T, onErr func(error) T) T {
	return result.Match(c.res, onOk, onErr)
}
