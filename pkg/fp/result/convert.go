package result

import (
	"github.com/ib-77/fp3/pkg/fp/option"
)

// FromOption turns a Some into Ok and a None into Err(err). It is the
// `okOr` bridge from the option algebra into the result algebra.
func FromOption[T any](o option.Option[T], err error) Result[T] {
	if v, some := o.Get(); some {
		return Ok(v)
	}
	return Err[T](err)
}

// ToOption drops the failure detail: Ok becomes Some, Err becomes None.
func ToOption[T any](r Result[T]) option.Option[T] {
	if r.ok {
		return option.Some(r.value)
	}
	return option.None[T]()
}
