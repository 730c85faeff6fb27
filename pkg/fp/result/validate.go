package result

import (
	"errors"

	"github.com/ib-77/fp3/pkg/fp"
)

// Validate lifts v into a Result through a validation predicate. This is the
// shape external validating collaborators plug into: the predicate itself
// stays opaque.
func Validate[T any](v T, validate func(in T) (valid bool, errMsg string)) Result[T] {
	return AndValidate(Ok(v), validate)
}

// AndValidate applies a validation predicate to an Ok value; an invalid
// value becomes Err with the predicate's message. An Err passes through.
func AndValidate[T any](r Result[T], validate func(in T) (valid bool, errMsg string)) Result[T] {
	if !r.ok {
		return r
	}
	if valid, errMsg := validate(r.value); !valid {
		return Err[T](errors.New(errMsg))
	}
	return r
}

// ValidateAll runs validators over r in order, each seeing the original
// input. With breakOnError set the first failure wins; otherwise all
// failures are joined into a single error.
func ValidateAll[T any](r Result[T], breakOnError bool,
	validators ...func(in Result[T]) Result[T]) Result[T] {

	if !r.ok || len(validators) == 0 {
		return r
	}

	var errs []error
	for _, validate := range validators {
		if out := validate(r); out.IsErr() {
			errs = append(errs, fp.Errors(out.Err())...)
			if breakOnError {
				break
			}
		}
	}

	if len(errs) == 0 {
		return r
	}
	return Err[T](errors.Join(errs...))
}
