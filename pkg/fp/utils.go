package fp

import (
	"reflect"
)

// IsNil reports whether i is nil in any of the ways a Go value can be:
// a nil interface, or a nil pointer, map, slice, func or channel behind a
// non-nil interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Errors flattens err into its component errors. Joined errors unwrap to
// their parts; a plain error yields itself; nil yields an empty slice.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
