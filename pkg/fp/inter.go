package fp

// Wrapper defines read access to a wrapped value
type Wrapper[T any] interface {
	// Value returns the wrapped value
	Value() T
}

// Fallible defines an interface for types that carry a value or an error
type Fallible[T any] interface {
	Wrapper[T]
	// Err returns the error if the operation failed
	Err() error
	// IsOk returns true if the operation was successful
	IsOk() bool
}
