// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of result.Result[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - While: repeat a step while a condition holds
// - Ensure: trigger side effects without changing the result
// - Or/And: combine alternative and required chains
// - Finally: reduce to a concrete value via handlers
//
// An Err short-circuits every later step. Chain is ideal where lightweight
// synchronous chaining improves readability over nested Match calls.
package chain
