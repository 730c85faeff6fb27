package fp

// Fault identifies a violated precondition of an unwrap escape hatch.
// Faults are raised by panic, never returned: they signal a programming
// defect, not a recoverable runtime condition.
type Fault string

const (
	UnwrapOnNone Fault = "Unwrap called on None"
	UnwrapOnErr  Fault = "Unwrap called on Err"
	UnwrapOnOk   Fault = "UnwrapErr called on Ok"
)

func (f Fault) Error() string {
	return "fp: " + string(f)
}
