package errors

// Code classifies an engine error
type Code string

// Error codes raised by the world engine
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Fatal reports whether an error with this code signals a broken generation
// invariant rather than a problem with caller input or storage.
func (c Code) Fatal() bool {
	switch c {
	case CodeAlreadyExists, CodeFailedPrecondition, CodeInternal:
		return true
	default:
		return false
	}
}
