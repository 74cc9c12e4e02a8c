package frame

// Error is the outcome of a frame walking operation. The numeric values are
// part of the report format and must not be reordered.
type Error uint8

const (
	Success         Error = iota // no error
	ErrUnknown                   // unknown error
	ErrNoFrame                   // no more frames are available
	ErrBadFrame                  // the frame chain is corrupted
	ErrNotSupported              // the operation is not supported
	ErrInvalid                   // invalid argument
	ErrInternal                  // internal error
	ErrBadRegister               // invalid register

	numErrors
)

var errorStrings = [...]string{
	Success:         "No error",
	ErrUnknown:      "Unknown error",
	ErrNoFrame:      "No frames are available",
	ErrBadFrame:     "Corrupted frame",
	ErrNotSupported: "Operation not supported",
	ErrInvalid:      "Invalid argument",
	ErrInternal:     "Internal error",
	ErrBadRegister:  "Invalid register",
}

// errorStrings must describe every code: this fails to compile when the two
// lengths differ.
var _ = [1]struct{}{}[len(errorStrings)-int(numErrors)]

// Error returns the description of e. It never allocates.
func (e Error) Error() string {
	if e < numErrors {
		return errorStrings[e]
	}
	// Only reachable through a conversion from an unchecked integer.
	return errorStrings[ErrUnknown]
}

// Valid reports whether e is one of the defined codes.
func (e Error) Valid() bool {
	return e < numErrors
}

// Code returns the Error carried by err: Success for nil, ErrUnknown for
// errors produced outside of this package.
func Code(err error) Error {
	switch e := err.(type) {
	case nil:
		return Success
	case Error:
		return e
	default:
		return ErrUnknown
	}
}

// result converts a code into the value returned by the public API, where
// success is represented by a nil error.
func result(e Error) error {
	if e == Success {
		return nil
	}
	return e
}
