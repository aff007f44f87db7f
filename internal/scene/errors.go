package scene

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the single failure class of a scene build.
// Undecodable payloads, unparsable CSV, missing columns and non-numeric
// coordinates all match it through errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError carries the reason a payload could not be turned into a scene
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Reason, e.Err)
	}
	return "malformed input: " + e.Reason
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Is reports ErrMalformedInput as a match
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func malformed(reason string, err error) *MalformedInputError {
	return &MalformedInputError{Reason: reason, Err: err}
}

func malformedf(format string, args ...interface{}) *MalformedInputError {
	return &MalformedInputError{Reason: fmt.Sprintf(format, args...)}
}

// asMalformed normalizes any parse failure into a MalformedInputError
func asMalformed(err error) *MalformedInputError {
	var m *MalformedInputError
	if errors.As(err, &m) {
		return m
	}
	return malformed("unreadable payload", err)
}
