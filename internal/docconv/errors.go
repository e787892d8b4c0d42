package docconv

import "fmt"

// DecodeError represents a failure to decode an uploaded document into text.
// This is the one real failure mode of the screening system; callers are
// expected to fall back to a filename-only placeholder profile.
type DecodeError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode %s: %s", e.Filename, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
