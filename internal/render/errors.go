package render

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("invalid render options")
	// ErrEncoding is matched by every *EncodingError.
	ErrEncoding = errors.New("encoding error")
)

// EncodingError reports input that cannot be rendered as text.
type EncodingError struct {
	// Offset is the byte offset of the first offending sequence, or -1 when unknown.
	Offset int
	// Encoding names the encoding the input was expected to be in.
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	enc := e.Encoding
	if enc == "" {
		enc = "utf-8"
	}
	msg := fmt.Sprintf("input is not valid %s text", enc)
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (invalid sequence at byte offset %d)", msg, e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOptions, fmt.Sprintf(format, args...))
}
