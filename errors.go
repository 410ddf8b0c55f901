package las

import (
	"errors"
	"fmt"
)

// ErrNoDataSection is returned when no data section marker line ("~A")
// terminates the header.
var ErrNoDataSection = errors.New("las: no data section marker found")

// ErrShapeMismatch is returned when the number of data values is not an
// exact multiple of the curve count.
var ErrShapeMismatch = errors.New("las: data shape mismatch")

// A LineError reports a header line that could not be handled. A line that
// fails to split inside a section does not fail the document (the section is
// kept as raw text instead); a line appearing before any section marker does.
type LineError struct {
	Line   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("las: cannot parse header line %q: %s", e.Line, e.Reason)
}

// A TokenError reports a non-numeric token in the data section.
type TokenError struct {
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("las: invalid numeric value %q in data section", e.Token)
}

// A MissingFieldError reports a header field that decoding or encoding
// depends on but that is absent or unusable.
type MissingFieldError struct {
	Section string
	Mnem    string
}

func (e *MissingFieldError) Error() string {
	if e.Mnem == "" {
		return fmt.Sprintf("las: required section %q is missing or unstructured", e.Section)
	}
	return fmt.Sprintf("las: required field %s.%s is missing or not numeric", e.Section, e.Mnem)
}
