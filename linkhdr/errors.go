package linkhdr

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEntry is returned when an entry does not start with a
	// <...> delimited target.
	ErrMalformedEntry = errors.New("malformed link entry")
	// ErrInvalidURI is returned when the text between < and > is not a
	// valid URI.
	ErrInvalidURI = errors.New("invalid URI")

	errNoOpeningBracket = errors.New("expected '<'")
	errNoClosingBracket = errors.New("missing '>'")
)

// ParseError describes the first entry of a header that failed to parse.
type ParseError struct {
	// Index of the entry in the comma separated list.
	Index int
	// Text is the entry for ErrMalformedEntry and the target for ErrInvalidURI.
	Text string
	// Err is ErrMalformedEntry or ErrInvalidURI.
	Err   error
	Cause error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("link entry %d: %v %q", e.Index, e.Err, e.Text)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
