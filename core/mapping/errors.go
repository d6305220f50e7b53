package mapping

import (
	"errors"
	"fmt"
)

// ErrMalformedMapping marks a segment table that is not a valid piecewise
// function: empty or overflowing segments, or overlapping source intervals.
var ErrMalformedMapping = errors.New("malformed mapping")

// Error carries the offending detail of a rejected table and unwraps to Kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func malformedf(format string, args ...any) error {
	return &Error{Kind: ErrMalformedMapping, Msg: fmt.Sprintf(format, args...)}
}
