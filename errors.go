package jaslet

import (
	"errors"
	"fmt"
)

// Phase identifies the client lifecycle stage an error belongs to.
type Phase string

const (
	PhaseConnect Phase = "connect"
	PhaseExecute Phase = "execute"
	PhaseClose   Phase = "close"
)

// ErrClosed is the cause carried by futures for statements submitted after
// Close. Check it with errors.Is.
var ErrClosed = errors.New("jaslet: client is closed")

// Error is the single error type surfaced by the client. It wraps the
// underlying engine failure, so errors.Is and errors.As keep working against
// the original cause.
type Error struct {
	Phase   Phase
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("jaslet: %s: %v", e.Message, e.Err)
	}
	return "jaslet: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(phase Phase, message string, err error) *Error {
	return &Error{Phase: phase, Message: message, Err: err}
}
