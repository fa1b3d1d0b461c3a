package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// RejectedError is a logical failure reported by the server through the
// envelope (status=false). Message is the server's own wording and is
// shown to the user verbatim.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("server rejected request: %s", e.Message)
}

// IsRejected reports whether err carries a server-side rejection and, if
// so, returns it.
func IsRejected(err error) (*RejectedError, bool) {
	var re *RejectedError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
