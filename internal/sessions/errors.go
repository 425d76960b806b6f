package sessions

import "errors"

// lookup failures reported by the manager; REST handlers map both to
// the same session_not_found response
var (
	ErrSessionNotFound = errors.New("no session with that id")
	ErrSessionExpired  = errors.New("session lifetime elapsed")
)
