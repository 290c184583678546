package domain

import "errors"

// ErrStaleTransition is returned when a transition is applied to a session
// whose current position does not match the transition's origin.
var ErrStaleTransition = errors.New("transition does not originate from the current position")

// ErrSessionNotFound is returned when a session ID cannot be found in a registry.
var ErrSessionNotFound = errors.New("session not found")
