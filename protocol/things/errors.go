package things

import (
	"errors"
	"fmt"
)

// Builder-state errors. Use errors.Is() to check for these in calling code;
// both ErrNoSelector and ErrNoStatus match ErrInvalidState.
var (
	// ErrInvalidState is the base error for builder misuse detected when an
	// envelope is finalized.
	ErrInvalidState = errors.New("things: invalid builder state")

	// ErrNoSelector is returned when an action method was called before a
	// target selector (Thing, Feature, Attribute, ...) was chosen.
	ErrNoSelector = fmt.Errorf("%w: action requires a prior target selector", ErrInvalidState)

	// ErrNoStatus is returned when a response is finalized without a status
	// code. Status codes are only valid on responses.
	ErrNoStatus = fmt.Errorf("%w: response requires a status code", ErrInvalidState)
)
