package protocol

import "errors"

// Domain-specific errors for protocol parsing.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrInvalidTopic is returned when a topic string does not follow the
	// <namespace>/<entity>/<group>/<channel>/<criterion>/<action> grammar.
	ErrInvalidTopic = errors.New("protocol: invalid topic")

	// ErrInvalidEnvelope is returned when a received payload cannot be
	// parsed as a Ditto protocol envelope.
	ErrInvalidEnvelope = errors.New("protocol: invalid envelope")
)
