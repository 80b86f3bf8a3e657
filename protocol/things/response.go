package things

import (
	"fmt"

	"github.com/twinforge/ditto-go/protocol"
)

// Response builds the reply to a received request envelope. It is the
// only signal that carries a status code; command, event and message
// builders expose no status knob, so setting a status outside a response
// context is impossible by construction.
//
// The response inherits the request's topic and path, carries the same
// correlation id and sets response-required to false.
type Response struct {
	topic         *protocol.Topic
	path          string
	correlationID string
	payload       interface{}
	status        int
	err           error
}

// ResponseTo creates a Response for the given received request envelope.
//
// Returns:
//   - *Response: The builder, inheriting topic, path and correlation id
//   - error: ErrInvalidState if the request carries no topic
func ResponseTo(request *protocol.Envelope) (*Response, error) {
	if request == nil || request.Topic == nil {
		return nil, fmt.Errorf("%w: response requires a request envelope with a topic", ErrInvalidState)
	}
	topic := *request.Topic
	return &Response{
		topic:         &topic,
		path:          request.Path,
		correlationID: request.CorrelationID(),
	}, nil
}

// WithStatus sets the HTTP-style status code describing the outcome of
// the requested operation.
func (r *Response) WithStatus(status int) *Response {
	r.status = status
	return r
}

// WithValue sets the response payload. The value must be
// JSON-marshalable.
func (r *Response) WithValue(value interface{}) *Response {
	r.payload = value
	return r
}

// Status returns the configured status code, or 0 when none was set.
func (r *Response) Status() int {
	return r.status
}

// Envelope finalizes the response into an immutable protocol envelope.
//
// Returns:
//   - *protocol.Envelope: The envelope ready to be passed to Reply
//   - error: ErrInvalidState (ErrNoStatus) if no status code was set
func (r *Response) Envelope(opts ...HeaderOpt) (*protocol.Envelope, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.status == 0 {
		return nil, ErrNoStatus
	}
	headers := protocol.NewHeaders().WithResponseRequired(false)
	if r.correlationID != "" {
		headers.WithCorrelationID(r.correlationID)
	}
	for _, opt := range opts {
		opt(headers)
	}
	if headers.CorrelationID() == "" {
		headers.WithCorrelationID(newCorrelationID())
	}
	return protocol.NewEnvelope().
		WithTopic(r.topic).
		WithPath(r.path).
		WithValue(r.payload).
		WithStatus(r.status).
		WithHeaders(headers), nil
}
