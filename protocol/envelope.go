package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twinforge/ditto-go/model"
)

// Envelope is the Ditto protocol JSON wrapper carried by every command,
// event, message and response.
//
// Outbound envelopes are produced by the builders in protocol/things and
// should be treated as immutable once built. Inbound envelopes are
// parsed with EnvelopeFromJSON and handed to subscriber callbacks as
// read-only views.
type Envelope struct {
	Topic     *Topic      `json:"topic"`
	Headers   *Headers    `json:"headers,omitempty"`
	Path      string      `json:"path,omitempty"`
	Value     interface{} `json:"value,omitempty"`
	Fields    string      `json:"fields,omitempty"`
	Extra     interface{} `json:"extra,omitempty"`
	Status    int         `json:"status,omitempty"`
	Revision  int64       `json:"revision,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// NewEnvelope creates an empty Envelope with empty headers.
func NewEnvelope() *Envelope {
	return &Envelope{Headers: NewHeaders()}
}

// WithTopic sets the envelope topic.
func (e *Envelope) WithTopic(topic *Topic) *Envelope {
	e.Topic = topic
	return e
}

// WithHeaders sets the envelope headers.
func (e *Envelope) WithHeaders(headers *Headers) *Envelope {
	e.Headers = headers
	return e
}

// WithPath sets the envelope path, a JSON-pointer-like reference into the
// addressed thing's resource tree.
func (e *Envelope) WithPath(path string) *Envelope {
	e.Path = path
	return e
}

// WithValue sets the envelope value. The value must be JSON-marshalable.
func (e *Envelope) WithValue(value interface{}) *Envelope {
	e.Value = value
	return e
}

// WithFields sets the field selector as defined by the Ditto protocol.
func (e *Envelope) WithFields(fields string) *Envelope {
	e.Fields = fields
	return e
}

// WithExtra sets the extra data enriching the envelope.
func (e *Envelope) WithExtra(extra interface{}) *Envelope {
	e.Extra = extra
	return e
}

// WithStatus sets the HTTP-style status code of a response envelope.
func (e *Envelope) WithStatus(status int) *Envelope {
	e.Status = status
	return e
}

// WithRevision sets the revision number of the entity the envelope
// refers to.
func (e *Envelope) WithRevision(revision int64) *Envelope {
	e.Revision = revision
	return e
}

// WithTimestamp sets the envelope timestamp.
func (e *Envelope) WithTimestamp(timestamp string) *Envelope {
	e.Timestamp = timestamp
	return e
}

// CorrelationID is a convenience accessor for the correlation-id header.
// It returns "" when the envelope carries no headers.
func (e *Envelope) CorrelationID() string {
	if e.Headers == nil {
		return ""
	}
	return e.Headers.CorrelationID()
}

// ThingID parses the addressed thing's NamespacedID out of the topic.
// It returns nil when the envelope carries no topic.
func (e *Envelope) ThingID() *model.NamespacedID {
	if e.Topic == nil {
		return nil
	}
	return model.NewNamespacedID(e.Topic.Namespace, e.Topic.EntityID)
}

// ToJSON serializes the envelope into the Ditto protocol JSON format.
func (e *Envelope) ToJSON() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	return data, nil
}

// EnvelopeFromJSON parses a received payload into an Envelope view.
//
// The topic is validated during parsing; payloads without a well-formed
// topic fail with ErrInvalidTopic, everything else malformed fails with
// ErrInvalidEnvelope.
func EnvelopeFromJSON(data []byte) (*Envelope, error) {
	e := &Envelope{}
	if err := json.Unmarshal(data, e); err != nil {
		if errors.Is(err, ErrInvalidTopic) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	if e.Topic == nil {
		return nil, fmt.Errorf("%w: missing topic", ErrInvalidEnvelope)
	}
	if e.Headers == nil {
		e.Headers = NewHeaders()
	}
	return e, nil
}
