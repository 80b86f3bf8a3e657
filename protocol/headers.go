package protocol

import "encoding/json"

// Header names defined by the Ditto protocol specification.
const (
	HeaderContentType      = "content-type"
	HeaderCorrelationID    = "correlation-id"
	HeaderDittoOriginator  = "ditto-originator"
	HeaderIfMatch          = "If-Match"
	HeaderIfNoneMatch      = "If-None-Match"
	HeaderResponseRequired = "response-required"
	HeaderRequestedAcks    = "requested-acks"
	HeaderDittoWeakAck     = "ditto-weak-ack"
	HeaderTimeout          = "timeout"
	HeaderSchemaVersion    = "version"
	HeaderPutMetadata      = "put-metadata"
)

// Headers is the Ditto protocol header bag: the well-known headers above
// plus any transport- or application-specific custom headers.
//
// Headers marshals to a flat JSON object. The typed accessors return the
// zero value when a header is absent; use Has for presence checks.
type Headers struct {
	values map[string]interface{}
}

// NewHeaders creates an empty Headers instance.
func NewHeaders() *Headers {
	return &Headers{values: make(map[string]interface{})}
}

// ensure lazily initializes the backing map so that the zero value and
// unmarshaled instances behave alike.
func (h *Headers) ensure() {
	if h.values == nil {
		h.values = make(map[string]interface{})
	}
}

// Has reports whether the named header is present.
func (h *Headers) Has(name string) bool {
	_, ok := h.values[name]
	return ok
}

// Get returns the raw value of the named header, or nil when absent.
func (h *Headers) Get(name string) interface{} {
	return h.values[name]
}

// WithCustom sets an arbitrary header. Application-specific headers should
// carry a prefix that does not collide with Ditto or HTTP header names.
func (h *Headers) WithCustom(name string, value interface{}) *Headers {
	h.ensure()
	h.values[name] = value
	return h
}

// CorrelationID returns the correlation-id header, or "" when absent.
// The correlation id links a reply message with its requesting message.
func (h *Headers) CorrelationID() string {
	s, _ := h.values[HeaderCorrelationID].(string)
	return s
}

// WithCorrelationID sets the correlation-id header.
func (h *Headers) WithCorrelationID(correlationID string) *Headers {
	return h.WithCustom(HeaderCorrelationID, correlationID)
}

// ContentType returns the content-type header, or "" when absent.
func (h *Headers) ContentType() string {
	s, _ := h.values[HeaderContentType].(string)
	return s
}

// WithContentType sets the content-type header describing the envelope value.
func (h *Headers) WithContentType(contentType string) *Headers {
	return h.WithCustom(HeaderContentType, contentType)
}

// ResponseRequired returns the response-required header. Absence is
// interpreted as true by the Ditto service, so absent defaults to true here.
func (h *Headers) ResponseRequired() bool {
	b, ok := h.values[HeaderResponseRequired].(bool)
	if !ok {
		return true
	}
	return b
}

// WithResponseRequired sets whether a response to a command is required.
func (h *Headers) WithResponseRequired(required bool) *Headers {
	return h.WithCustom(HeaderResponseRequired, required)
}

// DittoOriginator returns the ditto-originator header, or "" when absent.
func (h *Headers) DittoOriginator() string {
	s, _ := h.values[HeaderDittoOriginator].(string)
	return s
}

// WithDittoOriginator sets the first authorization subject of the command
// that caused this message. Normally set by the Ditto service.
func (h *Headers) WithDittoOriginator(originator string) *Headers {
	return h.WithCustom(HeaderDittoOriginator, originator)
}

// IfMatch returns the If-Match header, or "" when absent.
func (h *Headers) IfMatch() string {
	s, _ := h.values[HeaderIfMatch].(string)
	return s
}

// WithIfMatch sets the If-Match conditional request header (RFC 7232).
func (h *Headers) WithIfMatch(value string) *Headers {
	return h.WithCustom(HeaderIfMatch, value)
}

// IfNoneMatch returns the If-None-Match header, or "" when absent.
func (h *Headers) IfNoneMatch() string {
	s, _ := h.values[HeaderIfNoneMatch].(string)
	return s
}

// WithIfNoneMatch sets the If-None-Match conditional request header (RFC 7232).
func (h *Headers) WithIfNoneMatch(value string) *Headers {
	return h.WithCustom(HeaderIfNoneMatch, value)
}

// RequestedAcks returns the requested-acks header, or nil when absent.
func (h *Headers) RequestedAcks() []string {
	switch v := h.values[HeaderRequestedAcks].(type) {
	case []string:
		return v
	case []interface{}:
		acks := make([]string, 0, len(v))
		for _, a := range v {
			if s, ok := a.(string); ok {
				acks = append(acks, s)
			}
		}
		return acks
	default:
		return nil
	}
}

// WithRequestedAcks sets which acknowledgements are requested for a
// command processed by Ditto.
func (h *Headers) WithRequestedAcks(acks ...string) *Headers {
	return h.WithCustom(HeaderRequestedAcks, acks)
}

// DittoWeakAck returns the ditto-weak-ack header; absent defaults to false.
func (h *Headers) DittoWeakAck() bool {
	b, _ := h.values[HeaderDittoWeakAck].(bool)
	return b
}

// WithDittoWeakAck marks weak acknowledgements issued by Ditto.
func (h *Headers) WithDittoWeakAck(weakAck bool) *Headers {
	return h.WithCustom(HeaderDittoWeakAck, weakAck)
}

// Timeout returns the timeout header, or "" when absent.
func (h *Headers) Timeout() string {
	s, _ := h.values[HeaderTimeout].(string)
	return s
}

// WithTimeout sets the server-side timeout value, e.g. applied while
// waiting for requested acknowledgements.
func (h *Headers) WithTimeout(timeout string) *Headers {
	return h.WithCustom(HeaderTimeout, timeout)
}

// Version returns the schema version header, or "" when absent.
func (h *Headers) Version() string {
	s, _ := h.values[HeaderSchemaVersion].(string)
	return s
}

// WithVersion sets the schema version of the payload.
func (h *Headers) WithVersion(version string) *Headers {
	return h.WithCustom(HeaderSchemaVersion, version)
}

// PutMetadata returns the put-metadata header, or nil when absent.
func (h *Headers) PutMetadata() []interface{} {
	v, _ := h.values[HeaderPutMetadata].([]interface{})
	return v
}

// WithPutMetadata determines which Ditto metadata is stored in the thing.
func (h *Headers) WithPutMetadata(metadata ...interface{}) *Headers {
	return h.WithCustom(HeaderPutMetadata, metadata)
}

// MarshalJSON serializes the headers as a flat JSON object.
func (h *Headers) MarshalJSON() ([]byte, error) {
	if h.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(h.values)
}

// UnmarshalJSON parses the headers from a flat JSON object, preserving
// unknown headers as custom values.
func (h *Headers) UnmarshalJSON(data []byte) error {
	values := make(map[string]interface{})
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	h.values = values
	return nil
}
