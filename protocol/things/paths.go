package things

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/twinforge/ditto-go/protocol"
)

// Resource paths into a thing's tree, per the Ditto protocol specification.
const (
	pathThing                  = "/"
	pathThingDefinition        = "/definition"
	pathThingPolicyID          = "/policyId"
	pathThingAttributes        = "/attributes"
	pathThingFeatures          = "/features"
	pathAttributeFormat        = pathThingAttributes + "/%s"
	pathFeatureFormat          = pathThingFeatures + "/%s"
	pathFeatureDefinitionFmt   = pathFeatureFormat + "/definition"
	pathFeaturePropertiesFmt   = pathFeatureFormat + "/properties"
	pathFeaturePropertyFmt     = pathFeaturePropertiesFmt + "/%s"
	pathFeatureDesiredPropsFmt = pathFeatureFormat + "/desiredProperties"
	pathFeatureDesiredPropFmt  = pathFeatureDesiredPropsFmt + "/%s"
)

// HeaderOpt configures the headers of an envelope while it is finalized.
type HeaderOpt func(h *protocol.Headers)

// WithCorrelationID supplies the correlation id for the envelope. When
// this option is absent a random UUID is generated.
func WithCorrelationID(correlationID string) HeaderOpt {
	return func(h *protocol.Headers) {
		h.WithCorrelationID(correlationID)
	}
}

// WithResponseRequired sets the response-required header.
func WithResponseRequired(required bool) HeaderOpt {
	return func(h *protocol.Headers) {
		h.WithResponseRequired(required)
	}
}

// WithContentType sets the content-type header.
func WithContentType(contentType string) HeaderOpt {
	return func(h *protocol.Headers) {
		h.WithContentType(contentType)
	}
}

// WithTimeout sets the server-side timeout header.
func WithTimeout(timeout string) HeaderOpt {
	return func(h *protocol.Headers) {
		h.WithTimeout(timeout)
	}
}

// WithHeader sets an arbitrary header by name.
func WithHeader(name string, value interface{}) HeaderOpt {
	return func(h *protocol.Headers) {
		h.WithCustom(name, value)
	}
}

// newCorrelationID generates a random correlation id.
func newCorrelationID() string {
	return uuid.NewString()
}

// buildHeaders applies the options and guarantees a correlation id.
func buildHeaders(opts []HeaderOpt) *protocol.Headers {
	h := protocol.NewHeaders()
	for _, opt := range opts {
		opt(h)
	}
	if h.CorrelationID() == "" {
		h.WithCorrelationID(newCorrelationID())
	}
	return h
}

func attributePath(attributePath string) string {
	return fmt.Sprintf(pathAttributeFormat, attributePath)
}

func featurePath(featureID string) string {
	return fmt.Sprintf(pathFeatureFormat, featureID)
}

func featureDefinitionPath(featureID string) string {
	return fmt.Sprintf(pathFeatureDefinitionFmt, featureID)
}

func featurePropertiesPath(featureID string) string {
	return fmt.Sprintf(pathFeaturePropertiesFmt, featureID)
}

func featurePropertyPath(featureID, propertyPath string) string {
	return fmt.Sprintf(pathFeaturePropertyFmt, featureID, propertyPath)
}

func featureDesiredPropertiesPath(featureID string) string {
	return fmt.Sprintf(pathFeatureDesiredPropsFmt, featureID)
}

func featureDesiredPropertyPath(featureID, propertyPath string) string {
	return fmt.Sprintf(pathFeatureDesiredPropFmt, featureID, propertyPath)
}
