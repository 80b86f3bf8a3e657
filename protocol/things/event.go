package things

import (
	"github.com/twinforge/ditto-go/model"
	"github.com/twinforge/ditto-go/protocol"
)

// Event builds a things-group event notifying about a change that already
// happened: a created, modified or deleted thing or part of one.
//
// Events share the Command selector set and follow the same rule: the
// target selector must be chosen before the change method is called.
type Event struct {
	topic       *protocol.Topic
	path        string
	payload     interface{}
	selectorSet bool
	err         error
}

// NewEvent creates an Event bound to the given thing, emitted on the twin
// channel until Live() is called.
func NewEvent(thingID *model.NamespacedID) *Event {
	return &Event{
		topic: protocol.NewTopic().
			WithNamespace(thingID.Namespace).
			WithEntityID(thingID.Name).
			WithGroup(protocol.GroupThings).
			WithChannel(protocol.ChannelTwin).
			WithCriterion(protocol.CriterionEvents),
	}
}

// Created configures the event to notify about the provided created thing.
// Created implies the thing-level selector.
func (e *Event) Created(thing *model.Thing) *Event {
	e.topic.WithAction(protocol.ActionCreated)
	e.path = pathThing
	e.selectorSet = true
	e.payload = thing
	return e
}

// Modified configures the event to notify about a modification of the
// selected part of the thing.
func (e *Event) Modified(value interface{}) *Event {
	e.requireSelector()
	e.topic.WithAction(protocol.ActionModified)
	e.payload = value
	return e
}

// Deleted configures the event to notify about a deletion of the selected
// part of the thing.
func (e *Event) Deleted() *Event {
	e.requireSelector()
	e.topic.WithAction(protocol.ActionDeleted)
	return e
}

func (e *Event) requireSelector() {
	if !e.selectorSet && e.err == nil {
		e.err = ErrNoSelector
	}
}

func (e *Event) selectPath(path string) *Event {
	e.path = path
	e.selectorSet = true
	return e
}

// Thing selects the whole thing as the event subject.
func (e *Event) Thing() *Event {
	return e.selectPath(pathThing)
}

// PolicyID selects the thing's policy ID as the event subject.
func (e *Event) PolicyID() *Event {
	return e.selectPath(pathThingPolicyID)
}

// Definition selects the thing's definition as the event subject.
func (e *Event) Definition() *Event {
	return e.selectPath(pathThingDefinition)
}

// Attributes selects all attributes of the thing as the event subject.
func (e *Event) Attributes() *Event {
	return e.selectPath(pathThingAttributes)
}

// Attribute selects a single attribute of the thing as the event subject.
func (e *Event) Attribute(path string) *Event {
	return e.selectPath(attributePath(path))
}

// Features selects all features of the thing as the event subject.
func (e *Event) Features() *Event {
	return e.selectPath(pathThingFeatures)
}

// Feature selects a single feature of the thing as the event subject.
func (e *Event) Feature(featureID string) *Event {
	return e.selectPath(featurePath(featureID))
}

// FeatureDefinition selects the definition of a feature as the event
// subject.
func (e *Event) FeatureDefinition(featureID string) *Event {
	return e.selectPath(featureDefinitionPath(featureID))
}

// FeatureProperties selects all properties of a feature as the event
// subject.
func (e *Event) FeatureProperties(featureID string) *Event {
	return e.selectPath(featurePropertiesPath(featureID))
}

// FeatureProperty selects a single property of a feature as the event
// subject.
func (e *Event) FeatureProperty(featureID, propertyPath string) *Event {
	return e.selectPath(featurePropertyPath(featureID, propertyPath))
}

// FeatureDesiredProperties selects all desired properties of a feature as
// the event subject.
func (e *Event) FeatureDesiredProperties(featureID string) *Event {
	return e.selectPath(featureDesiredPropertiesPath(featureID))
}

// FeatureDesiredProperty selects a single desired property of a feature
// as the event subject.
func (e *Event) FeatureDesiredProperty(featureID, propertyPath string) *Event {
	return e.selectPath(featureDesiredPropertyPath(featureID, propertyPath))
}

// Live emits the event on the live channel.
func (e *Event) Live() *Event {
	e.topic.WithChannel(protocol.ChannelLive)
	return e
}

// Twin emits the event on the twin channel.
func (e *Event) Twin() *Event {
	e.topic.WithChannel(protocol.ChannelTwin)
	return e
}

// Envelope finalizes the event into an immutable protocol envelope.
//
// Returns:
//   - *protocol.Envelope: The envelope ready for transmission
//   - error: ErrInvalidState (ErrNoSelector) if a change method ran
//     before a target selector was chosen
func (e *Event) Envelope(opts ...HeaderOpt) (*protocol.Envelope, error) {
	if e.err != nil {
		return nil, e.err
	}
	return protocol.NewEnvelope().
		WithTopic(e.topic).
		WithPath(e.path).
		WithValue(e.payload).
		WithHeaders(buildHeaders(opts)), nil
}
