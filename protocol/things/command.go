package things

import (
	"github.com/twinforge/ditto-go/model"
	"github.com/twinforge/ditto-go/protocol"
)

// Command builds a things-group command signaling the execution of a
// create, modify, retrieve or delete action against a thing or a part of
// it.
//
// A command is always bound to a specific thing. The target selector
// (Thing, Attributes, Feature, FeatureProperty, ...) determines the
// envelope path; it must be chosen before the action method is called.
// Selector, channel and action each follow last-write-wins semantics.
type Command struct {
	topic       *protocol.Topic
	path        string
	payload     interface{}
	selectorSet bool
	err         error
}

// NewCommand creates a Command bound to the given thing, addressed to the
// twin channel until Live() is called.
func NewCommand(thingID *model.NamespacedID) *Command {
	return &Command{
		topic: protocol.NewTopic().
			WithNamespace(thingID.Namespace).
			WithEntityID(thingID.Name).
			WithGroup(protocol.GroupThings).
			WithChannel(protocol.ChannelTwin).
			WithCriterion(protocol.CriterionCommands),
	}
}

// Create configures the command to create the provided thing.
// Create implies the thing-level selector.
func (c *Command) Create(thing *model.Thing) *Command {
	c.topic.WithAction(protocol.ActionCreate)
	c.path = pathThing
	c.selectorSet = true
	c.payload = thing
	return c
}

// Modify configures the command to modify the selected part of the thing
// with the provided value.
func (c *Command) Modify(value interface{}) *Command {
	c.requireSelector()
	c.topic.WithAction(protocol.ActionModify)
	c.payload = value
	return c
}

// Retrieve configures the command to retrieve the selected part of the
// thing. When additional thing IDs are given, the command retrieves
// multiple things at once.
func (c *Command) Retrieve(thingIDs ...*model.NamespacedID) *Command {
	c.requireSelector()
	c.topic.WithAction(protocol.ActionRetrieve)
	if len(thingIDs) > 0 {
		ids := make([]string, len(thingIDs))
		for i, id := range thingIDs {
			ids[i] = id.String()
		}
		c.payload = map[string]interface{}{"thingIds": ids}
	}
	return c
}

// Delete configures the command to delete the selected part of the thing.
func (c *Command) Delete() *Command {
	c.requireSelector()
	c.topic.WithAction(protocol.ActionDelete)
	return c
}

// requireSelector records a state error when an action method runs before
// any target selector was chosen. The error surfaces from Envelope().
func (c *Command) requireSelector() {
	if !c.selectorSet && c.err == nil {
		c.err = ErrNoSelector
	}
}

func (c *Command) selectPath(path string) *Command {
	c.path = path
	c.selectorSet = true
	return c
}

// Thing selects the whole thing as the command target.
func (c *Command) Thing() *Command {
	return c.selectPath(pathThing)
}

// PolicyID selects the thing's policy ID as the command target.
func (c *Command) PolicyID() *Command {
	return c.selectPath(pathThingPolicyID)
}

// Definition selects the thing's definition as the command target.
func (c *Command) Definition() *Command {
	return c.selectPath(pathThingDefinition)
}

// Attributes selects all attributes of the thing as the command target.
func (c *Command) Attributes() *Command {
	return c.selectPath(pathThingAttributes)
}

// Attribute selects a single attribute of the thing as the command target.
func (c *Command) Attribute(path string) *Command {
	return c.selectPath(attributePath(path))
}

// Features selects all features of the thing as the command target.
func (c *Command) Features() *Command {
	return c.selectPath(pathThingFeatures)
}

// Feature selects a single feature of the thing as the command target.
func (c *Command) Feature(featureID string) *Command {
	return c.selectPath(featurePath(featureID))
}

// FeatureDefinition selects the definition of a feature as the command
// target.
func (c *Command) FeatureDefinition(featureID string) *Command {
	return c.selectPath(featureDefinitionPath(featureID))
}

// FeatureProperties selects all properties of a feature as the command
// target.
func (c *Command) FeatureProperties(featureID string) *Command {
	return c.selectPath(featurePropertiesPath(featureID))
}

// FeatureProperty selects a single property of a feature as the command
// target.
func (c *Command) FeatureProperty(featureID, propertyPath string) *Command {
	return c.selectPath(featurePropertyPath(featureID, propertyPath))
}

// FeatureDesiredProperties selects all desired properties of a feature as
// the command target.
func (c *Command) FeatureDesiredProperties(featureID string) *Command {
	return c.selectPath(featureDesiredPropertiesPath(featureID))
}

// FeatureDesiredProperty selects a single desired property of a feature
// as the command target.
func (c *Command) FeatureDesiredProperty(featureID, propertyPath string) *Command {
	return c.selectPath(featureDesiredPropertyPath(featureID, propertyPath))
}

// Live addresses the command to the live channel (the actual device).
func (c *Command) Live() *Command {
	c.topic.WithChannel(protocol.ChannelLive)
	return c
}

// Twin addresses the command to the twin channel (the digital twin).
func (c *Command) Twin() *Command {
	c.topic.WithChannel(protocol.ChannelTwin)
	return c
}

// Envelope finalizes the command into an immutable protocol envelope.
//
// A correlation id is generated when none was supplied via
// WithCorrelationID.
//
// Returns:
//   - *protocol.Envelope: The envelope ready for transmission
//   - error: ErrInvalidState (ErrNoSelector) if an action method ran
//     before a target selector was chosen
func (c *Command) Envelope(opts ...HeaderOpt) (*protocol.Envelope, error) {
	if c.err != nil {
		return nil, c.err
	}
	return protocol.NewEnvelope().
		WithTopic(c.topic).
		WithPath(c.path).
		WithValue(c.payload).
		WithHeaders(buildHeaders(opts)), nil
}
