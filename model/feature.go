package model

// Feature manages all data and functionality of a Thing that can be
// clustered in an outlined technical context.
//
// A Feature holds an optional list of definition references, a set of
// properties (the current state) and a set of desired properties (the
// target state). Builder methods mutate and return the same instance so
// calls can be chained; once a Feature has been attached to a command it
// must not be mutated further.
type Feature struct {
	Definition        []*DefinitionID        `json:"definition,omitempty"`
	Properties        map[string]interface{} `json:"properties,omitempty"`
	DesiredProperties map[string]interface{} `json:"desiredProperties,omitempty"`
}

// NewFeature creates an empty Feature.
func NewFeature() *Feature {
	return &Feature{}
}

// WithDefinition sets the Feature's definition to the provided
// DefinitionID references.
func (f *Feature) WithDefinition(ids ...*DefinitionID) *Feature {
	f.Definition = ids
	return f
}

// WithDefinitionFrom sets the Feature's definition from string
// representations in the "namespace:name:version" form.
//
// Returns:
//   - *Feature: The updated Feature
//   - error: ErrInvalidDefinitionID if any string is malformed
func (f *Feature) WithDefinitionFrom(ids ...string) (*Feature, error) {
	definition := make([]*DefinitionID, 0, len(ids))
	for _, s := range ids {
		id, err := DefinitionIDFromString(s)
		if err != nil {
			return nil, err
		}
		definition = append(definition, id)
	}
	f.Definition = definition
	return f, nil
}

// WithProperties merges the provided properties into the Feature.
// Values for existing keys are replaced; new keys are added.
func (f *Feature) WithProperties(properties map[string]interface{}) *Feature {
	if f.Properties == nil {
		f.Properties = make(map[string]interface{}, len(properties))
	}
	for k, v := range properties {
		f.Properties[k] = v
	}
	return f
}

// WithProperty sets a single top-level property of the Feature.
// The value must be JSON-marshalable.
func (f *Feature) WithProperty(id string, value interface{}) *Feature {
	if f.Properties == nil {
		f.Properties = make(map[string]interface{})
	}
	f.Properties[id] = value
	return f
}

// WithDesiredProperties merges the provided desired properties into the
// Feature. Values for existing keys are replaced; new keys are added.
func (f *Feature) WithDesiredProperties(properties map[string]interface{}) *Feature {
	if f.DesiredProperties == nil {
		f.DesiredProperties = make(map[string]interface{}, len(properties))
	}
	for k, v := range properties {
		f.DesiredProperties[k] = v
	}
	return f
}

// WithDesiredProperty sets a single top-level desired property of the
// Feature. The value must be JSON-marshalable.
func (f *Feature) WithDesiredProperty(id string, value interface{}) *Feature {
	if f.DesiredProperties == nil {
		f.DesiredProperties = make(map[string]interface{})
	}
	f.DesiredProperties[id] = value
	return f
}
