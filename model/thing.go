package model

// Thing is the Thing entity model from the Ditto specification.
// Things are generic entities used mostly as a handle for the multiple
// Features belonging to them.
//
// The underscore-prefixed fields (revision, created, modified, metadata)
// are maintained by the Ditto service and only appear on received
// representations; they are never set by this SDK.
type Thing struct {
	ID           *NamespacedID          `json:"thingId,omitempty"`
	PolicyID     *NamespacedID          `json:"policyId,omitempty"`
	DefinitionID *DefinitionID          `json:"definition,omitempty"`
	Attributes   map[string]interface{} `json:"attributes,omitempty"`
	Features     map[string]*Feature    `json:"features,omitempty"`
	Revision     int64                  `json:"_revision,omitempty"`
	Created      string                 `json:"_created,omitempty"`
	Modified     string                 `json:"_modified,omitempty"`
	Metadata     interface{}            `json:"_metadata,omitempty"`
}

// NewThing creates an empty Thing.
func NewThing() *Thing {
	return &Thing{}
}

// WithID sets the Thing's identifier.
func (t *Thing) WithID(id *NamespacedID) *Thing {
	t.ID = id
	return t
}

// WithIDFrom sets the Thing's identifier from its "namespace:name" form.
//
// Returns:
//   - *Thing: The updated Thing
//   - error: ErrInvalidNamespacedID if the string is malformed
func (t *Thing) WithIDFrom(s string) (*Thing, error) {
	id, err := NamespacedIDFromString(s)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return t, nil
}

// WithPolicyID links the Thing to the policy holding its authorization
// information.
func (t *Thing) WithPolicyID(id *NamespacedID) *Thing {
	t.PolicyID = id
	return t
}

// WithDefinition sets the Thing's model definition.
func (t *Thing) WithDefinition(id *DefinitionID) *Thing {
	t.DefinitionID = id
	return t
}

// WithDefinitionFrom sets the Thing's model definition from its
// "namespace:name:version" form.
//
// Returns:
//   - *Thing: The updated Thing
//   - error: ErrInvalidDefinitionID if the string is malformed
func (t *Thing) WithDefinitionFrom(s string) (*Thing, error) {
	id, err := DefinitionIDFromString(s)
	if err != nil {
		return nil, err
	}
	t.DefinitionID = id
	return t, nil
}

// WithAttributes merges the provided attributes into the Thing.
// Attributes model rather static Thing-level properties.
func (t *Thing) WithAttributes(attributes map[string]interface{}) *Thing {
	if t.Attributes == nil {
		t.Attributes = make(map[string]interface{}, len(attributes))
	}
	for k, v := range attributes {
		t.Attributes[k] = v
	}
	return t
}

// WithAttribute sets a single top-level attribute of the Thing.
func (t *Thing) WithAttribute(id string, value interface{}) *Thing {
	if t.Attributes == nil {
		t.Attributes = make(map[string]interface{})
	}
	t.Attributes[id] = value
	return t
}

// WithFeatures replaces the Thing's features with the provided mapping
// from feature ID to Feature.
func (t *Thing) WithFeatures(features map[string]*Feature) *Thing {
	t.Features = features
	return t
}

// WithFeature sets a single Feature of the Thing under the given ID.
func (t *Thing) WithFeature(id string, feature *Feature) *Thing {
	if t.Features == nil {
		t.Features = make(map[string]*Feature)
	}
	t.Features[id] = feature
	return t
}
