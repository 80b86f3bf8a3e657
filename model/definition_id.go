package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefinitionID references a model definition in the form
// "namespace:name:version". It declares a Thing's model and the models a
// Feature implements via its properties.
type DefinitionID struct {
	Namespace string
	Name      string
	Version   string
}

// NewDefinitionID creates a DefinitionID from its three components.
// The components are not validated; use DefinitionIDFromString for
// untrusted input.
func NewDefinitionID(namespace, name, version string) *DefinitionID {
	return &DefinitionID{Namespace: namespace, Name: name, Version: version}
}

// DefinitionIDFromString parses the "namespace:name:version" form.
//
// The string is split on the first two colons; the version portion may
// itself contain colons. All three portions must be non-empty and the
// namespace must be DNS-label-like.
//
// Returns:
//   - *DefinitionID: The parsed identifier
//   - error: ErrInvalidDefinitionID if the string is malformed
func DefinitionIDFromString(s string) (*DefinitionID, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected namespace:name:version in %q", ErrInvalidDefinitionID, s)
	}
	if parts[1] == "" || parts[2] == "" {
		return nil, fmt.Errorf("%w: empty name or version in %q", ErrInvalidDefinitionID, s)
	}
	if !namespacePattern.MatchString(parts[0]) {
		return nil, fmt.Errorf("%w: invalid namespace %q", ErrInvalidDefinitionID, parts[0])
	}
	return &DefinitionID{Namespace: parts[0], Name: parts[1], Version: parts[2]}, nil
}

// String returns the canonical "namespace:name:version" form.
func (d *DefinitionID) String() string {
	return d.Namespace + ":" + d.Name + ":" + d.Version
}

// MarshalJSON serializes the identifier as its string form.
func (d *DefinitionID) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses the identifier from its JSON string form,
// applying the same validation as DefinitionIDFromString.
func (d *DefinitionID) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinitionID, err)
	}
	parsed, err := DefinitionIDFromString(s)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
