package model

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// namespacePattern validates the namespace portion of an identifier.
// Namespaces are DNS-label-like: dot-separated segments, each starting
// with a letter followed by letters, digits, underscores or hyphens.
var namespacePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*(\.[a-zA-Z][a-zA-Z0-9_-]*)*$`)

// NamespacedID is the namespaced entity identifier defined by the Ditto
// specification. It uniquely identifies a Thing as "namespace:name".
//
// A NamespacedID is a plain value; copy it freely.
type NamespacedID struct {
	Namespace string
	Name      string
}

// NewNamespacedID creates a NamespacedID from its two components.
// The components are not validated; use NamespacedIDFromString for
// untrusted input.
func NewNamespacedID(namespace, name string) *NamespacedID {
	return &NamespacedID{Namespace: namespace, Name: name}
}

// NamespacedIDFromString parses the "namespace:name" form.
//
// The string is split on the first colon: the name portion may itself
// contain colons. Both portions must be non-empty and the namespace must
// be DNS-label-like (dot-separated segments starting with a letter).
//
// Returns:
//   - *NamespacedID: The parsed identifier
//   - error: ErrInvalidNamespacedID if the string is malformed
func NamespacedIDFromString(s string) (*NamespacedID, error) {
	namespace, name, found := strings.Cut(s, ":")
	if !found {
		return nil, fmt.Errorf("%w: missing ':' separator in %q", ErrInvalidNamespacedID, s)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: empty name in %q", ErrInvalidNamespacedID, s)
	}
	if !namespacePattern.MatchString(namespace) {
		return nil, fmt.Errorf("%w: invalid namespace %q", ErrInvalidNamespacedID, namespace)
	}
	return &NamespacedID{Namespace: namespace, Name: name}, nil
}

// String returns the canonical "namespace:name" form.
// For any identifier parsed by NamespacedIDFromString,
// String returns the original input.
func (n *NamespacedID) String() string {
	return n.Namespace + ":" + n.Name
}

// MarshalJSON serializes the identifier as its string form.
func (n *NamespacedID) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON parses the identifier from its JSON string form,
// applying the same validation as NamespacedIDFromString.
func (n *NamespacedID) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNamespacedID, err)
	}
	parsed, err := NamespacedIDFromString(s)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}
