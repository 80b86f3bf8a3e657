package model

import "errors"

// Domain-specific errors for model entity parsing.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrInvalidNamespacedID is returned when a namespaced ID string does
	// not match the "namespace:name" form required by the Ditto specification.
	ErrInvalidNamespacedID = errors.New("model: invalid namespaced ID")

	// ErrInvalidDefinitionID is returned when a definition ID string does
	// not match the "namespace:name:version" form.
	ErrInvalidDefinitionID = errors.New("model: invalid definition ID")
)
