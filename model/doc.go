// Package model provides the Ditto Things data model entities.
//
// This package contains:
//   - NamespacedID: the namespaced entity identifier ("namespace:name")
//   - DefinitionID: a model definition reference ("namespace:name:version")
//   - Feature: a clustered set of properties and desired properties
//   - Thing: the digital-twin entity holding attributes and features
//
// # Identifier Validation
//
// Identifier strings are validated at parse time, not at send time.
// NamespacedIDFromString and DefinitionIDFromString fail fast with
// ErrInvalidNamespacedID / ErrInvalidDefinitionID for malformed input,
// so a bad identifier never reaches the wire.
//
// # JSON Representation
//
// All entities marshal to the Ditto JSON format directly. Identifiers
// serialize as their string form; Feature and Thing omit empty
// collections, matching the Ditto specification.
//
// # Usage
//
//	thingID, err := model.NamespacedIDFromString("test.ns:test-name")
//	feature := model.NewFeature().
//	    WithProperty("on", true).
//	    WithDesiredProperty("on", false)
package model
