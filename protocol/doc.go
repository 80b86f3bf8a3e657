// Package protocol implements the Ditto protocol envelope and topic model.
//
// This package contains:
//   - Topic: the hierarchical protocol address
//     (namespace/entity/group/channel/criterion/action)
//   - Headers: the Ditto protocol header bag (correlation-id,
//     response-required, content-type and friends, plus custom headers)
//   - Envelope: the JSON wrapper carrying topic, path, value, headers
//     and the optional response status
//
// # Wire Format
//
// An Envelope serializes to the Ditto protocol JSON envelope:
//
//	{
//	  "topic": "test.ns/test-name/things/twin/commands/modify",
//	  "headers": {"correlation-id": "...", "response-required": true},
//	  "path": "/features/myFeatureID",
//	  "value": {"properties": {"myProperty": "myValue"}}
//	}
//
// Unset fields are omitted. Parsing is strict about the topic: a
// malformed topic string fails with ErrInvalidTopic at parse time.
//
// # Canonical Topic Form
//
// Topic.String produces exactly one canonical string per input tuple.
// The policies group carries no channel segment; the things group always
// does. TopicFromString accepts only strings in canonical form.
package protocol
