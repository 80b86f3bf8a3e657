// Package things provides fluent builders for Ditto protocol signals of
// the things group: commands, events, live messages and responses.
//
// # Builders
//
// Every builder is bound to a thing's NamespacedID and finalized with
// Envelope(), which returns an immutable protocol.Envelope ready for
// transmission:
//
//	env, err := things.NewCommand(thingID).
//	    Feature("temperature").
//	    Twin().
//	    Modify(value).
//	    Envelope(things.WithResponseRequired(true))
//
// A correlation id is generated automatically when none is supplied via
// things.WithCorrelationID.
//
// # Builder Misuse
//
// Misuse is detected at build time, not at send time. Calling an action
// method (Create, Modify, Retrieve, Delete and the event equivalents)
// before choosing a target selector records ErrNoSelector; Envelope()
// then fails with an error satisfying errors.Is(err, ErrInvalidState).
// Responses are the only signals that carry a status code: building a
// Response without one fails the same way.
//
// Selectors, channel and action each follow last-write-wins semantics:
// configuring one of them twice keeps the second value.
package things
