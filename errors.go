package ditto

import "errors"

// Transport-level errors surfaced by the client.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNotConnected is returned when attempting operations on a
	// disconnected client.
	ErrNotConnected = errors.New("ditto: client not connected")

	// ErrConnectionFailed is returned when the initial connection attempt
	// fails.
	ErrConnectionFailed = errors.New("ditto: connection failed")

	// ErrPublishFailed is returned when a publish operation fails.
	ErrPublishFailed = errors.New("ditto: publish failed")

	// ErrSubscribeFailed is returned when the command subscription cannot
	// be established.
	ErrSubscribeFailed = errors.New("ditto: subscribe failed")

	// ErrNoStatus is returned by Reply when the response envelope carries
	// no status code. The response topic embeds the status, so a reply
	// without one cannot be addressed.
	ErrNoStatus = errors.New("ditto: reply requires a response envelope with a status")
)
