package ditto

import (
	"fmt"
	"regexp"
)

// MQTT topics of the Eclipse Hono MQTT adapter dialect the client speaks.
//
// Inbound commands arrive on command///req/<request-id>/<name>; the
// request id is empty for one-way commands. Responses are published to
// command///res/<request-id>/<status>. Telemetry and events use the
// short endpoint names "t" and "e".
const (
	topicCommandRequests       = "command///req/#"
	topicEvents                = "e"
	topicTelemetry             = "t"
	topicCommandResponseFormat = "command///res/%s/%d"
)

// commandRequestPattern matches an inbound command topic and captures the
// request id (first group, possibly empty) and the command name.
var commandRequestPattern = regexp.MustCompile(`^command///req/([^/]*)/([^/]+)$`)

// requestIDFromTopic extracts the request id from an inbound command
// topic. It returns "" for one-way commands and for topics that do not
// match the command request grammar.
func requestIDFromTopic(topic string) string {
	groups := commandRequestPattern.FindStringSubmatch(topic)
	if groups == nil {
		return ""
	}
	return groups[1]
}

// responseTopic generates the topic for responding to the command
// identified by requestID with the given status code.
func responseTopic(requestID string, status int) string {
	return fmt.Sprintf(topicCommandResponseFormat, requestID, status)
}
