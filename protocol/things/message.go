package things

import (
	"fmt"

	"github.com/twinforge/ditto-go/model"
	"github.com/twinforge/ditto-go/protocol"
)

// Message mailboxes.
const (
	mailboxInbox  = "inbox"
	mailboxOutbox = "outbox"
)

// pathMessagesFormat is <target>/<mailbox>/messages/<subject>, where
// target is empty for the whole thing or "/features/<id>" for a feature.
const pathMessagesFormat = "%s/%s/messages/%s"

// Message builds a live message: an instant communication with the
// underlying device or its implementation.
//
// Messages are always exchanged on the live channel. The mailbox
// determines the direction: inbox messages travel TO the device, outbox
// messages come FROM it. A message targets the whole thing unless a
// feature is selected.
type Message struct {
	topic   *protocol.Topic
	subject string
	mailbox string
	target  string
	payload interface{}
	err     error
}

// NewMessage creates a Message bound to the given thing.
func NewMessage(thingID *model.NamespacedID) *Message {
	return &Message{
		topic: protocol.NewTopic().
			WithNamespace(thingID.Namespace).
			WithEntityID(thingID.Name).
			WithGroup(protocol.GroupThings).
			WithChannel(protocol.ChannelLive).
			WithCriterion(protocol.CriterionMessages),
	}
}

// Inbox directs the message to the device, under the given subject.
// The subject becomes the topic action.
func (m *Message) Inbox(subject string) *Message {
	m.topic.WithAction(protocol.TopicAction(subject))
	m.subject = subject
	m.mailbox = mailboxInbox
	return m
}

// Outbox marks the message as sent from the device, under the given
// subject. The subject becomes the topic action.
func (m *Message) Outbox(subject string) *Message {
	m.topic.WithAction(protocol.TopicAction(subject))
	m.subject = subject
	m.mailbox = mailboxOutbox
	return m
}

// Feature targets the message at a specific feature of the thing instead
// of the whole thing.
func (m *Message) Feature(featureID string) *Message {
	m.target = featurePath(featureID)
	return m
}

// WithPayload sets the message payload. The payload must be
// JSON-marshalable.
func (m *Message) WithPayload(payload interface{}) *Message {
	m.payload = payload
	return m
}

// Envelope finalizes the message into an immutable protocol envelope with
// path <target>/<mailbox>/messages/<subject>.
//
// Returns:
//   - *protocol.Envelope: The envelope ready for transmission
//   - error: ErrInvalidState if neither Inbox nor Outbox was called
func (m *Message) Envelope(opts ...HeaderOpt) (*protocol.Envelope, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.mailbox == "" {
		return nil, fmt.Errorf("%w: message requires Inbox or Outbox", ErrInvalidState)
	}
	return protocol.NewEnvelope().
		WithTopic(m.topic).
		WithPath(fmt.Sprintf(pathMessagesFormat, m.target, m.mailbox, m.subject)).
		WithValue(m.payload).
		WithHeaders(buildHeaders(opts)), nil
}
