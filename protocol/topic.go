package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TopicGroup determines whether a protocol message references the things
// group or the policies group.
type TopicGroup string

// TopicChannel specifies whether a protocol message is addressed to the
// digital twin or to the actual live device.
type TopicChannel string

// TopicCriterion contains the type of action of a protocol message within
// the addressed group and channel.
type TopicCriterion string

// TopicAction further distinguishes the purpose of a protocol message for
// the commands, events and messages criteria. Live messages use the
// message subject as a custom action.
type TopicAction string

// Topic groups.
const (
	GroupThings   TopicGroup = "things"
	GroupPolicies TopicGroup = "policies"
)

// Topic channels.
const (
	ChannelTwin TopicChannel = "twin"
	ChannelLive TopicChannel = "live"
)

// Topic criteria.
const (
	CriterionCommands TopicCriterion = "commands"
	CriterionEvents   TopicCriterion = "events"
	CriterionSearch   TopicCriterion = "search"
	CriterionMessages TopicCriterion = "messages"
	CriterionErrors   TopicCriterion = "errors"
)

// Topic actions defined by the Ditto specification. Custom TopicAction
// values may be used on the live channel (message subjects).
const (
	ActionCreate    TopicAction = "create"
	ActionCreated   TopicAction = "created"
	ActionModify    TopicAction = "modify"
	ActionModified  TopicAction = "modified"
	ActionDelete    TopicAction = "delete"
	ActionDeleted   TopicAction = "deleted"
	ActionRetrieve  TopicAction = "retrieve"
	ActionSubscribe TopicAction = "subscribe"
	ActionRequest   TopicAction = "request"
	ActionCancel    TopicAction = "cancel"
	ActionNext      TopicAction = "next"
	ActionComplete  TopicAction = "complete"
	ActionFailed    TopicAction = "failed"
)

// Topic is the Ditto protocol topic in the form
// <namespace>/<entityID>/<group>/<channel>/<criterion>/<action>.
//
// The policies group omits the channel segment; the action segment is
// optional (search topics have none).
type Topic struct {
	Namespace string
	EntityID  string
	Group     TopicGroup
	Channel   TopicChannel
	Criterion TopicCriterion
	Action    TopicAction
}

// NewTopic creates an empty Topic to be configured via the With* methods.
func NewTopic() *Topic {
	return &Topic{}
}

// WithNamespace sets the entity's namespace.
func (t *Topic) WithNamespace(namespace string) *Topic {
	t.Namespace = namespace
	return t
}

// WithEntityID sets the entity's name.
func (t *Topic) WithEntityID(entityID string) *Topic {
	t.EntityID = entityID
	return t
}

// WithGroup sets the topic group.
func (t *Topic) WithGroup(group TopicGroup) *Topic {
	t.Group = group
	return t
}

// WithChannel sets the topic channel.
func (t *Topic) WithChannel(channel TopicChannel) *Topic {
	t.Channel = channel
	return t
}

// WithCriterion sets the topic criterion.
func (t *Topic) WithCriterion(criterion TopicCriterion) *Topic {
	t.Criterion = criterion
	return t
}

// WithAction sets the topic action.
func (t *Topic) WithAction(action TopicAction) *Topic {
	t.Action = action
	return t
}

// String produces the canonical Ditto topic string. There is exactly one
// canonical form per input tuple: empty trailing segments are omitted and
// the policies group never carries a channel segment.
func (t *Topic) String() string {
	var b strings.Builder
	b.WriteString(t.Namespace)
	b.WriteByte('/')
	b.WriteString(t.EntityID)
	b.WriteByte('/')
	b.WriteString(string(t.Group))

	suffixes := make([]string, 0, 3)
	if t.Group != GroupPolicies {
		suffixes = append(suffixes, string(t.Channel))
	}
	suffixes = append(suffixes, string(t.Criterion), string(t.Action))

	for _, suffix := range suffixes {
		if suffix != "" {
			b.WriteByte('/')
			b.WriteString(suffix)
		}
	}
	return b.String()
}

// TopicFromString parses a Ditto topic string.
//
// The expected structure is
// <namespace>/<entity>/<group>[/<channel>]/<criterion>[/<action>]
// where the channel segment is present for the things group only and the
// action segment is optional. The action may contain further slashes
// (live message subjects such as "subject/with/segments").
//
// Returns:
//   - *Topic: The parsed topic
//   - error: ErrInvalidTopic if the string is malformed
func TopicFromString(s string) (*Topic, error) {
	elements := strings.SplitN(s, "/", 6)
	if len(elements) < 4 {
		return nil, fmt.Errorf("%w: too few segments in %q", ErrInvalidTopic, s)
	}
	if elements[0] == "" || elements[1] == "" {
		return nil, fmt.Errorf("%w: empty namespace or entity ID in %q", ErrInvalidTopic, s)
	}

	t := &Topic{
		Namespace: elements[0],
		EntityID:  elements[1],
		Group:     TopicGroup(elements[2]),
	}

	idx := 3
	switch t.Group {
	case GroupThings:
		channel := TopicChannel(elements[idx])
		if channel != ChannelTwin && channel != ChannelLive {
			return nil, fmt.Errorf("%w: unknown channel %q in %q", ErrInvalidTopic, channel, s)
		}
		t.Channel = channel
		idx++
	case GroupPolicies:
		// Policies topics have no channel segment.
	default:
		return nil, fmt.Errorf("%w: unknown group %q in %q", ErrInvalidTopic, elements[2], s)
	}

	if idx >= len(elements) || elements[idx] == "" {
		return nil, fmt.Errorf("%w: missing criterion in %q", ErrInvalidTopic, s)
	}
	t.Criterion = TopicCriterion(elements[idx])
	idx++

	// The action is optional; for live messages it is the free-form subject.
	if idx < len(elements) && elements[idx] != "" {
		t.Action = TopicAction(elements[idx])
	}
	return t, nil
}

// MarshalJSON serializes the topic as its canonical string form.
func (t *Topic) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses the topic from its JSON string form, applying the
// same validation as TopicFromString.
func (t *Topic) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTopic, err)
	}
	parsed, err := TopicFromString(s)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}
