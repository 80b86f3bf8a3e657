package protocol

import (
	"encoding/json"
	"errors"
	"testing"
)

// =============================================================================
// Parsing Tests
// =============================================================================

func TestTopicFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Topic
	}{
		{
			name:  "twin command",
			input: "my.ns/my.dev/things/twin/commands/modify",
			want: Topic{
				Namespace: "my.ns",
				EntityID:  "my.dev",
				Group:     GroupThings,
				Channel:   ChannelTwin,
				Criterion: CriterionCommands,
				Action:    ActionModify,
			},
		},
		{
			name:  "live message",
			input: "my.ns/my.dev/things/live/messages/install",
			want: Topic{
				Namespace: "my.ns",
				EntityID:  "my.dev",
				Group:     GroupThings,
				Channel:   ChannelLive,
				Criterion: CriterionMessages,
				Action:    "install",
			},
		},
		{
			name:  "policy command has no channel",
			input: "my.ns/my.policy/policies/commands/modify",
			want: Topic{
				Namespace: "my.ns",
				EntityID:  "my.policy",
				Group:     GroupPolicies,
				Criterion: CriterionCommands,
				Action:    ActionModify,
			},
		},
		{
			name:  "search has no action",
			input: "_/_/things/twin/search",
			want: Topic{
				Namespace: "_",
				EntityID:  "_",
				Group:     GroupThings,
				Channel:   ChannelTwin,
				Criterion: CriterionSearch,
			},
		},
		{
			name:  "message subject with slashes",
			input: "my.ns/my.dev/things/live/messages/subject/with/segments",
			want: Topic{
				Namespace: "my.ns",
				EntityID:  "my.dev",
				Group:     GroupThings,
				Channel:   ChannelLive,
				Criterion: CriterionMessages,
				Action:    "subject/with/segments",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, err := TopicFromString(tt.input)
			if err != nil {
				t.Fatalf("TopicFromString(%q) error = %v", tt.input, err)
			}
			if *topic != tt.want {
				t.Errorf("TopicFromString(%q) = %+v, want %+v", tt.input, *topic, tt.want)
			}
		})
	}
}

func TestTopicFromStringMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few segments", "my.ns/my.dev/things"},
		{"empty namespace", "/my.dev/things/twin/commands/modify"},
		{"empty entity", "my.ns//things/twin/commands/modify"},
		{"unknown group", "my.ns/my.dev/gadgets/twin/commands/modify"},
		{"unknown channel", "my.ns/my.dev/things/ghost/commands/modify"},
		{"things without channel", "my.ns/my.dev/things/commands/modify"},
		{"policy missing criterion", "my.ns/my.policy/policies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TopicFromString(tt.input)
			if !errors.Is(err, ErrInvalidTopic) {
				t.Errorf("TopicFromString(%q) error = %v, want ErrInvalidTopic", tt.input, err)
			}
		})
	}
}

// =============================================================================
// Canonical Form Tests
// =============================================================================

func TestTopicStringRoundTrip(t *testing.T) {
	inputs := []string{
		"my.ns/my.dev/things/twin/commands/modify",
		"my.ns/my.dev/things/live/messages/install",
		"my.ns/my.policy/policies/commands/modify",
		"_/_/things/twin/search",
	}

	for _, input := range inputs {
		topic, err := TopicFromString(input)
		if err != nil {
			t.Fatalf("TopicFromString(%q) error = %v", input, err)
		}
		if got := topic.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func TestTopicStringPoliciesIgnoresChannel(t *testing.T) {
	topic := NewTopic().
		WithNamespace("my.ns").
		WithEntityID("my.policy").
		WithGroup(GroupPolicies).
		WithChannel(ChannelTwin).
		WithCriterion(CriterionCommands).
		WithAction(ActionDelete)

	want := "my.ns/my.policy/policies/commands/delete"
	if got := topic.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTopicJSON(t *testing.T) {
	topic := NewTopic().
		WithNamespace("test.ns").
		WithEntityID("test-name").
		WithGroup(GroupThings).
		WithChannel(ChannelTwin).
		WithCriterion(CriterionEvents).
		WithAction(ActionModified)

	data, err := json.Marshal(topic)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"test.ns/test-name/things/twin/events/modified"` {
		t.Errorf("Marshal() = %s", data)
	}

	var parsed Topic
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if parsed != *topic {
		t.Errorf("Unmarshal() = %+v, want %+v", parsed, *topic)
	}
}
