package things

import (
	"errors"
	"testing"

	"github.com/twinforge/ditto-go/protocol"
)

func TestMessageOutbox(t *testing.T) {
	env, err := NewMessage(testThingID).
		Outbox("temperatureReading").
		WithPayload(21.5).
		Envelope()
	if err != nil {
		t.Fatalf("Envelope() error = %v", err)
	}
	if got := env.Topic.String(); got != "test.ns/test-name/things/live/messages/temperatureReading" {
		t.Errorf("topic = %q", got)
	}
	if env.Path != "/outbox/messages/temperatureReading" {
		t.Errorf("path = %q", env.Path)
	}
	if env.Value != 21.5 {
		t.Errorf("value = %v", env.Value)
	}
}

func TestMessageInboxFeature(t *testing.T) {
	env, err := NewMessage(testThingID).
		Feature("lamp").
		Inbox("toggle").
		Envelope()
	if err != nil {
		t.Fatalf("Envelope() error = %v", err)
	}
	if env.Path != "/features/lamp/inbox/messages/toggle" {
		t.Errorf("path = %q", env.Path)
	}
	if env.Topic.Channel != protocol.ChannelLive {
		t.Errorf("channel = %q, messages are always live", env.Topic.Channel)
	}
	if got := env.Topic.Action; got != "toggle" {
		t.Errorf("action = %q", got)
	}
}

func TestMessageWithoutMailbox(t *testing.T) {
	_, err := NewMessage(testThingID).WithPayload("x").Envelope()
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Envelope() error = %v, want ErrInvalidState", err)
	}
}
