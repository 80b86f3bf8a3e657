package model

import (
	"encoding/json"
	"testing"
)

func TestThingBuilders(t *testing.T) {
	id := NewNamespacedID("test.ns", "test-name")
	thing := NewThing().
		WithID(id).
		WithPolicyID(NewNamespacedID("test.ns", "test-policy")).
		WithAttribute("manufacturer", "ACME").
		WithFeature("thermostat", NewFeature().WithProperty("temperature", 21.5))

	if thing.ID == nil || thing.ID.String() != "test.ns:test-name" {
		t.Errorf("ID = %v", thing.ID)
	}
	if thing.PolicyID == nil || thing.PolicyID.Name != "test-policy" {
		t.Errorf("PolicyID = %v", thing.PolicyID)
	}
	if thing.Attributes["manufacturer"] != "ACME" {
		t.Errorf("Attributes = %v", thing.Attributes)
	}
	if thing.Features["thermostat"] == nil {
		t.Fatalf("Features = %v", thing.Features)
	}
}

func TestThingJSON(t *testing.T) {
	thing, err := NewThing().WithIDFrom("test.ns:test-name")
	if err != nil {
		t.Fatalf("WithIDFrom() error = %v", err)
	}
	thing.WithAttribute("location", "lab")

	data, err := json.Marshal(thing)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["thingId"] != "test.ns:test-name" {
		t.Errorf("thingId = %v", decoded["thingId"])
	}
	if _, present := decoded["features"]; present {
		t.Error("empty features should be omitted")
	}

	var parsed Thing
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal(Thing) error = %v", err)
	}
	if parsed.ID == nil || *parsed.ID != *thing.ID {
		t.Errorf("round-trip ID = %v, want %v", parsed.ID, thing.ID)
	}
}

func TestThingJSONRevision(t *testing.T) {
	var thing Thing
	payload := []byte(`{"thingId":"ns:dev","_revision":42}`)
	if err := json.Unmarshal(payload, &thing); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if thing.Revision != 42 {
		t.Errorf("Revision = %d, want 42", thing.Revision)
	}
}
