package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDefinitionIDFromString(t *testing.T) {
	id, err := DefinitionIDFromString("org.eclipse.ditto:SomeModel:1.0.0")
	if err != nil {
		t.Fatalf("DefinitionIDFromString() error = %v", err)
	}
	if id.Namespace != "org.eclipse.ditto" || id.Name != "SomeModel" || id.Version != "1.0.0" {
		t.Errorf("DefinitionIDFromString() = %+v", id)
	}
	if got := id.String(); got != "org.eclipse.ditto:SomeModel:1.0.0" {
		t.Errorf("String() = %q", got)
	}
}

func TestDefinitionIDFromStringMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing version", "ns:name"},
		{"missing all", "ns"},
		{"empty version", "ns:name:"},
		{"empty name", "ns::1.0.0"},
		{"invalid namespace", "9ns:name:1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefinitionIDFromString(tt.input)
			if !errors.Is(err, ErrInvalidDefinitionID) {
				t.Errorf("DefinitionIDFromString(%q) error = %v, want ErrInvalidDefinitionID", tt.input, err)
			}
		})
	}
}

func TestDefinitionIDJSON(t *testing.T) {
	data, err := json.Marshal(NewDefinitionID("ns", "model", "2.1.0"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"ns:model:2.1.0"` {
		t.Errorf("Marshal() = %s", data)
	}

	var id DefinitionID
	if err := json.Unmarshal(data, &id); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if id.Version != "2.1.0" {
		t.Errorf("Unmarshal() version = %q, want %q", id.Version, "2.1.0")
	}
}
