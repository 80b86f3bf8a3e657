package model

import (
	"encoding/json"
	"errors"
	"testing"
)

// =============================================================================
// Parsing Tests
// =============================================================================

func TestNamespacedIDFromString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		namespace string
		entity    string
	}{
		{"simple", "ns:name", "ns", "name"},
		{"dotted namespace", "test.ns:test-name", "test.ns", "test-name"},
		{"colon in name", "org.eclipse.ditto:foo:bar", "org.eclipse.ditto", "foo:bar"},
		{"underscore and hyphen", "my_ns.sub-domain:device_1", "my_ns.sub-domain", "device_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NamespacedIDFromString(tt.input)
			if err != nil {
				t.Fatalf("NamespacedIDFromString(%q) error = %v", tt.input, err)
			}
			if id.Namespace != tt.namespace || id.Name != tt.entity {
				t.Errorf("NamespacedIDFromString(%q) = %q:%q, want %q:%q",
					tt.input, id.Namespace, id.Name, tt.namespace, tt.entity)
			}
		})
	}
}

func TestNamespacedIDFromStringRoundTrip(t *testing.T) {
	inputs := []string{
		"ns:name",
		"test.ns:test-name",
		"org.eclipse.ditto:fancy-thing",
		"ns:name:with:colons",
	}

	for _, input := range inputs {
		id, err := NamespacedIDFromString(input)
		if err != nil {
			t.Fatalf("NamespacedIDFromString(%q) error = %v", input, err)
		}
		if got := id.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func TestNamespacedIDFromStringMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing colon", "no-colon-here"},
		{"empty string", ""},
		{"empty namespace", ":name"},
		{"empty name", "ns:"},
		{"namespace starts with digit", "1ns:name"},
		{"namespace with slash", "my/ns:name"},
		{"namespace with empty segment", "ns..sub:name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NamespacedIDFromString(tt.input)
			if err == nil {
				t.Fatalf("NamespacedIDFromString(%q) expected error", tt.input)
			}
			if !errors.Is(err, ErrInvalidNamespacedID) {
				t.Errorf("error = %v, want ErrInvalidNamespacedID", err)
			}
		})
	}
}

// =============================================================================
// JSON Tests
// =============================================================================

func TestNamespacedIDJSON(t *testing.T) {
	id := NewNamespacedID("test.ns", "test-name")

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"test.ns:test-name"` {
		t.Errorf("Marshal() = %s, want %q", data, `"test.ns:test-name"`)
	}

	var parsed NamespacedID
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if parsed != *id {
		t.Errorf("Unmarshal() = %+v, want %+v", parsed, *id)
	}
}

func TestNamespacedIDUnmarshalInvalid(t *testing.T) {
	var id NamespacedID
	err := json.Unmarshal([]byte(`"not-a-namespaced-id"`), &id)
	if !errors.Is(err, ErrInvalidNamespacedID) {
		t.Errorf("Unmarshal() error = %v, want ErrInvalidNamespacedID", err)
	}
}
