package notify

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a notification for frontend rendering. The set of valid
// values is part of the public contract with the frontend; adding or
// renaming one is a breaking change.
type Kind string

const (
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

// Kinds lists all valid notification kinds in display order.
func Kinds() []Kind {
	return []Kind{KindError, KindWarning, KindSuccess, KindInfo}
}

// Valid reports whether the kind is one of the enumerated values.
func (k Kind) Valid() bool {
	switch k {
	case KindError, KindWarning, KindSuccess, KindInfo:
		return true
	}
	return false
}

// ParseKind converts a raw string into a Kind.
func ParseKind(value string) (Kind, bool) {
	k := Kind(value)
	return k, k.Valid()
}

// Record is a single notification destined for the frontend. Field names in
// the JSON form are the wire contract the frontend renders against.
//
// Navigation carries an opaque structured payload (a target route plus
// optional event tags, or an external URL). The mailbox validates only that
// it is present; its structure belongs to the frontend.
type Record struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"kind"`
	Icon       string          `json:"icon"`
	LabelKey   string          `json:"labelKey"`
	Message    string          `json:"message"`
	Navigation json.RawMessage `json:"navigation"`
}

// Navigation is a convenience builder for common navigation payloads.
// Producers are free to hand the mailbox any JSON value instead.
type Navigation struct {
	Push   string   `json:"push,omitempty"`
	Events []string `json:"events,omitempty"`
	URL    string   `json:"url,omitempty"`
}

// Encode renders the navigation target as an opaque payload for a Record.
func (n Navigation) Encode() json.RawMessage {
	raw, err := json.Marshal(n)
	if err != nil {
		// Navigation contains only strings and slices; Marshal cannot fail.
		return json.RawMessage("{}")
	}
	return raw
}

// MissingFieldError reports the first required record field that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("notification is missing required field %q", e.Field)
}

// InvalidKindError reports a kind value outside the enumerated set.
type InvalidKindError struct {
	Kind string
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("notification kind %q is not one of error, warning, success, info", e.Kind)
}

// Validate checks that all required fields are present and that the kind is
// a known value. Field content beyond presence is not inspected; the id may
// be empty (one is generated on insert).
func (r Record) Validate() error {
	fields := []struct {
		name    string
		present bool
	}{
		{"kind", r.Kind != ""},
		{"icon", r.Icon != ""},
		{"labelKey", r.LabelKey != ""},
		{"message", r.Message != ""},
		{"navigation", len(r.Navigation) > 0},
	}
	for _, field := range fields {
		if !field.present {
			return &MissingFieldError{Field: field.name}
		}
	}
	if !r.Kind.Valid() {
		return &InvalidKindError{Kind: string(r.Kind)}
	}
	return nil
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	clone := make(json.RawMessage, len(raw))
	copy(clone, raw)
	return clone
}
