package notify_test

import (
	"encoding/json"
	"testing"

	"mailbox/internal/notify"
)

func TestParseKind(t *testing.T) {
	for _, value := range []string{"error", "warning", "success", "info"} {
		kind, ok := notify.ParseKind(value)
		if !ok || string(kind) != value {
			t.Fatalf("ParseKind(%q) = %q, %v", value, kind, ok)
		}
	}
	if _, ok := notify.ParseKind("status"); ok {
		t.Fatal("expected status to be rejected")
	}
	if _, ok := notify.ParseKind(""); ok {
		t.Fatal("expected empty kind to be rejected")
	}
}

func TestNavigationEncode(t *testing.T) {
	raw := notify.Navigation{Push: "/dashboard", Events: []string{"showMore"}}.Encode()
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal navigation: %v", err)
	}
	if decoded["push"] != "/dashboard" {
		t.Fatalf("unexpected push value: %v", decoded["push"])
	}
	if _, present := decoded["url"]; present {
		t.Fatal("expected empty url omitted")
	}

	empty := notify.Navigation{}.Encode()
	if string(empty) != "{}" {
		t.Fatalf("expected empty navigation to encode as {}, got %s", empty)
	}
}

func TestRecordJSONContract(t *testing.T) {
	rec := notify.Record{
		ID:         "updateAvailable",
		Kind:       notify.KindInfo,
		Icon:       "update",
		LabelKey:   "updateAvailableLabel",
		Message:    "A new release is available",
		Navigation: json.RawMessage(`{"url":"https://example.com"}`),
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	for _, key := range []string{"id", "kind", "icon", "labelKey", "message", "navigation"} {
		if _, present := decoded[key]; !present {
			t.Fatalf("expected wire key %q, got %s", key, raw)
		}
	}
}
