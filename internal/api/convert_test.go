package api_test

import (
	"encoding/json"
	"testing"
	"time"

	"mailbox/internal/api"
	"mailbox/internal/journal"
	"mailbox/internal/notify"
)

func TestRecordRoundTrip(t *testing.T) {
	rec := notify.Record{
		ID:         "updateAvailable",
		Kind:       notify.KindInfo,
		Icon:       "update",
		LabelKey:   "updateAvailableLabel",
		Message:    "A new release is available",
		Navigation: json.RawMessage(`{"url":"https://example.com"}`),
	}

	wire := api.FromRecord(rec)
	if wire.Kind != "info" || wire.LabelKey != "updateAvailableLabel" {
		t.Fatalf("unexpected wire form: %#v", wire)
	}
	if string(wire.Navigation) != `{"url":"https://example.com"}` {
		t.Fatalf("expected navigation passed through, got %s", wire.Navigation)
	}

	back := api.ToRecord(wire)
	if back.ID != rec.ID || back.Kind != rec.Kind || back.Message != rec.Message {
		t.Fatalf("round trip mismatch: %#v", back)
	}
}

func TestFromJournalEvent(t *testing.T) {
	now := time.Now().UTC()
	event := journal.Event{
		ID:             7,
		OccurredAt:     now,
		Action:         journal.ActionDismissed,
		NotificationID: "failedTask",
	}
	wire := api.FromJournalEvent(event)
	if wire.Action != "dismissed" || wire.NotificationID != "failedTask" || !wire.OccurredAt.Equal(now) {
		t.Fatalf("unexpected wire event: %#v", wire)
	}

	raw, err := json.Marshal(wire)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Empty kind/message stay off the wire.
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := decoded["kind"]; present {
		t.Fatalf("expected empty kind omitted, got %s", raw)
	}
}
