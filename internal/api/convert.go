package api

import (
	"mailbox/internal/journal"
	"mailbox/internal/notify"
)

// FromRecord converts a mailbox record into its wire representation.
func FromRecord(rec notify.Record) Notification {
	return Notification{
		ID:         rec.ID,
		Kind:       string(rec.Kind),
		Icon:       rec.Icon,
		LabelKey:   rec.LabelKey,
		Message:    rec.Message,
		Navigation: rec.Navigation,
	}
}

// FromRecords converts an ordered mailbox snapshot.
func FromRecords(records []notify.Record) []Notification {
	out := make([]Notification, 0, len(records))
	for _, rec := range records {
		out = append(out, FromRecord(rec))
	}
	return out
}

// ToRecord converts a wire notification into a mailbox record. No
// validation happens here; the mailbox validates on insert.
func ToRecord(n Notification) notify.Record {
	return notify.Record{
		ID:         n.ID,
		Kind:       notify.Kind(n.Kind),
		Icon:       n.Icon,
		LabelKey:   n.LabelKey,
		Message:    n.Message,
		Navigation: n.Navigation,
	}
}

// FromJournalEvent converts a journal row into its wire representation.
func FromJournalEvent(event journal.Event) HistoryEvent {
	return HistoryEvent{
		ID:             event.ID,
		OccurredAt:     event.OccurredAt,
		Action:         string(event.Action),
		NotificationID: event.NotificationID,
		Kind:           event.Kind,
		Message:        event.Message,
	}
}

// FromJournalEvents converts a slice of journal rows.
func FromJournalEvents(events []journal.Event) []HistoryEvent {
	out := make([]HistoryEvent, 0, len(events))
	for _, event := range events {
		out = append(out, FromJournalEvent(event))
	}
	return out
}
