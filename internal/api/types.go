package api

import (
	"encoding/json"
	"time"
)

// Notification is the transport representation of a mailbox record.
type Notification struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Icon       string          `json:"icon"`
	LabelKey   string          `json:"labelKey"`
	Message    string          `json:"message"`
	Navigation json.RawMessage `json:"navigation"`
}

// HistoryEvent is the transport representation of a journal row.
type HistoryEvent struct {
	ID             int64     `json:"id"`
	OccurredAt     time.Time `json:"occurredAt"`
	Action         string    `json:"action"`
	NotificationID string    `json:"notificationId"`
	Kind           string    `json:"kind,omitempty"`
	Message        string    `json:"message,omitempty"`
}

// NotificationListResponse contains the ordered mailbox snapshot.
type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
}

// PostResponse reports the final id assigned to a posted notification.
type PostResponse struct {
	ID string `json:"id"`
}

// DismissResponse reports whether a notification was found and removed.
type DismissResponse struct {
	Removed bool `json:"removed"`
}

// HistoryListResponse contains recent journal events, newest first.
type HistoryListResponse struct {
	Events []HistoryEvent `json:"events"`
}

// DaemonStatus represents aggregated daemon runtime information.
type DaemonStatus struct {
	Running       bool   `json:"running"`
	PID           int    `json:"pid"`
	Notifications int    `json:"notifications"`
	MaxItems      int    `json:"maxItems"`
	JournalPath   string `json:"journalPath,omitempty"`
	LockFilePath  string `json:"lockFilePath"`
	SocketPath    string `json:"socketPath"`
	APIBind       string `json:"apiBind"`
}

// ErrorResponse carries an error message to HTTP clients.
type ErrorResponse struct {
	Error string `json:"error"`
}
