package ipc

import "mailbox/internal/api"

// Notification mirrors the HTTP API notification DTO for IPC callers.
type Notification = api.Notification

// HistoryEvent mirrors the HTTP API history DTO for IPC callers.
type HistoryEvent = api.HistoryEvent

// PingRequest checks daemon liveness.
type PingRequest struct{}

// PingResponse confirms the daemon answered.
type PingResponse struct {
	PID int `json:"pid"`
}

// StopRequest asks the daemon process to shut down.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse represents daemon runtime information.
type StatusResponse struct {
	Running       bool   `json:"running"`
	PID           int    `json:"pid"`
	Notifications int    `json:"notifications"`
	MaxItems      int    `json:"max_items"`
	JournalPath   string `json:"journal_path"`
	LockPath      string `json:"lock_path"`
	SocketPath    string `json:"socket_path"`
	APIBind       string `json:"api_bind"`
}

// PostRequest inserts a notification into the mailbox.
type PostRequest struct {
	Notification Notification `json:"notification"`
}

// PostResponse reports the final id and whether the record was inserted.
// Added is false when the id was already present and the post was dropped.
type PostResponse struct {
	ID    string `json:"id"`
	Added bool   `json:"added"`
}

// DismissRequest removes a notification by id.
type DismissRequest struct {
	ID string `json:"id"`
}

// DismissResponse reports whether a record was found and removed.
type DismissResponse struct {
	Removed bool `json:"removed"`
}

// AmendRequest replaces the payload of an existing notification.
type AmendRequest struct {
	Notification Notification `json:"notification"`
}

// AmendResponse reports the final id and whether an existing record was
// replaced in place. Replaced is false when the record was appended instead.
type AmendResponse struct {
	ID       string `json:"id"`
	Replaced bool   `json:"replaced"`
}

// ListRequest fetches the ordered mailbox snapshot.
type ListRequest struct{}

// ListResponse contains the mailbox contents in insertion order.
type ListResponse struct {
	Notifications []Notification `json:"notifications"`
}

// HistoryRequest fetches recent journal events. Limit zero means the
// server default.
type HistoryRequest struct {
	Limit int `json:"limit"`
}

// HistoryResponse contains journal events, newest first.
type HistoryResponse struct {
	Events []HistoryEvent `json:"events"`
}

// LogTailRequest fetches log lines based on offset and follow semantics.
type LogTailRequest struct {
	Offset     int64 `json:"offset"`
	Limit      int   `json:"limit"`
	Follow     bool  `json:"follow"`
	WaitMillis int   `json:"wait_millis"`
}

// LogTailResponse returns log lines and the next offset.
type LogTailResponse struct {
	Lines  []string `json:"lines"`
	Offset int64    `json:"offset"`
}
