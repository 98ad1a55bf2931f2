package main

import (
	"encoding/json"
	"strings"
	"testing"

	"mailbox/internal/ipc"
	"mailbox/internal/notify"
)

func TestKindTitle(t *testing.T) {
	cases := map[string]string{
		"warning": "Warning",
		"error":   "Error",
		"info":    "Info",
		"success": "Success",
		"":        "",
	}
	for input, expected := range cases {
		if got := kindTitle(input); got != expected {
			t.Errorf("kindTitle(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestNavigationSummary(t *testing.T) {
	tests := []struct {
		name     string
		raw      json.RawMessage
		expected string
	}{
		{
			name:     "url",
			raw:      notify.Navigation{URL: "https://example.com/release"}.Encode(),
			expected: "https://example.com/release",
		},
		{
			name:     "push with events",
			raw:      notify.Navigation{Push: "/ui/dashboard/completedTasks", Events: []string{"completedTasksShowFailed"}}.Encode(),
			expected: "/ui/dashboard/completedTasks (completedTasksShowFailed)",
		},
		{
			name:     "push only",
			raw:      notify.Navigation{Push: "/ui/settings"}.Encode(),
			expected: "/ui/settings",
		},
		{
			name:     "opaque payload passes through",
			raw:      json.RawMessage(`{"custom":true}`),
			expected: `{"custom":true}`,
		},
		{
			name:     "empty",
			raw:      nil,
			expected: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := navigationSummary(tc.raw); got != tc.expected {
				t.Fatalf("navigationSummary = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestNotificationRows(t *testing.T) {
	notifications := []ipc.Notification{
		{
			ID:         "failedTask",
			Kind:       "warning",
			Message:    "Task failed",
			Navigation: notify.Navigation{Push: "/ui/dashboard/completedTasks"}.Encode(),
		},
	}
	rows := notificationRows(notifications, false)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][1] != "Warning" {
		t.Fatalf("expected title-cased kind, got %q", rows[0][1])
	}

	colored := notificationRows(notifications, true)
	if !strings.Contains(colored[0][1], ansiYellow) {
		t.Fatalf("expected colorized kind, got %q", colored[0][1])
	}
}

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("Running", "yes", false)
	if !strings.Contains(line, "Running:") || !strings.Contains(line, "yes") {
		t.Fatalf("unexpected status line: %q", line)
	}
	if strings.Contains(line, ansiBlue) {
		t.Fatalf("expected no color codes, got %q", line)
	}
	if colored := renderStatusLine("Running", "yes", true); !strings.Contains(colored, ansiBlue) {
		t.Fatalf("expected color codes, got %q", colored)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "Kind"},
		[][]string{{"failedTask", "Warning"}},
		[]columnAlignment{alignLeft, alignLeft},
	)
	if !strings.Contains(out, "failedTask") || !strings.Contains(out, "Kind") {
		t.Fatalf("unexpected table output: %q", out)
	}
}
