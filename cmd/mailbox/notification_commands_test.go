package main

import (
	"encoding/json"
	"testing"
)

func TestNotificationFlagsBuild(t *testing.T) {
	flags := &notificationFlags{
		id:       " failedTask ",
		kind:     "Warning",
		icon:     "warning",
		labelKey: "failedTaskLabel",
		message:  "Task failed",
		push:     "/ui/dashboard/completedTasks",
		events:   []string{"completedTasksShowFailed"},
	}
	n, err := flags.build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if n.ID != "failedTask" {
		t.Fatalf("expected trimmed id, got %q", n.ID)
	}
	if n.Kind != "warning" {
		t.Fatalf("expected lowercased kind, got %q", n.Kind)
	}

	var nav struct {
		Push   string   `json:"push"`
		Events []string `json:"events"`
	}
	if err := json.Unmarshal(n.Navigation, &nav); err != nil {
		t.Fatalf("decode navigation: %v", err)
	}
	if nav.Push != "/ui/dashboard/completedTasks" || len(nav.Events) != 1 {
		t.Fatalf("unexpected navigation: %+v", nav)
	}
}

func TestNotificationFlagsRawNavigation(t *testing.T) {
	flags := &notificationFlags{
		kind:    "info",
		navJSON: `{"custom":true}`,
		// Raw JSON wins over the structured flags.
		push: "/ui/ignored",
	}
	n, err := flags.build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if string(n.Navigation) != `{"custom":true}` {
		t.Fatalf("expected raw navigation, got %s", n.Navigation)
	}
}

func TestNotificationFlagsInvalidNavigation(t *testing.T) {
	flags := &notificationFlags{navJSON: "{not json"}
	if _, err := flags.build(); err == nil {
		t.Fatal("expected error for invalid navigation JSON")
	}
}

func TestNotificationFlagsEmptyNavigation(t *testing.T) {
	flags := &notificationFlags{kind: "info"}
	n, err := flags.build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if n.Navigation != nil {
		t.Fatalf("expected nil navigation, got %s", n.Navigation)
	}
}
