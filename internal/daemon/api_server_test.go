package daemon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mailbox/internal/api"
	"mailbox/internal/notify"
	"mailbox/internal/testsupport"
)

func newTestServer(t *testing.T) (*apiServer, *Daemon) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	cfg.Paths.APIBind = ""
	store := testsupport.MustOpenJournal(t, cfg)
	d, err := New(cfg, notify.NewMailbox(cfg.Mailbox.MaxItems), store, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &apiServer{daemon: d}, d
}

func postBody(id string) string {
	return `{"id":"` + id + `","kind":"warning","icon":"warning","labelKey":"failedTaskLabel",` +
		`"message":"Task failed","navigation":{"push":"/ui/dashboard/completedTasks"}}`
}

func TestAPIServerPostAndList(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications", strings.NewReader(postBody("failedTask")))
	w := httptest.NewRecorder()
	srv.handleNotifications(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var posted api.PostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &posted); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if posted.ID != "failedTask" {
		t.Fatalf("unexpected id: %q", posted.ID)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	w = httptest.NewRecorder()
	srv.handleNotifications(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var list api.NotificationListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list.Notifications) != 1 || list.Notifications[0].ID != "failedTask" {
		t.Fatalf("unexpected listing: %+v", list.Notifications)
	}
}

func TestAPIServerPostValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"kind":"warning","icon":"warning","labelKey":"x","message":"y"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.handleNotifications(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing navigation, got %d", w.Code)
	}
}

func TestAPIServerCapacityConflict(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.APIBind = ""
	cfg.Mailbox.MaxItems = 1
	d, err := New(cfg, notify.NewMailbox(1), nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	srv := &apiServer{daemon: d}

	for i, id := range []string{"first", "second"} {
		req := httptest.NewRequest(http.MethodPost, "/api/notifications", strings.NewReader(postBody(id)))
		w := httptest.NewRecorder()
		srv.handleNotifications(w, req)
		if i == 0 && w.Code != http.StatusOK {
			t.Fatalf("expected first post to succeed, got %d", w.Code)
		}
		if i == 1 && w.Code != http.StatusConflict {
			t.Fatalf("expected 409 for full mailbox, got %d", w.Code)
		}
	}
}

func TestAPIServerDismiss(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications", strings.NewReader(postBody("failedTask")))
	srv.handleNotifications(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodDelete, "/api/notifications/failedTask", nil)
	w := httptest.NewRecorder()
	srv.handleNotificationItem(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/notifications/failedTask", nil)
	w = httptest.NewRecorder()
	srv.handleNotificationItem(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestAPIServerUpdateUsesPathID(t *testing.T) {
	srv, d := newTestServer(t)
	ctx := context.Background()

	if _, _, err := d.Post(ctx, notify.Record{
		ID:         "failedTask",
		Kind:       notify.KindWarning,
		Icon:       "warning",
		LabelKey:   "failedTaskLabel",
		Message:    "Task failed",
		Navigation: notify.Navigation{Push: "/ui/dashboard/completedTasks"}.Encode(),
	}); err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	// The body carries no id; the path segment wins.
	body := `{"kind":"warning","icon":"warning","labelKey":"failedTaskLabel",` +
		`"message":"3 tasks failed","navigation":{"push":"/ui/dashboard/completedTasks"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/failedTask", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.handleNotificationItem(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	records := d.List(ctx)
	if len(records) != 1 || records[0].Message != "3 tasks failed" {
		t.Fatalf("expected in-place update, got %+v", records)
	}
}

func TestAPIServerHistory(t *testing.T) {
	srv, d := newTestServer(t)

	if _, _, err := d.Post(context.Background(), notify.Record{
		ID:         "updateAvailable",
		Kind:       notify.KindInfo,
		Icon:       "update",
		LabelKey:   "updateAvailableLabel",
		Message:    "A new release is available",
		Navigation: notify.Navigation{URL: "https://example.com"}.Encode(),
	}); err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=5", nil)
	w := httptest.NewRecorder()
	srv.handleHistory(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp api.HistoryListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Events) != 1 || resp.Events[0].Action != "posted" {
		t.Fatalf("unexpected history: %+v", resp.Events)
	}
}

func TestAuthMiddleware(t *testing.T) {
	handler := authMiddleware("secret", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
}
