package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"mailbox/internal/api"
	"mailbox/internal/config"
	"mailbox/internal/logging"
	"mailbox/internal/notify"
)

type apiServer struct {
	bind   string
	logger *slog.Logger
	daemon *Daemon

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) (*apiServer, error) {
	if cfg == nil || d == nil {
		return nil, nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil, nil
	}

	srv := &apiServer{
		bind:   bind,
		logger: logger,
		daemon: d,
	}

	token := cfg.Paths.APIToken
	mux := http.NewServeMux()
	mux.HandleFunc("/api/notifications", authMiddleware(token, srv.handleNotifications))
	mux.HandleFunc("/api/notifications/", authMiddleware(token, srv.handleNotificationItem))
	mux.HandleFunc("/api/history", authMiddleware(token, srv.handleHistory))
	mux.HandleFunc("/api/status", authMiddleware(token, srv.handleStatus))

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// addr returns the bound listen address, useful when the configured bind
// uses port zero.
func (s *apiServer) addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *apiServer) handleNotifications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		records := s.daemon.List(r.Context())
		s.writeJSON(w, http.StatusOK, api.NotificationListResponse{
			Notifications: api.FromRecords(records),
		})
	case http.MethodPost:
		payload, ok := s.decodeNotification(w, r)
		if !ok {
			return
		}
		id, _, err := s.daemon.Post(r.Context(), api.ToRecord(payload))
		if err != nil {
			s.writeError(w, statusForError(err), err.Error())
			return
		}
		s.writeJSON(w, http.StatusOK, api.PostResponse{ID: id})
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *apiServer) handleNotificationItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/notifications/")
	if id == "" || strings.Contains(id, "/") {
		s.writeError(w, http.StatusNotFound, "notification not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		payload, ok := s.decodeNotification(w, r)
		if !ok {
			return
		}
		rec := api.ToRecord(payload)
		rec.ID = id
		finalID, _, err := s.daemon.Amend(r.Context(), rec)
		if err != nil {
			s.writeError(w, statusForError(err), err.Error())
			return
		}
		s.writeJSON(w, http.StatusOK, api.PostResponse{ID: finalID})
	case http.MethodDelete:
		if !s.daemon.Dismiss(r.Context(), id) {
			s.writeError(w, http.StatusNotFound, "notification not found")
			return
		}
		s.writeJSON(w, http.StatusOK, api.DismissResponse{Removed: true})
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *apiServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	events, err := s.daemon.History(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.HistoryListResponse{
		Events: api.FromJournalEvents(events),
	})
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status := s.daemon.Status(r.Context())
	s.writeJSON(w, http.StatusOK, api.DaemonStatus{
		Running:       status.Running,
		PID:           status.PID,
		Notifications: status.Notifications,
		MaxItems:      status.MaxItems,
		JournalPath:   status.JournalPath,
		LockFilePath:  status.LockFilePath,
		SocketPath:    status.SocketPath,
		APIBind:       status.APIBind,
	})
}

func (s *apiServer) decodeNotification(w http.ResponseWriter, r *http.Request) (api.Notification, bool) {
	var payload api.Notification
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid notification payload: %v", err))
		return api.Notification{}, false
	}
	return payload, true
}

// statusForError maps record validation failures to 400 and a full mailbox
// to 409 so clients can tell a bad request from backpressure.
func statusForError(err error) int {
	var missing *notify.MissingFieldError
	var invalid *notify.InvalidKindError
	switch {
	case errors.As(err, &missing), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.Is(err, notify.ErrMailboxFull):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String(logging.FieldComponent, "api-server"))
	}
	return logging.NewNop()
}
