package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"mailbox/internal/config"
	"mailbox/internal/journal"
	"mailbox/internal/logging"
	"mailbox/internal/notify"
)

// Daemon owns the live mailbox and enforces single-instance execution. All
// mutating operations flow through it so journaling and logging happen in
// one place regardless of whether the caller arrived over IPC or HTTP.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	mailbox *notify.Mailbox
	journal *journal.Store

	lockPath string
	lock     *flock.Flock
	api      *apiServer

	running  atomic.Bool
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// Status represents daemon runtime information.
type Status struct {
	Running       bool
	PID           int
	Notifications int
	MaxItems      int
	JournalPath   string
	LockFilePath  string
	SocketPath    string
	APIBind       string
}

// New constructs a daemon. The journal store may be nil when history is
// disabled; every other dependency is required.
func New(cfg *config.Config, mb *notify.Mailbox, store *journal.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || mb == nil {
		return nil, errors.New("daemon requires config and mailbox")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:      cfg,
		logger:   logger,
		mailbox:  mb,
		journal:  store,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		done:     make(chan struct{}),
	}, nil
}

// Start acquires the daemon lock, prunes expired journal entries, and
// brings up the HTTP API when one is configured.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	if err := d.cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("ensure directories: %w", err)
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another mailboxd instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)

	d.pruneJournal(d.ctx)

	api, err := newAPIServer(d.cfg, d, d.logger)
	if err != nil {
		_ = d.lock.Unlock()
		d.cancel()
		return fmt.Errorf("configure api server: %w", err)
	}
	if api != nil {
		if err := api.start(d.ctx); err != nil {
			_ = d.lock.Unlock()
			d.cancel()
			return err
		}
		d.api = api
	}

	d.running.Store(true)
	d.log().Info("mailbox daemon started",
		logging.String("lock", d.lockPath),
		logging.String(logging.FieldEventType, "daemon_start"))
	return nil
}

// Stop shuts down the HTTP API, releases the lock, and signals Done.
// Calling Stop more than once is safe.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.api != nil {
		d.api.stop()
		d.api = nil
	}
	if err := d.lock.Unlock(); err != nil {
		d.log().Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.running.Store(false)
	d.stopOnce.Do(func() { close(d.done) })
	d.log().Info("mailbox daemon stopped",
		logging.String(logging.FieldEventType, "daemon_stop"))
}

// Done is closed once the daemon has been stopped.
func (d *Daemon) Done() <-chan struct{} {
	return d.done
}

// Close stops the daemon and releases the journal store.
func (d *Daemon) Close() error {
	d.Stop()
	if d.journal != nil {
		return d.journal.Close()
	}
	return nil
}

// LogPath returns the daemon log file location for tailing.
func (d *Daemon) LogPath() string {
	return d.cfg.LogPath()
}

// Running reports whether the daemon has been started.
func (d *Daemon) Running() bool {
	return d.running.Load()
}

// Post validates and inserts a notification. The returned id is the final
// one (generated when the record carried none); added is false when a
// record with the same id was already present and the post was dropped.
func (d *Daemon) Post(ctx context.Context, rec notify.Record) (string, bool, error) {
	id, added, err := d.mailbox.Add(rec)
	if err != nil {
		return "", false, err
	}
	if !added {
		d.log().Debug("duplicate notification dropped",
			logging.String(logging.FieldNotificationID, id))
		return id, false, nil
	}
	rec.ID = id
	d.journalEvent(ctx, journal.ActionPosted, rec)
	d.log().Info("notification posted",
		logging.String(logging.FieldNotificationID, id),
		logging.String("kind", string(rec.Kind)),
		logging.String(logging.FieldEventType, "notification_posted"))
	return id, true, nil
}

// Dismiss removes a notification by id. Dismissing an unknown id reports
// false without error.
func (d *Daemon) Dismiss(ctx context.Context, id string) bool {
	removed := d.mailbox.Remove(id)
	if !removed {
		return false
	}
	if d.journal != nil {
		if err := d.journal.RecordDismissal(ctx, id); err != nil {
			d.log().Warn("failed to journal dismissal",
				logging.String(logging.FieldNotificationID, id),
				logging.Error(err))
		}
	}
	d.log().Info("notification dismissed",
		logging.String(logging.FieldNotificationID, id),
		logging.String(logging.FieldEventType, "notification_dismissed"))
	return true
}

// Amend replaces the payload of an existing notification in place, or
// appends the record when its id is unknown. replaced distinguishes the two.
func (d *Daemon) Amend(ctx context.Context, rec notify.Record) (string, bool, error) {
	id, replaced, err := d.mailbox.Update(rec)
	if err != nil {
		return "", false, err
	}
	rec.ID = id
	action := journal.ActionUpdated
	event := "notification_updated"
	if !replaced {
		action = journal.ActionPosted
		event = "notification_posted"
	}
	d.journalEvent(ctx, action, rec)
	d.log().Info("notification amended",
		logging.String(logging.FieldNotificationID, id),
		logging.Bool("replaced", replaced),
		logging.String(logging.FieldEventType, event))
	return id, replaced, nil
}

// List returns the mailbox contents in insertion order.
func (d *Daemon) List(_ context.Context) []notify.Record {
	return d.mailbox.ReadAll()
}

// History returns recent journal events, newest first. With history
// disabled it returns an empty result rather than an error.
func (d *Daemon) History(ctx context.Context, limit int) ([]journal.Event, error) {
	if d.journal == nil {
		return nil, nil
	}
	return d.journal.Recent(ctx, limit)
}

// Status reports daemon runtime information.
func (d *Daemon) Status(_ context.Context) Status {
	status := Status{
		Running:       d.running.Load(),
		PID:           os.Getpid(),
		Notifications: d.mailbox.Len(),
		MaxItems:      d.cfg.Mailbox.MaxItems,
		LockFilePath:  d.lockPath,
		SocketPath:    d.cfg.SocketPath(),
		APIBind:       d.cfg.Paths.APIBind,
	}
	if d.api != nil {
		if addr := d.api.addr(); addr != "" {
			status.APIBind = addr
		}
	}
	if d.journal != nil {
		status.JournalPath = d.journal.Path()
	}
	return status
}

func (d *Daemon) journalEvent(ctx context.Context, action journal.Action, rec notify.Record) {
	if d.journal == nil {
		return
	}
	if err := d.journal.Record(ctx, action, rec); err != nil {
		d.log().Warn("failed to journal notification event",
			logging.String(logging.FieldNotificationID, rec.ID),
			logging.String("action", string(action)),
			logging.Error(err))
	}
}

func (d *Daemon) pruneJournal(ctx context.Context) {
	if d.journal == nil || !d.cfg.History.Enabled {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -d.cfg.History.RetentionDays)
	pruned, err := d.journal.Prune(ctx, cutoff)
	if err != nil {
		d.log().Warn("failed to prune notification history", logging.Error(err))
		return
	}
	if pruned > 0 {
		d.log().Info("pruned notification history",
			logging.Int64("removed_count", pruned),
			logging.String(logging.FieldEventType, "history_prune"))
	}
}

func (d *Daemon) log() *slog.Logger {
	return d.logger.With(logging.String(logging.FieldComponent, "daemon"))
}
