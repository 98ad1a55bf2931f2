package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mailbox/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !cfg.History.Enabled || cfg.History.RetentionDays != 30 {
		t.Fatalf("unexpected history defaults: %+v", cfg.History)
	}
	if cfg.Mailbox.MaxItems != 0 {
		t.Fatalf("expected unbounded mailbox by default, got %d", cfg.Mailbox.MaxItems)
	}
}

func TestLoadParsesSections(t *testing.T) {
	base := t.TempDir()
	path := writeConfig(t, `
[paths]
data_dir = "`+filepath.Join(base, "data")+`"
log_dir = "`+filepath.Join(base, "logs")+`"
api_bind = "127.0.0.1:0"

[mailbox]
max_items = 25

[history]
enabled = false

[logging]
format = "json"
level = "debug"
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Mailbox.MaxItems != 25 {
		t.Fatalf("expected max_items 25, got %d", cfg.Mailbox.MaxItems)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.Paths.DataDir != filepath.Join(base, "data") {
		t.Fatalf("unexpected data dir: %s", cfg.Paths.DataDir)
	}
	if got := cfg.SocketPath(); got != filepath.Join(base, "data", "mailboxd.sock") {
		t.Fatalf("unexpected socket path: %s", got)
	}
	if got := cfg.JournalPath(); got != filepath.Join(base, "data", "history.db") {
		t.Fatalf("unexpected journal path: %s", got)
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	path := writeConfig(t, `
[paths]
data_dir = "~/mailbox-data"
`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if cfg.Paths.DataDir != filepath.Join(home, "mailbox-data") {
		t.Fatalf("expected tilde expansion, got %s", cfg.Paths.DataDir)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     string
	}{
		{"negative max items", "[mailbox]\nmax_items = -1\n", "mailbox.max_items"},
		{"bad retention", "[history]\nenabled = true\nretention_days = 0\n", "history.retention_days"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.contents)
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestAPITokenEnvFallback(t *testing.T) {
	t.Setenv("MAILBOX_API_TOKEN", "secret-token")
	missing := filepath.Join(t.TempDir(), "absent.toml")
	cfg, _, _, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.APIToken != "secret-token" {
		t.Fatalf("expected env token fallback, got %q", cfg.Paths.APIToken)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	// The sample must itself be loadable.
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected sample logging format: %s", cfg.Logging.Format)
	}
}
