package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mailbox/internal/daemonctl"
)

func newStartCommand(ctx *commandContext) *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the mailbox daemon in the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			exe, err := daemonExecutable()
			if err != nil {
				return err
			}

			opts := daemonctl.LaunchOptions{LogLevel: logLevel}
			if ctx.configFlag != nil {
				opts.ConfigPath = strings.TrimSpace(*ctx.configFlag)
			}

			result, err := daemonctl.EnsureStarted(ctx.socketPath(), exe, opts, 10*time.Second)
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			switch result.State {
			case daemonctl.StartStateStarted:
				fmt.Fprintf(stdout, "Daemon started (pid %d)\n", result.PID)
			case daemonctl.StartStateAlreadyRunning:
				fmt.Fprintf(stdout, "Daemon already running (pid %d)\n", result.PID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override configured log level for the launched daemon")
	return cmd
}

// daemonExecutable locates the mailboxd binary: first beside the CLI
// binary, then on PATH.
func daemonExecutable() (string, error) {
	exe, err := os.Executable()
	if err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "mailboxd")
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	path, lookErr := exec.LookPath("mailboxd")
	if lookErr != nil {
		return "", fmt.Errorf("locate mailboxd executable: %w", lookErr)
	}
	return path, nil
}
