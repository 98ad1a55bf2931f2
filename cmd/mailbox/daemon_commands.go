package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"mailbox/internal/daemonctl"
	"mailbox/internal/daemonrun"
	"mailbox/internal/ipc"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent notification history, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.History(limit)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				stdout := cmd.OutOrStdout()
				if len(resp.Events) == 0 {
					fmt.Fprintln(stdout, "No history recorded")
					return nil
				}
				rows := make([][]string, 0, len(resp.Events))
				for _, event := range resp.Events {
					rows = append(rows, []string{
						event.OccurredAt.Local().Format(time.RFC3339),
						event.Action,
						event.NotificationID,
						event.Message,
					})
				}
				fmt.Fprintln(stdout, renderTable(
					[]string{"When", "Action", "ID", "Message"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of events to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Status()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				stdout := cmd.OutOrStdout()
				colorize := shouldColorize(stdout)
				running := "no"
				if resp.Running {
					running = "yes"
				}
				fmt.Fprintln(stdout, renderStatusLine("Running", running, colorize))
				fmt.Fprintln(stdout, renderStatusLine("PID", strconv.Itoa(resp.PID), colorize))
				capacity := strconv.Itoa(resp.Notifications)
				if resp.MaxItems > 0 {
					capacity = fmt.Sprintf("%d / %d", resp.Notifications, resp.MaxItems)
				}
				fmt.Fprintln(stdout, renderStatusLine("Notifications", capacity, colorize))
				fmt.Fprintln(stdout, renderStatusLine("Socket", resp.SocketPath, colorize))
				fmt.Fprintln(stdout, renderStatusLine("Lock file", resp.LockPath, colorize))
				if resp.JournalPath != "" {
					fmt.Fprintln(stdout, renderStatusLine("Journal", resp.JournalPath, colorize))
				}
				if resp.APIBind != "" {
					fmt.Fprintln(stdout, renderStatusLine("API", resp.APIBind, colorize))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of status lines")
	return cmd
}

func newStopCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the mailbox daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			err := daemonctl.Stop(ctx.socketPath(), 5*time.Second)
			if errors.Is(err, daemonctl.ErrDaemonNotRunning) {
				fmt.Fprintln(stdout, "Daemon is not running")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Daemon stopped")
			return nil
		},
	}
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the mailbox daemon in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return daemonrun.Run(cmd.Context(), cfg, daemonrun.Options{LogLevel: logLevel})
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override configured log level")
	return cmd
}
