package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mailbox/internal/ipc"
	"mailbox/internal/notify"
)

type notificationFlags struct {
	id       string
	kind     string
	icon     string
	labelKey string
	message  string
	push     string
	events   []string
	url      string
	navJSON  string
}

func (f *notificationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "id", "", "Notification id (generated when omitted)")
	cmd.Flags().StringVar(&f.kind, "kind", "info", "Notification kind: error, warning, success, or info")
	cmd.Flags().StringVar(&f.icon, "icon", "", "Frontend icon name")
	cmd.Flags().StringVar(&f.labelKey, "label", "", "Frontend label translation key")
	cmd.Flags().StringVar(&f.message, "message", "", "Notification message body")
	cmd.Flags().StringVar(&f.push, "push", "", "Frontend route to navigate to")
	cmd.Flags().StringSliceVar(&f.events, "event", nil, "Frontend event to fire on navigation (repeatable)")
	cmd.Flags().StringVar(&f.url, "url", "", "External URL to open")
	cmd.Flags().StringVar(&f.navJSON, "navigation", "", "Raw navigation payload as JSON (overrides --push/--event/--url)")
}

func (f *notificationFlags) build() (ipc.Notification, error) {
	navigation, err := f.navigation()
	if err != nil {
		return ipc.Notification{}, err
	}
	return ipc.Notification{
		ID:         strings.TrimSpace(f.id),
		Kind:       strings.ToLower(strings.TrimSpace(f.kind)),
		Icon:       strings.TrimSpace(f.icon),
		LabelKey:   strings.TrimSpace(f.labelKey),
		Message:    f.message,
		Navigation: navigation,
	}, nil
}

func (f *notificationFlags) navigation() (json.RawMessage, error) {
	if raw := strings.TrimSpace(f.navJSON); raw != "" {
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("--navigation is not valid JSON")
		}
		return json.RawMessage(raw), nil
	}
	if f.push == "" && len(f.events) == 0 && f.url == "" {
		return nil, nil
	}
	return notify.Navigation{
		Push:   strings.TrimSpace(f.push),
		Events: f.events,
		URL:    strings.TrimSpace(f.url),
	}.Encode(), nil
}

func newPostCommand(ctx *commandContext) *cobra.Command {
	flags := &notificationFlags{}
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a notification to the mailbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			notification, err := flags.build()
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Post(notification)
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if !resp.Added {
					fmt.Fprintf(stdout, "Notification %s already present; post ignored\n", resp.ID)
					return nil
				}
				fmt.Fprintf(stdout, "Posted notification %s\n", resp.ID)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	flags := &notificationFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a notification's payload in place",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notification, err := flags.build()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				notification.ID = strings.TrimSpace(args[0])
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Amend(notification)
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if resp.Replaced {
					fmt.Fprintf(stdout, "Updated notification %s\n", resp.ID)
				} else {
					fmt.Fprintf(stdout, "Notification %s not found; posted as new\n", resp.ID)
				}
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newDismissCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <id>",
		Short: "Remove a notification from the mailbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Dismiss(id)
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if !resp.Removed {
					fmt.Fprintf(stdout, "Notification %s not found\n", id)
					return nil
				}
				fmt.Fprintf(stdout, "Dismissed notification %s\n", id)
				return nil
			})
		},
	}
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications in the mailbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.List()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				stdout := cmd.OutOrStdout()
				if len(resp.Notifications) == 0 {
					fmt.Fprintln(stdout, "Mailbox is empty")
					return nil
				}
				colorize := shouldColorize(stdout)
				rows := notificationRows(resp.Notifications, colorize)
				fmt.Fprintln(stdout, renderTable(
					[]string{"ID", "Kind", "Message", "Navigation"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
