package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mailbox/internal/ipc"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var follow bool
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show daemon log output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				stdout := cmd.OutOrStdout()

				resp, err := client.LogTail(ipc.LogTailRequest{Offset: -1, Limit: limit})
				if err != nil {
					return err
				}
				for _, line := range resp.Lines {
					fmt.Fprintln(stdout, line)
				}
				if !follow {
					return nil
				}

				signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer cancel()

				offset := resp.Offset
				for {
					if signalCtx.Err() != nil {
						return nil
					}
					next, err := client.LogTail(ipc.LogTailRequest{
						Offset:     offset,
						Limit:      limit,
						Follow:     true,
						WaitMillis: 1000,
					})
					if err != nil {
						if errors.Is(err, os.ErrClosed) {
							return nil
						}
						return err
					}
					for _, line := range next.Lines {
						fmt.Fprintln(stdout, line)
					}
					offset = next.Offset
				}
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum number of lines per read")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep reading new log lines")
	return cmd
}
