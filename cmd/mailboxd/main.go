// Command mailboxd runs the notification mailbox daemon in the foreground.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"mailbox/internal/config"
	"mailbox/internal/daemonrun"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	logLevel := flag.String("log-level", "", "override configured log level")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := daemonrun.Run(ctx, cfg, daemonrun.Options{LogLevel: *logLevel}); err != nil {
		log.Fatalf("mailboxd: %v", err)
	}
}
