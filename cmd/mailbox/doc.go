// Package main hosts the mailbox CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into IPC
// calls against the daemon: posting, amending, dismissing, and listing
// notifications, plus history queries and daemon lifecycle control. It
// centralizes configuration resolution and socket discovery so subcommands
// can focus on user experience instead of wiring.
package main
