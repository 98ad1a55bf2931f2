// Package daemon hosts the long-running mailbox process: the live
// notification mailbox, the history journal, the HTTP API, and the
// single-instance lock that keeps concurrent daemons from fighting over
// the same socket and journal.
package daemon
