// Package notify implements the in-memory mailbox of user-facing
// notifications shared between background workers and the frontend layer.
//
// A Mailbox holds at most one record per id, preserves first-insertion
// ordering, and supports in-place update that keeps a record's position.
// All operations are serialized by a single mutex, so every public call is
// linearizable with respect to every other. Records are validated before
// the lock is taken; a validation failure never touches mailbox state.
//
// The mailbox is purely in-memory. The surrounding daemon owns its
// lifecycle (one shared instance per process) and layers journaling and
// transport on top; this package stays free of I/O.
package notify
