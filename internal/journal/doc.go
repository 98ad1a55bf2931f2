// Package journal records notification lifecycle events in SQLite.
//
// The Store keeps an append-only audit trail of posted, updated, and
// dismissed notifications so operators can see what the frontend was shown
// after the fact. It is deliberately one-way: the live mailbox is never
// rebuilt from the journal, and pruning old rows has no effect on current
// notifications.
package journal
