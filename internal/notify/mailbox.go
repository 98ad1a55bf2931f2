package notify

import (
	"container/list"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrMailboxFull is returned by Add and Update when a capacity limit is
// configured and inserting another record would exceed it.
var ErrMailboxFull = errors.New("notification mailbox is full")

// Mailbox is an insertion-ordered set of notification records keyed by id.
//
// The ordered list and the id index are always mutated together inside the
// same critical section, so the index never drifts from the list contents.
type Mailbox struct {
	mu       sync.Mutex
	maxItems int
	order    *list.List // list of Record, oldest first
	index    map[string]*list.Element
}

// NewMailbox constructs an empty mailbox. maxItems bounds the number of
// live records; zero or negative means unbounded.
func NewMailbox(maxItems int) *Mailbox {
	return &Mailbox{
		maxItems: maxItems,
		order:    list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Add validates the record and appends it to the mailbox. When the record
// carries no id, a fresh UUID is assigned. A record whose id is already
// present is silently dropped, leaving the first-inserted payload in place;
// that dedup is intentional and not an error.
//
// The final id is returned for caller convenience along with whether the
// record was actually inserted.
func (m *Mailbox) Add(rec Record) (string, bool, error) {
	if err := rec.Validate(); err != nil {
		return "", false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if _, exists := m.index[rec.ID]; exists {
		return rec.ID, false, nil
	}
	if m.maxItems > 0 && m.order.Len() >= m.maxItems {
		return "", false, ErrMailboxFull
	}

	rec.Navigation = cloneRaw(rec.Navigation)
	m.index[rec.ID] = m.order.PushBack(rec)
	return rec.ID, true, nil
}

// Remove deletes the record with the given id, preserving the relative
// order of the remaining records. It reports whether a record was found;
// removing an unknown id is not an error.
func (m *Mailbox) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.index[id]
	if !ok {
		return false
	}
	m.order.Remove(elem)
	delete(m.index, id)
	return true
}

// Update validates the record and replaces the payload stored under its id
// in place, keeping the record's original position. An unknown id appends
// the record at the end, exactly like Add. When the record carries no id a
// fresh one is generated, so the operation degrades to an append: callers
// should only omit the id on Add for Update to ever update in place.
//
// The returned bool reports whether an existing record was replaced.
func (m *Mailbox) Update(rec Record) (string, bool, error) {
	if err := rec.Validate(); err != nil {
		return "", false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Navigation = cloneRaw(rec.Navigation)

	if elem, ok := m.index[rec.ID]; ok {
		elem.Value = rec
		return rec.ID, true, nil
	}
	if m.maxItems > 0 && m.order.Len() >= m.maxItems {
		return "", false, ErrMailboxFull
	}
	m.index[rec.ID] = m.order.PushBack(rec)
	return rec.ID, false, nil
}

// ReadAll returns a snapshot of the current records in first-insertion
// order. The mailbox is left untouched; navigation payloads are copied so
// callers cannot mutate stored state through the snapshot.
func (m *Mailbox) ReadAll() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]Record, 0, m.order.Len())
	for elem := m.order.Front(); elem != nil; elem = elem.Next() {
		rec := elem.Value.(Record)
		rec.Navigation = cloneRaw(rec.Navigation)
		records = append(records, rec)
	}
	return records
}

// Len returns the number of live records.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}
