package history

import (
	"sort"
	"sync"
	"time"
)

// Entry statuses. The processing pipeline only ever records Processed today;
// Pending and Failed exist so the status dimension can grow without a
// contract change.
const (
	StatusPending   = "Pending"
	StatusProcessed = "Processed"
	StatusFailed    = "Failed"
)

// Entry is the history metadata kept for a processed or generated document.
type Entry struct {
	Name      string
	Type      string
	Content   string
	Timestamp time.Time
	Status    string
}

// Ledger is an append-mostly, session-scoped log of processed documents.
// It is independent of the live registry: an entry may outlive its chat
// engine, never the reverse. Safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   map[string]int
	seq     int
}

// NewLedger constructs an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries: make(map[string]Entry),
		order:   make(map[string]int),
	}
}

// Append upserts the entry for name, marking it Processed. Re-appending an
// existing name overwrites its metadata but keeps its insertion rank.
func (l *Ledger) Append(name, docType, content string, timestamp time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.entries[name]; !ok {
		l.order[name] = l.seq
		l.seq++
	}
	l.entries[name] = Entry{
		Name:      name,
		Type:      docType,
		Content:   content,
		Timestamp: timestamp,
		Status:    StatusProcessed,
	}
}

// Get returns the entry for name.
func (l *Ledger) Get(name string) (Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	entry, ok := l.entries[name]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// List returns a snapshot of all entries, newest first. Ties on timestamp
// keep insertion order. The returned slice is a copy; callers may iterate it
// while the ledger keeps changing.
func (l *Ledger) List() []Entry {
	type ranked struct {
		entry Entry
		rank  int
	}

	l.mu.RLock()
	all := make([]ranked, 0, len(l.entries))
	for name, entry := range l.entries {
		all = append(all, ranked{entry: entry, rank: l.order[name]})
	}
	l.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].entry.Timestamp.Equal(all[j].entry.Timestamp) {
			return all[i].rank < all[j].rank
		}
		return all[i].entry.Timestamp.After(all[j].entry.Timestamp)
	})

	entries := make([]Entry, 0, len(all))
	for _, r := range all {
		entries = append(entries, r.entry)
	}
	return entries
}

// Delete removes the entry for name. Deleting an absent name is a no-op.
func (l *Ledger) Delete(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, name)
	delete(l.order, name)
}

// Len reports the number of entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
