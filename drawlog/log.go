package drawlog

import (
	"sync"

	"inspiration_drawer/drawer"
)

// MaxEntries is how many draws the log retains.
const MaxEntries = 5

// Log is the bounded, most-recent-first draw history on top of a Store.
// Record holds a mutex across the whole load-modify-save cycle, so one
// Log is the single writer for its store within a process. Separate
// processes sharing a file are not coordinated.
type Log struct {
	mu    sync.Mutex
	store Store
	max   int
}

// NewLog returns a Log over store that keeps MaxEntries draws.
func NewLog(store Store) *Log {
	return &Log{store: store, max: MaxEntries}
}

// Record prepends entry, keeps the newest MaxEntries and writes the log
// back. A log that fails to load is left untouched.
func (l *Log) Record(entry drawer.LogEntry) ([]drawer.LogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.store.Load()
	if err != nil {
		return nil, err
	}

	next := make([]drawer.LogEntry, 0, len(entries)+1)
	next = append(next, entry)
	next = append(next, entries...)
	if len(next) > l.max {
		next = next[:l.max]
	}

	if err := l.store.Save(next); err != nil {
		return nil, err
	}
	return next, nil
}

// Entries reads the retained log for display.
func (l *Log) Entries() ([]drawer.LogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Load()
}

// Find returns the entry with id.
func (l *Log) Find(id string) (drawer.LogEntry, bool, error) {
	entries, err := l.Entries()
	if err != nil {
		return drawer.LogEntry{}, false, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return drawer.LogEntry{}, false, nil
}
