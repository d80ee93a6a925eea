package enum

import "sync"

type seenKey struct {
	enum  string
	value string
}

// DedupLog remembers which invalid (enum type, value) pairs have been reported.
// Entries are never removed. A DedupLog is safe for concurrent use.
type DedupLog struct {
	mu   sync.Mutex
	seen map[seenKey]struct{}
}

// NewDedupLog creates an empty DedupLog.
func NewDedupLog() *DedupLog {
	return &DedupLog{seen: make(map[seenKey]struct{})}
}

// FirstSeen records the pair and reports whether it was new.
func (d *DedupLog) FirstSeen(enumName, value string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	k := seenKey{enum: enumName, value: value}
	if _, ok := d.seen[k]; ok {
		return false
	}

	d.seen[k] = struct{}{}

	return true
}

// Seen reports whether the pair has been recorded.
func (d *DedupLog) Seen(enumName, value string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.seen[seenKey{enum: enumName, value: value}]

	return ok
}

// Len returns the number of recorded pairs.
func (d *DedupLog) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.seen)
}
