// Package slotlock serialises work on the same court/date/time-slot inside one
// process. Bookings for different slots never wait on each other.
//
// The store's unique index is what guarantees a single booking per slot across
// processes; the lock keeps two requests in this process from racing through
// the duplicate check and turning the loser into a store error.
package slotlock

import "sync"

// Key identifies one bookable unit of court time.
type Key struct {
	Date     string // "YYYY-MM-DD"
	TimeSlot string // "HH:00-HH:00"
	CourtID  string
}

// entry is a mutex plus the number of goroutines holding or waiting for it.
// The entry is dropped from the map when the count reaches zero, so the map
// only ever holds keys that are in use.
type entry struct {
	mu   sync.Mutex
	refs int
}

// Locker hands out one mutex per Key. The zero value is ready to use.
type Locker struct {
	mu    sync.Mutex
	slots map[Key]*entry
}

// New returns an empty Locker.
func New() *Locker {
	return &Locker{slots: make(map[Key]*entry)}
}

// Lock blocks until the caller holds the lock for k and returns the function
// that releases it. The release function must be called exactly once.
func (l *Locker) Lock(k Key) (unlock func()) {
	l.mu.Lock()
	if l.slots == nil {
		l.slots = make(map[Key]*entry)
	}
	e, ok := l.slots[k]
	if !ok {
		e = &entry{}
		l.slots[k] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.slots, k)
		}
		l.mu.Unlock()
	}
}

// Len reports how many keys are currently held or awaited.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
