package service

import "sync"

// userLocks serializes derived-state writes per user. Recalculation can
// be triggered concurrently by the sweep, transaction ingestion and
// mission changes for the same user; without a single writer one side's
// read-modify-write would silently overwrite the other's.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
