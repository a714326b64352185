package match

import "sync"

// fixtureLocks serialises writers of the same fixture within one process.
type fixtureLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newFixtureLocks() *fixtureLocks {
	return &fixtureLocks{locks: make(map[uint]*sync.Mutex)}
}

// lock blocks until the fixture is free and returns the unlock func.
func (l *fixtureLocks) lock(fixtureID uint) func() {
	l.mu.Lock()
	m, ok := l.locks[fixtureID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[fixtureID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
