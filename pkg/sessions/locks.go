package sessions

import "sync"

// Locks serializes work on a single session ID within this process.
// Entries are dropped once nobody holds or waits for them.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewLocks() *Locks {
	return &Locks{locks: make(map[string]*keyLock)}
}

// Lock blocks until id is free and returns the matching unlock.
func (l *Locks) Lock(id string) (unlock func()) {
	l.mu.Lock()
	k, ok := l.locks[id]
	if !ok {
		k = &keyLock{}
		l.locks[id] = k
	}
	k.refs++
	l.mu.Unlock()

	k.mu.Lock()
	return func() {
		k.mu.Unlock()
		l.mu.Lock()
		k.refs--
		if k.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// Len returns the number of IDs currently locked or waited on.
func (l *Locks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
