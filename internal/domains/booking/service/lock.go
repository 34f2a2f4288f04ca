package service

import "sync"

// roomLocks serializes the check-then-write section of booking admission
// per room. Two requests for different rooms never block each other.
type roomLocks struct {
	locks sync.Map
}

// Lock acquires the mutex for the given room and returns its unlock func.
func (l *roomLocks) Lock(roomID string) func() {
	value, _ := l.locks.LoadOrStore(roomID, &sync.Mutex{})
	mu, _ := value.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}
