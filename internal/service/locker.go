package service

import "sync"

// roomLocker serializes mutations per room. Every move, join, reset or
// leave is a read-modify-write of the whole room record, so two
// near-simultaneous requests must not both observe the pre-move turn.
// Rooms are independent; there is no cross-room locking.
type roomLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRoomLocker() *roomLocker {
	return &roomLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for roomID and returns its unlock function.
// Lock entries are never evicted, same as the room registry itself.
func (that *roomLocker) Lock(roomID string) func() {
	that.mu.Lock()
	lock, ok := that.locks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[roomID] = lock
	}
	that.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
