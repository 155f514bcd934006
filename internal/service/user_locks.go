package service

import (
	"context"
	"sync"
)

// userLocks serializes writers per username: at most one read-modify-write
// sequence is in flight for a user at a time.
type userLocks struct {
	mu    sync.Mutex
	slots map[string]*userSlot
}

type userSlot struct {
	ch   chan struct{}
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{slots: make(map[string]*userSlot)}
}

// Lock waits for the username's slot or ctx cancellation. The returned
// function releases the slot and must be called exactly once.
func (l *userLocks) Lock(ctx context.Context, username string) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[username]
	if !ok {
		slot = &userSlot{ch: make(chan struct{}, 1)}
		l.slots[username] = slot
	}
	slot.refs++
	l.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
		return func() {
			<-slot.ch
			l.release(username, slot)
		}, nil
	case <-ctx.Done():
		l.release(username, slot)
		return nil, ctx.Err()
	}
}

func (l *userLocks) release(username string, slot *userSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, username)
	}
}
