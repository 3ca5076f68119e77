package queue

import (
	"slices"
	"sync"

	"github.com/kilianp07/chargeslot/core/model"
)

// WaitQueue is a FIFO list of users awaiting service.
type WaitQueue struct {
	mu    sync.RWMutex
	users []model.User
}

// New returns an empty queue.
func New() *WaitQueue { return &WaitQueue{} }

// Enqueue appends the user to the tail. Duplicates are kept.
func (q *WaitQueue) Enqueue(u model.User) {
	q.mu.Lock()
	q.users = append(q.users, u)
	q.mu.Unlock()
}

// Promote moves the first occurrence of u to the head of the queue.
// It returns false and leaves the queue untouched when u is absent.
func (q *WaitQueue) Promote(u model.User) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	i := slices.Index(q.users, u)
	if i < 0 {
		return false
	}
	copy(q.users[1:i+1], q.users[:i])
	q.users[0] = u
	return true
}

// Position returns the 1-based position of the first occurrence of u, or 0.
func (q *WaitQueue) Position(u model.User) int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return slices.Index(q.users, u) + 1
}

// Users returns a snapshot of the queue from head to tail.
func (q *WaitQueue) Users() []model.User {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return slices.Clone(q.users)
}

func (q *WaitQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.users)
}
