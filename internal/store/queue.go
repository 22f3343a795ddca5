package store

import (
	"sync"

	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

// writeQueue is an unbounded FIFO of names awaiting persistence. push never
// blocks; pop blocks until an item arrives or the queue is closed and empty.
type writeQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []theme.Name
	closed  bool
}

func newWriteQueue() *writeQueue {
	q := &writeQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *writeQueue) push(name theme.Name) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.pending = append(q.pending, name)
	q.cond.Signal()
}

func (q *writeQueue) pop() (theme.Name, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.pending) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.pending) == 0 {
		return "", false
	}
	name := q.pending[0]
	q.pending[0] = ""
	q.pending = q.pending[1:]
	return name, true
}

func (q *writeQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}
