package store

import (
	"sync"

	"github.com/alexisbeaulieu97/thematic/internal/ports"
)

type subscriber struct {
	id int
	fn func(Snapshot)
}

type subscribers struct {
	mu     sync.RWMutex
	nextID int
	list   []subscriber
}

func newSubscribers() *subscribers {
	return &subscribers{}
}

func (s *subscribers) add(fn func(Snapshot)) ports.Subscription {
	if fn == nil {
		return noopSubscription{}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.list = append(s.list, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	sub := &subscription{}
	sub.cancel = func() { s.remove(id) }
	return sub
}

func (s *subscribers) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.list {
		if entry.id == id {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			return
		}
	}
}

// notify calls every subscriber with its own copy of snapshot. The list is
// copied first so callbacks may subscribe or unsubscribe.
func (s *subscribers) notify(snapshot Snapshot) {
	s.mu.RLock()
	list := append([]subscriber(nil), s.list...)
	s.mu.RUnlock()

	for _, entry := range list {
		snap := snapshot
		snap.Theme = snapshot.Theme.Clone()
		entry.fn(snap)
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
