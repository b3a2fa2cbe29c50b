// Package store implements the todo list: the in-memory item list,
// its mutations, derived counts, persistence through a storage
// adapter, and change notification to subscribers.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/jdsmith/tdo/internal/model"
	"github.com/jdsmith/tdo/internal/storage"
)

// Persisted keys. The adapter namespaces them.
const (
	keyItems  = "items"
	keyNextID = "nextId"
)

// Store is the single source of truth for the todo list. All
// mutations go through its methods; every successful mutation writes
// the full snapshot through the adapter and then runs subscriber
// callbacks. Invalid input (empty text, unknown ID) is a silent
// no-op rather than an error.
type Store struct {
	mu      sync.RWMutex
	adapter storage.Adapter
	items   []model.TodoItem
	nextID  int

	listenerMu sync.Mutex
	listeners  []listener
	nextToken  int
}

type listener struct {
	token int
	fn    func()
}

// New builds a Store backed by adapter, loading previously persisted
// items and the ID counter. Missing or unreadable state falls back to
// an empty list and a counter of 1. Loaded data is accepted as-is.
func New(adapter storage.Adapter) *Store {
	s := &Store{
		adapter: adapter,
		items:   []model.TodoItem{},
		nextID:  1,
	}
	adapter.Load(keyItems, &s.items)
	adapter.Load(keyNextID, &s.nextID)
	return s
}

// Subscribe registers fn to run after every successful mutation.
// Callbacks run synchronously in registration order and carry no
// payload; subscribers re-read the list and counts themselves.
// Callbacks run after the state lock is released, so a callback may
// call back into the store. The returned func removes the
// subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	token := s.nextToken
	s.nextToken++
	s.listeners = append(s.listeners, listener{token: token, fn: fn})

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()
		for i, l := range s.listeners {
			if l.token == token {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				break
			}
		}
	}
}

// Add appends a new item with the given text. The text is trimmed
// first; if nothing remains the call is a no-op and nothing is
// persisted or announced. The assigned ID is unique and strictly
// greater than every previously issued ID.
func (s *Store) Add(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	s.items = append(s.items, model.TodoItem{
		ID:        s.nextID,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now(),
	})
	s.nextID++
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Toggle flips the completed flag of the item with the given ID.
// Unknown IDs are a silent no-op.
func (s *Store) Toggle(id int) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Completed = !s.items[i].Completed
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Delete removes the item with the given ID, preserving the relative
// order of the rest. It persists and notifies even when no item
// matched.
func (s *Store) Delete(id int) {
	s.mu.Lock()
	kept := make([]model.TodoItem, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Update replaces the text of the item with the given ID. When the
// item is missing or the new text trims to empty, the call is a
// silent no-op and the original item is unchanged.
func (s *Store) Update(id int, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Text = text
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// ClearCompleted removes every completed item, preserving the order
// of the rest. It persists and notifies even when nothing was
// completed.
func (s *Store) ClearCompleted() {
	s.mu.Lock()
	kept := make([]model.TodoItem, 0, len(s.items))
	for _, item := range s.items {
		if !item.Completed {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// ClearAll empties the list, persists, and notifies.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.items = []model.TodoItem{}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Items returns a snapshot of the list in insertion order.
func (s *Store) Items() []model.TodoItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneItems(s.items)
}

// Get returns the item with the given ID, if present.
func (s *Store) Get(id int) (model.TodoItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.TodoItem{}, false
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// ActiveCount returns the number of items not yet completed.
func (s *Store) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.items {
		if !item.Completed {
			count++
		}
	}
	return count
}

// CompletedCount returns the number of completed items.
func (s *Store) CompletedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.items {
		if item.Completed {
			count++
		}
	}
	return count
}

// persistLocked writes the full snapshot through the adapter. The
// adapter is best-effort, so a dropped write leaves memory ahead of
// disk until the next successful mutation.
func (s *Store) persistLocked() {
	s.adapter.Save(keyItems, s.items)
	s.adapter.Save(keyNextID, s.nextID)
}

// notify runs subscriber callbacks outside the state lock. The
// listener slice is copied first so a callback may subscribe or
// unsubscribe without invalidating this round.
func (s *Store) notify() {
	s.listenerMu.Lock()
	fns := make([]func(), len(s.listeners))
	for i, l := range s.listeners {
		fns[i] = l.fn
	}
	s.listenerMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
