package store

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jdsmith/tdo/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memAdapter is an in-memory Adapter that counts writes, so tests can
// assert which operations persist and which stay no-ops.
type memAdapter struct {
	values map[string][]byte
	saves  int
}

func newMemAdapter() *memAdapter {
	return &memAdapter{values: make(map[string][]byte)}
}

func (a *memAdapter) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	a.values[key] = data
	a.saves++
}

func (a *memAdapter) Load(key string, out any) bool {
	data, ok := a.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (a *memAdapter) Remove(key string) {
	delete(a.values, key)
}

func (a *memAdapter) Clear() {
	a.values = make(map[string][]byte)
}

func TestNewDefaults(t *testing.T) {
	s := New(newMemAdapter())

	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.ActiveCount())
	assert.Equal(t, 0, s.CompletedCount())
}

func TestAdd(t *testing.T) {
	t.Run("adds a trimmed item with defaults", func(t *testing.T) {
		s := New(newMemAdapter())

		s.Add("  Buy milk  ")

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].ID)
		assert.Equal(t, "Buy milk", items[0].Text)
		assert.False(t, items[0].Completed)
		assert.False(t, items[0].CreatedAt.IsZero())
	})

	t.Run("assigns strictly increasing ids", func(t *testing.T) {
		s := New(newMemAdapter())

		s.Add("Task 1")
		s.Add("Task 2")
		s.Add("Task 3")

		items := s.Items()
		require.Len(t, items, 3)
		for i, item := range items {
			assert.Equal(t, i+1, item.ID)
		}
	})

	t.Run("whitespace-only text is a full no-op", func(t *testing.T) {
		adapter := newMemAdapter()
		s := New(adapter)

		notified := 0
		s.Subscribe(func() { notified++ })

		for _, text := range []string{"", " ", "\t", "  \n  "} {
			s.Add(text)
		}

		assert.Empty(t, s.Items())
		assert.Zero(t, adapter.saves, "empty add must not persist")
		assert.Zero(t, notified, "empty add must not notify")
	})

	t.Run("persists and notifies on success", func(t *testing.T) {
		adapter := newMemAdapter()
		s := New(adapter)

		notified := 0
		s.Subscribe(func() { notified++ })

		s.Add("Task")

		assert.Equal(t, 2, adapter.saves, "items and nextId are both written")
		assert.Equal(t, 1, notified)
	})
}

func TestToggle(t *testing.T) {
	t.Run("twice returns the item to its original state", func(t *testing.T) {
		s := New(newMemAdapter())
		s.Add("Task")
		id := s.Items()[0].ID

		s.Toggle(id)
		item, ok := s.Get(id)
		require.True(t, ok)
		assert.True(t, item.Completed)

		s.Toggle(id)
		item, ok = s.Get(id)
		require.True(t, ok)
		assert.False(t, item.Completed)
	})

	t.Run("unknown id is a full no-op", func(t *testing.T) {
		adapter := newMemAdapter()
		s := New(adapter)
		s.Add("Task")
		savesBefore := adapter.saves

		notified := 0
		s.Subscribe(func() { notified++ })

		s.Toggle(42)

		assert.Equal(t, savesBefore, adapter.saves)
		assert.Zero(t, notified)
		assert.False(t, s.Items()[0].Completed)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes only the matching item, preserving order", func(t *testing.T) {
		s := New(newMemAdapter())
		s.Add("A")
		s.Add("B")
		s.Add("C")
		idB := s.Items()[1].ID

		s.Delete(idB)

		items := s.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "A", items[0].Text)
		assert.Equal(t, "C", items[1].Text)
		for _, item := range items {
			assert.NotEqual(t, idB, item.ID)
		}
	})

	t.Run("missing id still persists and notifies", func(t *testing.T) {
		adapter := newMemAdapter()
		s := New(adapter)
		s.Add("A")
		savesBefore := adapter.saves

		notified := 0
		s.Subscribe(func() { notified++ })

		s.Delete(999)

		assert.Len(t, s.Items(), 1)
		assert.Equal(t, savesBefore+2, adapter.saves)
		assert.Equal(t, 1, notified)
	})

	t.Run("deleted ids are never reused", func(t *testing.T) {
		s := New(newMemAdapter())
		s.Add("A")
		s.Add("B")
		s.Delete(2)

		s.Add("C")

		items := s.Items()
		require.Len(t, items, 2)
		assert.Equal(t, 3, items[1].ID)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("replaces text with the trimmed value", func(t *testing.T) {
		s := New(newMemAdapter())
		s.Add("Old")
		id := s.Items()[0].ID

		s.Update(id, "  New  ")

		item, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, "New", item.Text)
	})

	t.Run("whitespace-only text leaves the item unchanged", func(t *testing.T) {
		adapter := newMemAdapter()
		s := New(adapter)
		s.Add("Old")
		s.Update(1, "New")
		id := s.Items()[0].ID
		savesBefore := adapter.saves

		notified := 0
		s.Subscribe(func() { notified++ })

		s.Update(id, "   ")

		item, _ := s.Get(id)
		assert.Equal(t, "New", item.Text)
		assert.Equal(t, savesBefore, adapter.saves)
		assert.Zero(t, notified)
	})

	t.Run("unknown id is a full no-op", func(t *testing.T) {
		adapter := newMemAdapter()
		s := New(adapter)
		s.Add("Task")
		savesBefore := adapter.saves

		s.Update(42, "New")

		assert.Equal(t, "Task", s.Items()[0].Text)
		assert.Equal(t, savesBefore, adapter.saves)
	})

	t.Run("does not touch the created timestamp", func(t *testing.T) {
		s := New(newMemAdapter())
		s.Add("Old")
		created := s.Items()[0].CreatedAt

		s.Update(1, "New")

		assert.Equal(t, created, s.Items()[0].CreatedAt)
	})
}

func TestClearCompleted(t *testing.T) {
	t.Run("drops completed items, keeps the rest in order", func(t *testing.T) {
		s := New(newMemAdapter())
		s.Add("Task 1")
		s.Add("Task 2")
		s.Toggle(s.Items()[0].ID)

		s.ClearCompleted()

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Task 2", items[0].Text)
	})

	t.Run("is idempotent", func(t *testing.T) {
		s := New(newMemAdapter())
		s.Add("A")
		s.Add("B")
		s.Add("C")
		s.Toggle(2)

		s.ClearCompleted()
		once := s.Items()
		s.ClearCompleted()
		twice := s.Items()

		assert.Equal(t, once, twice)
	})

	t.Run("persists and notifies even with nothing completed", func(t *testing.T) {
		adapter := newMemAdapter()
		s := New(adapter)
		s.Add("A")
		savesBefore := adapter.saves

		notified := 0
		s.Subscribe(func() { notified++ })

		s.ClearCompleted()

		assert.Len(t, s.Items(), 1)
		assert.Equal(t, savesBefore+2, adapter.saves)
		assert.Equal(t, 1, notified)
	})
}

func TestClearAll(t *testing.T) {
	adapter := newMemAdapter()
	s := New(adapter)
	s.Add("A")
	s.Add("B")

	notified := 0
	s.Subscribe(func() { notified++ })

	s.ClearAll()

	assert.Empty(t, s.Items())
	assert.Equal(t, 1, notified)

	// The counter is untouched, so new items keep increasing ids.
	s.Add("C")
	assert.Equal(t, 3, s.Items()[0].ID)
}

func TestCountInvariant(t *testing.T) {
	s := New(newMemAdapter())

	check := func() {
		t.Helper()
		assert.Equal(t, s.Len(), s.ActiveCount()+s.CompletedCount())

		seen := make(map[int]bool)
		for _, item := range s.Items() {
			assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
			seen[item.ID] = true
		}
	}

	s.Add("A")
	check()
	s.Add("B")
	check()
	s.Toggle(1)
	check()
	s.Update(2, "B2")
	check()
	s.Delete(1)
	check()
	s.Add("C")
	check()
	s.Toggle(3)
	check()
	s.ClearCompleted()
	check()
	s.ClearAll()
	check()

	assert.Equal(t, 0, s.Len())
}

func TestSubscribe(t *testing.T) {
	t.Run("callbacks run in registration order", func(t *testing.T) {
		s := New(newMemAdapter())

		var order []string
		s.Subscribe(func() { order = append(order, "first") })
		s.Subscribe(func() { order = append(order, "second") })

		s.Add("Task")

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("unsubscribe stops further callbacks", func(t *testing.T) {
		s := New(newMemAdapter())

		calls := 0
		unsubscribe := s.Subscribe(func() { calls++ })

		s.Add("A")
		unsubscribe()
		s.Add("B")

		assert.Equal(t, 1, calls)
	})

	t.Run("callbacks may read the store", func(t *testing.T) {
		s := New(newMemAdapter())

		var seen int
		s.Subscribe(func() { seen = s.ActiveCount() })

		s.Add("A")
		s.Add("B")

		assert.Equal(t, 2, seen)
	})
}

func TestDurabilityAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(io.Discard)

	s := New(storage.NewFileStore(dir, "todoApp", logger))
	s.Add("Buy milk")
	s.Add("Walk dog")
	s.Toggle(2)
	s.Delete(1)

	// A fresh store over the same directory sees the same state.
	restored := New(storage.NewFileStore(dir, "todoApp", logger))
	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Walk dog", items[0].Text)
	assert.True(t, items[0].Completed)

	// The counter survives too: new ids stay above every issued id.
	restored.Add("New task")
	assert.Equal(t, 3, restored.Items()[1].ID)
}
