// Package model defines the core data structures for tdo.
package model

import "time"

// TodoItem represents a single todo entry.
type TodoItem struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// CloneItems returns an independent copy of items so callers can hand
// out snapshots without exposing the backing slice.
func CloneItems(items []TodoItem) []TodoItem {
	out := make([]TodoItem, len(items))
	copy(out, items)
	return out
}
