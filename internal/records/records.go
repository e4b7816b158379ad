// Package records holds the in-memory, insertion-ordered item collection.
//
// A Store is not safe for concurrent use; callers serialize access
// (see the app package).
package records

import (
	"time"

	"github.com/erazemk/track/internal/model"
)

// Store is an ordered collection of items keyed by ID.
type Store struct {
	items []model.Item
	maxID int64
	now   func() time.Time
}

// New returns a store holding a copy of items, in order.
func New(items []model.Item) *Store {
	s := &Store{now: time.Now}
	s.items = make([]model.Item, 0, len(items))
	for _, it := range items {
		s.items = append(s.items, it.Clone())
		s.maxID = max(s.maxID, it.ID)
	}
	return s
}

// SetClock replaces the time source used for new IDs.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// NextID returns an unused ID that is greater than every ID in the store.
// IDs follow the creation time in milliseconds when the clock allows it,
// so ordering by ID orders by add time.
func (s *Store) NextID() int64 {
	return max(s.now().UnixMilli(), s.maxID+1)
}

// Add assigns a fresh ID to item, appends it and returns the stored copy.
func (s *Store) Add(item model.Item) model.Item {
	item = item.Clone()
	item.ID = s.NextID()
	s.items = append(s.items, item)
	s.maxID = item.ID
	return item.Clone()
}

// Append adds items that already carry IDs (an import batch).
// Items whose ID is zero or already taken get a fresh one.
func (s *Store) Append(items ...model.Item) []model.Item {
	added := make([]model.Item, 0, len(items))
	for _, it := range items {
		it = it.Clone()
		if it.ID <= 0 || s.index(it.ID) >= 0 {
			it.ID = s.NextID()
		}
		s.items = append(s.items, it)
		s.maxID = max(s.maxID, it.ID)
		added = append(added, it.Clone())
	}
	return added
}

// Get returns the item with the given ID.
func (s *Store) Get(id int64) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i].Clone(), true
}

// Update merges patch into the item with the given ID. It is a no-op
// returning false if there is no such item.
func (s *Store) Update(id int64, patch model.Patch) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	s.items[i] = patch.Apply(s.items[i])
	return s.items[i].Clone(), true
}

// Remove deletes the item with the given ID. It is a no-op returning false
// if there is no such item.
func (s *Store) Remove(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// List returns a copy of all items in insertion order.
func (s *Store) List() []model.Item {
	out := make([]model.Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// Categories returns the distinct non-empty categories in the order they
// are first encountered.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range s.items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}

func (s *Store) index(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
