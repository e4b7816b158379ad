package records

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/track/internal/model"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	s := New(nil)
	s.SetClock(fixedClock(1000))

	a := s.Add(model.Item{Name: "A"})
	b := s.Add(model.Item{Name: "B"})

	assert.Equal(t, int64(1000), a.ID)
	assert.Equal(t, int64(1001), b.ID, "same millisecond still yields a unique id")

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "B", list[1].Name)
}

func TestNewKeepsIDsAheadOfLoadedItems(t *testing.T) {
	s := New([]model.Item{{ID: 5000, Name: "old"}})
	s.SetClock(fixedClock(10))

	assert.Equal(t, int64(5001), s.NextID())
}

func TestUpdate(t *testing.T) {
	s := New(nil)
	it := s.Add(model.Item{Name: "Phone", Price: decimal.NewFromInt(100), Status: model.StatusActive})

	name := "Smartphone"
	got, ok := s.Update(it.ID, model.Patch{Name: &name})
	require.True(t, ok)
	assert.Equal(t, "Smartphone", got.Name)

	stored, _ := s.Get(it.ID)
	assert.Equal(t, "Smartphone", stored.Name)

	_, ok = s.Update(it.ID+42, model.Patch{Name: &name})
	assert.False(t, ok)
}

func TestRemoveMissingIsNoop(t *testing.T) {
	s := New(nil)
	s.Add(model.Item{Name: "A"})
	before := s.List()

	assert.False(t, s.Remove(123456))
	assert.Equal(t, before, s.List())
}

func TestRemove(t *testing.T) {
	s := New(nil)
	s.SetClock(fixedClock(1))
	a := s.Add(model.Item{Name: "A"})
	s.Add(model.Item{Name: "B"})

	assert.True(t, s.Remove(a.ID))
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)
}

func TestListReturnsCopies(t *testing.T) {
	s := New(nil)
	s.Add(model.Item{Name: "A", Tags: []string{"x"}})

	list := s.List()
	list[0].Name = "changed"
	list[0].Tags[0] = "changed"

	again := s.List()
	assert.Equal(t, "A", again[0].Name)
	assert.Equal(t, []string{"x"}, again[0].Tags)
}

func TestAppendResolvesCollisions(t *testing.T) {
	s := New([]model.Item{{ID: 7, Name: "existing"}})
	s.SetClock(fixedClock(1))

	added := s.Append(model.Item{ID: 7, Name: "dup"}, model.Item{Name: "no id"}, model.Item{ID: 100, Name: "ok"})
	require.Len(t, added, 3)
	assert.Equal(t, int64(8), added[0].ID)
	assert.Equal(t, int64(9), added[1].ID)
	assert.Equal(t, int64(100), added[2].ID)
	assert.Equal(t, 4, s.Len())
}

func TestCategories(t *testing.T) {
	s := New([]model.Item{
		{ID: 1, Category: "电子"},
		{ID: 2, Category: ""},
		{ID: 3, Category: "家具"},
		{ID: 4, Category: "电子"},
	})
	assert.Equal(t, []string{"电子", "家具"}, s.Categories())
}
