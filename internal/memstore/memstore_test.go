package memstore_test

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"hris-dashboard/internal/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string
	Tags []string
}

func newStore(t *testing.T, seed ...record) *memstore.Store[record] {
	t.Helper()
	s := memstore.New(
		func(r record) string { return r.ID },
		func(r record) record {
			r.Tags = slices.Clone(r.Tags)
			return r
		},
	)
	require.NoError(t, s.Seed(seed))
	return s
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	s := newStore(t, record{ID: "b"}, record{ID: "a"})
	require.NoError(t, s.Insert(record{ID: "c"}))

	ids := make([]string, 0, 3)
	for _, r := range s.List() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestStore_CopyIndependence(t *testing.T) {
	s := newStore(t, record{ID: "1", Tags: []string{"go"}})

	first := s.List()
	first[0].Tags[0] = "mutated"
	first[0].ID = "hijacked"

	got, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, got.Tags)
	assert.Equal(t, []record{{ID: "1", Tags: []string{"go"}}}, s.List())

	got.Tags[0] = "again"
	again, _ := s.Get("1")
	assert.Equal(t, "go", again.Tags[0])
}

func TestStore_InsertedValueIsCopied(t *testing.T) {
	s := newStore(t)
	rec := record{ID: "1", Tags: []string{"a"}}
	require.NoError(t, s.Insert(rec))

	rec.Tags[0] = "changed"
	got, _ := s.Get("1")
	assert.Equal(t, "a", got.Tags[0])
}

func TestStore_DuplicateID(t *testing.T) {
	s := newStore(t, record{ID: "1"})

	err := s.Insert(record{ID: "1"})
	assert.True(t, errors.Is(err, memstore.ErrDuplicateID))
	assert.Equal(t, 1, s.Len())

	err = s.Seed([]record{{ID: "2"}, {ID: "2"}})
	assert.True(t, errors.Is(err, memstore.ErrDuplicateID))
}

func TestStore_UpdateInPlace(t *testing.T) {
	s := newStore(t, record{ID: "1"}, record{ID: "2"}, record{ID: "3"})

	got, err := s.Update("2", func(r *record) { r.Tags = append(r.Tags, "x") })
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.Tags)

	list := s.List()
	assert.Equal(t, "2", list[1].ID)
	assert.Equal(t, []string{"x"}, list[1].Tags)

	got.Tags[0] = "mutated"
	stored, err := s.Get("2")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, stored.Tags)
}

func TestStore_UpdateMissing(t *testing.T) {
	s := newStore(t, record{ID: "1"})

	called := false
	_, err := s.Update("missing", func(*record) { called = true })
	assert.ErrorIs(t, err, memstore.ErrNotFound)
	assert.False(t, called)
	assert.Equal(t, 1, s.Len())
}

func TestStore_UpdateRejectsIDChange(t *testing.T) {
	s := newStore(t, record{ID: "1", Tags: []string{"a"}})

	_, err := s.Update("1", func(r *record) {
		r.ID = "2"
		r.Tags = nil
	})
	assert.Error(t, err)

	stored, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, stored.Tags)
	assert.False(t, s.Exists("2"))
}

func TestStore_ConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	s := newStore(t, record{ID: "1"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Update("1", func(r *record) {
				r.Tags = append(r.Tags, fmt.Sprintf("t-%d", i))
			})
		}(i)
	}
	wg.Wait()

	stored, err := s.Get("1")
	require.NoError(t, err)
	assert.Len(t, stored.Tags, 50)
}

func TestStore_Delete(t *testing.T) {
	s := newStore(t, record{ID: "1"}, record{ID: "2"}, record{ID: "3"})

	require.NoError(t, s.Delete("2"))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Exists("2"))
	assert.Equal(t, "3", s.List()[1].ID)

	assert.ErrorIs(t, s.Delete("2"), memstore.ErrNotFound)
	assert.Equal(t, 2, s.Len())
}

func TestStore_GetMissing(t *testing.T) {
	s := newStore(t)
	_, err := s.Get("nonexistent")
	assert.ErrorIs(t, err, memstore.ErrNotFound)
}

func TestStore_ConcurrentInserts(t *testing.T) {
	s := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Insert(record{ID: fmt.Sprintf("id-%d", i)})
			_ = s.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
