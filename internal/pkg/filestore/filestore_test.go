package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

func (r *testRecord) RecordID() uint32 { return r.ID }

func TestLoadOrInit(t *testing.T) {
	t.Run("creates the directory when missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "store")
		s, err := LoadOrInit[*testRecord](dir)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("skips foreign files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notanid.json"), []byte("{}"), 0o644))

		s, err := LoadOrInit[*testRecord](dir)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	})
}

func TestStore_InsertAndReload(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadOrInit[*testRecord](dir)
	require.NoError(t, err)

	require.NoError(t, s.Insert(&testRecord{ID: 1, Name: "one"}))
	require.NoError(t, s.Insert(&testRecord{ID: 2, Name: "two"}))

	t.Run("duplicate id is a conflict", func(t *testing.T) {
		err := s.Insert(&testRecord{ID: 1, Name: "dup"})
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("records survive a reload in id order", func(t *testing.T) {
		reloaded, err := LoadOrInit[*testRecord](dir)
		require.NoError(t, err)

		all := reloaded.All()
		require.Len(t, all, 2)
		assert.Equal(t, "one", all[0].Name)
		assert.Equal(t, "two", all[1].Name)
	})

	t.Run("record files are human inspectable json", func(t *testing.T) {
		b, err := os.ReadFile(filepath.Join(dir, "1.json"))
		require.NoError(t, err)
		assert.Contains(t, string(b), "\"name\": \"one\"")
	})
}

func TestStore_FindByID(t *testing.T) {
	s, err := LoadOrInit[*testRecord](t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Insert(&testRecord{ID: 7, Name: "seven"}))

	rec, err := s.FindByID(7)
	require.NoError(t, err)
	assert.Equal(t, "seven", rec.Name)

	_, err = s.FindByID(8)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Save(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadOrInit[*testRecord](dir)
	require.NoError(t, err)
	require.NoError(t, s.Insert(&testRecord{ID: 3, Name: "before"}))

	rec, err := s.FindByID(3)
	require.NoError(t, err)
	rec.Name = "after"
	require.NoError(t, s.Save(rec))

	reloaded, err := LoadOrInit[*testRecord](dir)
	require.NoError(t, err)
	got, err := reloaded.FindByID(3)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)

	t.Run("saving an unknown record fails", func(t *testing.T) {
		err := s.Save(&testRecord{ID: 99})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_InsertionOrder(t *testing.T) {
	s, err := LoadOrInit[*testRecord](t.TempDir())
	require.NoError(t, err)

	// Inserts out of id order; iteration keeps insertion order.
	require.NoError(t, s.Insert(&testRecord{ID: 5}))
	require.NoError(t, s.Insert(&testRecord{ID: 2}))
	require.NoError(t, s.Insert(&testRecord{ID: 9}))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, uint32(5), all[0].ID)
	assert.Equal(t, uint32(2), all[1].ID)
	assert.Equal(t, uint32(9), all[2].ID)
}
