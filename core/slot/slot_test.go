package slot

import (
	"context"
	"path/filepath"
	"testing"

	"item-matcher/core/database"
	"item-matcher/core/reconcile"
	"item-matcher/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseSlot runs the shared Slot contract against a backend.
func exerciseSlot(t *testing.T, s reconcile.Slot) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Read(ctx)
	assert.ErrorIs(t, err, reconcile.ErrSlotEmpty)

	require.NoError(t, s.Write(ctx, []byte(`{"1": 9}`)))
	data, err := s.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": 9}`, string(data))

	require.NoError(t, s.Write(ctx, []byte(`{"1": null}`)))
	data, err = s.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": null}`, string(data))

	require.NoError(t, s.Clear(ctx))
	_, err = s.Read(ctx)
	assert.ErrorIs(t, err, reconcile.ErrSlotEmpty)

	require.NoError(t, s.Clear(ctx), "clearing an empty slot")
}

func TestMemorySlot(t *testing.T) {
	exerciseSlot(t, NewMemorySlot())
}

func TestFileSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.json")
	exerciseSlot(t, NewFileSlot(path))
}

func TestDBSlot_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	s, err := NewDBSlot(db, "matcher-progress")
	require.NoError(t, err)
	exerciseSlot(t, s)

	t.Run("SlotsAreIndependent", func(t *testing.T) {
		a, err := NewDBSlot(db, "a")
		require.NoError(t, err)
		b, err := NewDBSlot(db, "b")
		require.NoError(t, err)

		require.NoError(t, a.Write(context.Background(), []byte(`{"1": 2}`)))
		_, err = b.Read(context.Background())
		assert.ErrorIs(t, err, reconcile.ErrSlotEmpty)
	})
}

func TestNew(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "p.json")
		s, err := New(Config{Driver: DriverFile, Path: path}, Deps{})
		require.NoError(t, err)
		fileSlot, ok := s.(*FileSlot)
		require.True(t, ok)
		assert.Equal(t, path, fileSlot.Path())
	})

	t.Run("FileDefaultsToKey", func(t *testing.T) {
		s, err := New(Config{Driver: DriverFile}, Deps{})
		require.NoError(t, err)
		assert.Equal(t, DefaultKey+".json", s.(*FileSlot).Path())
	})

	t.Run("Memory", func(t *testing.T) {
		s, err := New(Config{Driver: DriverMemory}, Deps{})
		require.NoError(t, err)
		assert.IsType(t, &MemorySlot{}, s)
	})

	t.Run("Storage", func(t *testing.T) {
		s, err := New(Config{Driver: DriverStorage}, Deps{Storage: new(mocks.Client), Bucket: "b"})
		require.NoError(t, err)
		objectSlot, ok := s.(*ObjectSlot)
		require.True(t, ok)
		assert.Equal(t, DefaultKey, objectSlot.object)
	})

	t.Run("MissingDeps", func(t *testing.T) {
		_, err := New(Config{Driver: DriverDatabase}, Deps{})
		assert.Error(t, err)
		_, err = New(Config{Driver: DriverStorage}, Deps{})
		assert.Error(t, err)
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		_, err := New(Config{Driver: "redis"}, Deps{})
		assert.ErrorIs(t, err, ErrUnknownDriver)
		assert.False(t, Config{Driver: "redis"}.IsValidDriver())
	})
}
