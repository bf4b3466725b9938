package catalog_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"item-matcher/core/catalog"
	"item-matcher/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	sourcePath := writeFile(t, dir, "shamrock.json", `[{"id": 1, "description": "Tomato Sauce 6oz"}]`)

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "catalogs", "usfoods.ndjson", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"id": 9, "description": "tomato sauce 6oz"}`))), nil)

	loader := &catalog.Loader{
		Source:    catalog.FileSource{Path: sourcePath},
		Candidate: catalog.ObjectSource{Client: mockClient, Bucket: "catalogs", Object: "usfoods.ndjson"},
	}

	pair, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, pair.Source.Len())
	assert.Equal(t, 1, pair.Candidate.Len())
	assert.True(t, pair.Candidate.Contains("9"))
	mockClient.AssertExpectations(t)
}

func TestLoader_LoadFailure(t *testing.T) {
	dir := t.TempDir()
	goodPath := writeFile(t, dir, "good.json", `[]`)
	badPath := writeFile(t, dir, "bad.json", `not json`)

	tests := []struct {
		name   string
		loader *catalog.Loader
	}{
		{
			name: "Missing source file",
			loader: &catalog.Loader{
				Source:    catalog.FileSource{Path: filepath.Join(dir, "missing.json")},
				Candidate: catalog.FileSource{Path: goodPath},
			},
		},
		{
			name: "Unparsable candidate",
			loader: &catalog.Loader{
				Source:    catalog.FileSource{Path: goodPath},
				Candidate: catalog.FileSource{Path: badPath},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := tt.loader.Load(context.Background())
			assert.ErrorIs(t, err, catalog.ErrLoadFailure)
			assert.Nil(t, pair)
		})
	}
}

func TestLoader_ObjectError(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "catalogs", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	loader := &catalog.Loader{
		Source:    catalog.ObjectSource{Client: mockClient, Bucket: "catalogs", Object: "a.json"},
		Candidate: catalog.ObjectSource{Client: mockClient, Bucket: "catalogs", Object: "b.json"},
	}

	_, err := loader.Load(context.Background())
	assert.ErrorIs(t, err, catalog.ErrLoadFailure)
	assert.Contains(t, err.Error(), "object:catalogs/a.json")
}

// countingSource counts how many times it was opened.
type countingSource struct {
	name  string
	body  string
	opens atomic.Int32
}

func (s *countingSource) Name() string { return s.name }

func (s *countingSource) Open(ctx context.Context) (io.ReadCloser, error) {
	s.opens.Add(1)
	time.Sleep(10 * time.Millisecond)
	return io.NopCloser(bytes.NewReader([]byte(s.body))), nil
}

func TestCache_GetOrLoad(t *testing.T) {
	source := &countingSource{name: "s", body: `[{"id": 1, "description": "a"}]`}
	candidate := &countingSource{name: "c", body: `[{"id": 2, "description": "b"}]`}
	loader := &catalog.Loader{Source: source, Candidate: candidate}

	t.Run("SharesConcurrentLoads", func(t *testing.T) {
		cache := catalog.NewCache(time.Minute)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pair, err := cache.GetOrLoad(context.Background(), loader)
				assert.NoError(t, err)
				assert.Equal(t, 1, pair.Source.Len())
			}()
		}
		wg.Wait()

		_, err := cache.GetOrLoad(context.Background(), loader)
		require.NoError(t, err)
		assert.Equal(t, int32(1), source.opens.Load())
	})

	t.Run("InvalidateForcesReload", func(t *testing.T) {
		source.opens.Store(0)
		cache := catalog.NewCache(time.Minute)

		_, err := cache.GetOrLoad(context.Background(), loader)
		require.NoError(t, err)
		cache.Invalidate(loader)
		_, err = cache.GetOrLoad(context.Background(), loader)
		require.NoError(t, err)

		assert.Equal(t, int32(2), source.opens.Load())
	})

	t.Run("ZeroTTLDisablesCaching", func(t *testing.T) {
		source.opens.Store(0)
		cache := catalog.NewCache(0)

		_, err := cache.GetOrLoad(context.Background(), loader)
		require.NoError(t, err)
		_, err = cache.GetOrLoad(context.Background(), loader)
		require.NoError(t, err)

		assert.Equal(t, int32(2), source.opens.Load())
	})
}
