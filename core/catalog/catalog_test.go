package catalog_test

import (
	"strings"
	"testing"

	"item-matcher/core/catalog"
	"item-matcher/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("PreservesOrder", func(t *testing.T) {
		c, err := catalog.New([]catalog.Item{
			{ID: "3", Description: "c"},
			{ID: "1", Description: "a"},
			{ID: "2", Description: "b"},
		})
		require.NoError(t, err)
		assert.Equal(t, []utils.ID{"3", "1", "2"}, c.IDs())
		assert.Equal(t, 1, c.IndexOf("1"))
		assert.Equal(t, -1, c.IndexOf("9"))
	})

	t.Run("DuplicateID", func(t *testing.T) {
		_, err := catalog.New([]catalog.Item{{ID: "1"}, {ID: "1"}})
		assert.ErrorIs(t, err, catalog.ErrDuplicateID)
	})

	t.Run("EmptyID", func(t *testing.T) {
		_, err := catalog.New([]catalog.Item{{ID: ""}})
		assert.ErrorIs(t, err, utils.ErrInvalidID)
	})

	t.Run("ItemsIsACopy", func(t *testing.T) {
		c, err := catalog.New([]catalog.Item{{ID: "1", Description: "a"}})
		require.NoError(t, err)
		items := c.Items()
		items[0].Description = "changed"
		got, ok := c.Get("1")
		require.True(t, ok)
		assert.Equal(t, "a", got.Description)
	})

	t.Run("NilCatalogIsEmpty", func(t *testing.T) {
		var c *catalog.Catalog
		assert.Equal(t, 0, c.Len())
		assert.False(t, c.Contains("1"))
		assert.Nil(t, c.Items())
	})
}

func TestDecode(t *testing.T) {
	t.Run("JSONArray", func(t *testing.T) {
		c, err := catalog.Decode(strings.NewReader(`[
			{"id": 1, "description": "Tomato Sauce 6oz"},
			{"id": "2", "description": "Olive Oil"}
		]`))
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())
		assert.Equal(t, catalog.Item{ID: "1", Description: "Tomato Sauce 6oz"}, c.At(0))
		assert.Equal(t, utils.ID("2"), c.At(1).ID)
	})

	t.Run("NewlineDelimited", func(t *testing.T) {
		c, err := catalog.Decode(strings.NewReader(
			"{\"id\": 9, \"description\": \"tomato sauce 6oz\"}\n\n{\"id\": 10, \"description\": \"salt\"}\n"))
		require.NoError(t, err)
		assert.Equal(t, []utils.ID{"9", "10"}, c.IDs())
	})

	t.Run("EmptyInput", func(t *testing.T) {
		c, err := catalog.Decode(strings.NewReader("  \n"))
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("NumericAndStringIDsCollide", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader(`[{"id": 1}, {"id": "1"}]`))
		assert.ErrorIs(t, err, catalog.ErrLoadFailure)
		assert.ErrorIs(t, err, catalog.ErrDuplicateID)
	})

	t.Run("MalformedArray", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader(`[{"id": 1,`))
		assert.ErrorIs(t, err, catalog.ErrLoadFailure)
	})

	t.Run("MalformedLine", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader("{\"id\": 1}\n{oops}\n"))
		assert.ErrorIs(t, err, catalog.ErrLoadFailure)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("MissingID", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader(`[{"description": "no id"}]`))
		assert.ErrorIs(t, err, catalog.ErrLoadFailure)
	})
}
