package reconcile

import (
	"testing"

	"item-matcher/core/catalog"
	"item-matcher/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T, items ...catalog.Item) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(items)
	require.NoError(t, err)
	return c
}

func ids(suggestions []Suggestion) []utils.ID {
	out := make([]utils.ID, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Item.ID
	}
	return out
}

func TestSuggest(t *testing.T) {
	candidates := mustCatalog(t,
		catalog.Item{ID: "1", Description: "Tomato Paste"},
		catalog.Item{ID: "2", Description: "Tomato Sauce 6oz can"},
		catalog.Item{ID: "3", Description: "tomato sauce 6oz"},
		catalog.Item{ID: "4", Description: "Olive Oil"},
		catalog.Item{ID: "5", Description: "Sauce Tomato 6oz"},
	)
	item := catalog.Item{ID: "s1", Description: "Tomato Sauce 6oz"}

	t.Run("TokenOverlapRanksAndKeepsCatalogOrderOnTies", func(t *testing.T) {
		got := Suggest(TokenOverlapScorer{}, item, candidates, 5)
		assert.Equal(t, []utils.ID{"2", "3", "5", "1"}, ids(got))
		assert.Equal(t, 3, got[0].Score)
		assert.Equal(t, 1, got[3].Score)
	})

	t.Run("ExactBeatsPrefix", func(t *testing.T) {
		got := Suggest(NewExactPrefixScorer(10), item, candidates, 5)
		assert.Equal(t, []utils.ID{"3", "2"}, ids(got))
	})

	t.Run("Limit", func(t *testing.T) {
		got := Suggest(TokenOverlapScorer{}, item, candidates, 2)
		assert.Equal(t, []utils.ID{"2", "3"}, ids(got))
	})

	t.Run("DefaultLimit", func(t *testing.T) {
		many := make([]catalog.Item, 8)
		for i := range many {
			many[i] = catalog.Item{ID: utils.MustID(i + 1), Description: "tomato"}
		}
		got := Suggest(TokenOverlapScorer{}, catalog.Item{Description: "tomato"}, mustCatalog(t, many...), 0)
		assert.Len(t, got, DefaultSuggestLimit)
	})

	t.Run("NoEvidenceIsEmptyNotError", func(t *testing.T) {
		got := Suggest(TokenOverlapScorer{}, catalog.Item{Description: "Xylophone Wax"}, candidates, 5)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("NoCandidates", func(t *testing.T) {
		assert.Empty(t, Suggest(TokenOverlapScorer{}, item, nil, 5))
		assert.Empty(t, Suggest(TokenOverlapScorer{}, item, catalog.Empty(), 5))
	})
}

func TestSuggest_Bound(t *testing.T) {
	candidates := mustCatalog(t,
		catalog.Item{ID: "1", Description: "a b c"},
		catalog.Item{ID: "2", Description: "b c d"},
		catalog.Item{ID: "3", Description: "x y z"},
		catalog.Item{ID: "4", Description: "c"},
	)
	queries := []string{"a b c", "c", "z", "q", ""}

	for _, scorer := range []Scorer{NewExactPrefixScorer(1), TokenOverlapScorer{}} {
		for _, q := range queries {
			for limit := 1; limit <= 4; limit++ {
				got := Suggest(scorer, catalog.Item{Description: q}, candidates, limit)
				assert.LessOrEqual(t, len(got), limit)
				for _, s := range got {
					assert.Greater(t, s.Score, 0)
				}
			}
		}
	}
}
