package catalog

import (
	"errors"
	"fmt"

	"item-matcher/core/utils"
)

var (
	// ErrLoadFailure is returned when a catalog cannot be fetched or parsed.
	ErrLoadFailure = errors.New("catalog load failure")

	// ErrDuplicateID is returned when an identifier appears twice in one catalog.
	ErrDuplicateID = errors.New("duplicate catalog identifier")
)

// Item is a single catalog line item.
type Item struct {
	// ID is the normalized identifier, unique within its catalog.
	ID utils.ID `json:"id"`

	// Description is the free text used for matching.
	Description string `json:"description"`
}

// Catalog is an immutable ordered sequence of items with an identifier index.
type Catalog struct {
	items []Item
	index map[utils.ID]int
}

// New builds a catalog from items, preserving their order.
// It fails on empty or duplicate identifiers.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, len(items)),
		index: make(map[utils.ID]int, len(items)),
	}
	for i, item := range items {
		if item.ID.IsZero() {
			return nil, fmt.Errorf("%w: item %d has an empty id", utils.ErrInvalidID, i)
		}
		if _, exists := c.index[item.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
		}
		c.items[i] = item
		c.index[item.ID] = i
	}
	return c, nil
}

// Empty returns a catalog without items.
func Empty() *Catalog {
	c, _ := New(nil)
	return c
}

// Len returns the number of items. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of the items in insertion order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the item at position i.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Get returns the item with the given identifier.
func (c *Catalog) Get(id utils.ID) (Item, bool) {
	i := c.IndexOf(id)
	if i < 0 {
		return Item{}, false
	}
	return c.items[i], true
}

// Contains reports whether the identifier exists in the catalog.
func (c *Catalog) Contains(id utils.ID) bool {
	return c.IndexOf(id) >= 0
}

// IndexOf returns the position of the identifier, or -1.
func (c *Catalog) IndexOf(id utils.ID) int {
	if c == nil {
		return -1
	}
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// IDs returns the identifiers in insertion order.
func (c *Catalog) IDs() []utils.ID {
	if c == nil {
		return nil
	}
	ids := make([]utils.ID, len(c.items))
	for i, item := range c.items {
		ids[i] = item.ID
	}
	return ids
}

// Pair bundles the source and candidate catalogs of one session.
type Pair struct {
	Source    *Catalog
	Candidate *Catalog
}
