package reconcile

import (
	"fmt"

	"item-matcher/core/catalog"
)

// StatusFilter selects source items by derived status.
type StatusFilter string

const (
	// FilterAll matches every item.
	FilterAll StatusFilter = "all"
	// FilterPending matches items without a decision.
	FilterPending StatusFilter = StatusFilter(StatusPending)
	// FilterMatched matches confirmed items.
	FilterMatched StatusFilter = StatusFilter(StatusMatched)
	// FilterNoMatch matches rejected items.
	FilterNoMatch StatusFilter = StatusFilter(StatusNoMatch)
)

// ParseStatusFilter validates a filter name. Empty means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending, FilterMatched, FilterNoMatch:
		return StatusFilter(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
}

// Matches reports whether a status passes the filter.
func (f StatusFilter) Matches(s Status) bool {
	return f == FilterAll || Status(f) == s
}

// buildView resolves the read model of one source item.
func buildView(item catalog.Item, ledger *Ledger, candidates *catalog.Catalog) View {
	v := View{Item: item, Status: StatusPending}

	d, ok := ledger.Get(item.ID)
	if !ok {
		return v
	}
	v.Status = d.Status()

	if id, matched := d.Candidate(); matched {
		v.CandidateID = &id
		if c, found := candidates.Get(id); found {
			v.Candidate = &c
		} else {
			v.Stale = true
		}
	}
	return v
}

// filterViews projects the source catalog through a filter, keeping catalog order.
func filterViews(f StatusFilter, source, candidates *catalog.Catalog, ledger *Ledger) []View {
	views := make([]View, 0, source.Len())
	for i := 0; i < source.Len(); i++ {
		item := source.At(i)
		if !f.Matches(ledger.Status(item.ID)) {
			continue
		}
		views = append(views, buildView(item, ledger, candidates))
	}
	return views
}
