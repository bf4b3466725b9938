package reconcile

import (
	"item-matcher/core/catalog"
)

// decideAuto applies the auto-match policy to one source item: the best exact-prefix
// suggestion wins (exact match first, then the first candidate in catalog order containing
// the description prefix). Without evidence the item is rejected or left pending.
func decideAuto(matcher *ExactPrefixScorer, policy AutoMatchPolicy, item catalog.Item, candidates *catalog.Catalog) (Decision, bool) {
	if best := Suggest(matcher, item, candidates, 1); len(best) > 0 {
		return MatchedTo(best[0].Item.ID), true
	}
	if policy.RejectUnmatched {
		return NoMatch(), true
	}
	return Decision{}, false
}

// autoMatch runs the policy over every source item without a decision and records the
// outcomes in ledger. Items that already have a decision are never touched.
func autoMatch(ledger *Ledger, matcher *ExactPrefixScorer, policy AutoMatchPolicy, source, candidates *catalog.Catalog) AutoMatchResult {
	var result AutoMatchResult
	for i := 0; i < source.Len(); i++ {
		item := source.At(i)
		if _, decided := ledger.Get(item.ID); decided {
			result.Skipped++
			continue
		}

		d, ok := decideAuto(matcher, policy, item, candidates)
		switch {
		case !ok:
			result.Unresolved++
		case d.IsNoMatch():
			ledger.Set(item.ID, d)
			result.Rejected++
		default:
			ledger.Set(item.ID, d)
			result.Confirmed++
		}
	}
	return result
}
