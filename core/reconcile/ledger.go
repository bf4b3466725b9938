package reconcile

import (
	"sort"

	"item-matcher/core/utils"
)

// Ledger maps source identifiers to match decisions. It is not safe for concurrent use;
// the Engine serializes access to the Ledger it owns.
type Ledger struct {
	entries map[utils.ID]Decision
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[utils.ID]Decision)}
}

// Get returns the decision for a source item, if any.
func (l *Ledger) Get(sourceID utils.ID) (Decision, bool) {
	d, ok := l.entries[sourceID]
	return d, ok
}

// Status returns the derived status of a source item.
func (l *Ledger) Status(sourceID utils.ID) Status {
	d, ok := l.entries[sourceID]
	if !ok {
		return StatusPending
	}
	return d.Status()
}

// Set stores a decision, overwriting any existing one.
func (l *Ledger) Set(sourceID utils.ID, d Decision) {
	l.entries[sourceID] = d
}

// Delete removes the decision, returning the item to pending.
func (l *Ledger) Delete(sourceID utils.ID) {
	delete(l.entries, sourceID)
}

// Clear removes every decision.
func (l *Ledger) Clear() {
	l.entries = make(map[utils.ID]Decision)
}

// Len returns the number of decisions.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// ReplaceAll replaces the whole content with records. Nothing is merged with existing entries.
// When a source identifier repeats, the last record wins.
func (l *Ledger) ReplaceAll(records []Record) {
	entries := make(map[utils.ID]Decision, len(records))
	for _, r := range records {
		entries[r.SourceID] = r.Decision()
	}
	l.entries = entries
}

// Records returns the exchange form of the ledger, ordered by source identifier.
func (l *Ledger) Records() []Record {
	ids := make([]utils.ID, 0, len(l.entries))
	for id := range l.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Less(ids[j])
	})

	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		r := Record{SourceID: id}
		if candidate, ok := l.entries[id].Candidate(); ok {
			r.CandidateID = &candidate
		}
		records = append(records, r)
	}
	return records
}

// Clone returns an independent copy.
func (l *Ledger) Clone() *Ledger {
	entries := make(map[utils.ID]Decision, len(l.entries))
	for id, d := range l.entries {
		entries[id] = d
	}
	return &Ledger{entries: entries}
}

// Equal reports whether both ledgers hold the same decisions.
func (l *Ledger) Equal(other *Ledger) bool {
	if len(l.entries) != len(other.entries) {
		return false
	}
	for id, d := range l.entries {
		if od, ok := other.entries[id]; !ok || od != d {
			return false
		}
	}
	return true
}

// ComputeStats counts decisions over the given source items. Entries for identifiers outside
// sourceIDs are kept in the ledger but not counted, so Matched+Rejected+Pending == Total holds.
func (l *Ledger) ComputeStats(sourceIDs []utils.ID) Stats {
	stats := Stats{Total: len(sourceIDs)}
	for _, id := range sourceIDs {
		d, ok := l.entries[id]
		switch {
		case !ok:
			continue
		case d.IsNoMatch():
			stats.Rejected++
		default:
			stats.Matched++
		}
	}
	stats.Pending = stats.Total - stats.Matched - stats.Rejected
	return stats
}
