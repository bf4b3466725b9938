// Package reconcile implements the matching and reconciliation core: scoring candidate items
// against a source item, suggesting shortlists, holding match decisions in a Ledger, and
// running the auto-match policy and human decisions as atomic, persisted units of work.
//
// # Architecture
//
// The reconcile system consists of five components:
//
// 1. Scorer: a pure, case-insensitive similarity function. Two strategies are available
// (exact-then-prefix and token overlap) and are selected by configuration.
//
// 2. Suggester: ranks the candidate catalog for one source item, dropping zero scores and
// keeping candidate-catalog order between equal scores.
//
// 3. Ledger: the mapping from source identifier to Decision (explicit no-match or a candidate
// identifier). Absence of an entry means the item is still pending.
//
// 4. Engine: the session object. It owns the Ledger, runs auto-match over undecided items at
// load time, and applies Confirm/Reject/Reset/Import/Clear under a mutex, writing the Ledger
// through to its Slot before the change becomes visible.
//
// 5. Codec: the exchange format shared by the persistence slot and JSON export
// ({"sourceId": candidateId | null}), plus CSV export.
//
// # Status Model
//
// Each source item has exactly one derived status:
//   - pending: no Ledger entry.
//   - matched: the entry holds a candidate identifier (possibly stale, see View.Stale).
//   - no-match: the entry holds the no-match sentinel.
//
// # Usage Example
//
//	engine, err := reconcile.Open(ctx, reconcile.Options{
//	    Catalogs: pair,
//	    Slot:     slot,
//	    Logger:   logger,
//	})
//
//	_, err = engine.Confirm(ctx, "2", "9")
//	stats := engine.Stats()
package reconcile
