package reconcile

import (
	"context"
	"fmt"
	"io"
	"sync"

	"item-matcher/core/catalog"
	"item-matcher/core/utils"

	"go.uber.org/zap"
)

// Options configures a matching session.
type Options struct {
	// Catalogs are the source and candidate catalogs. Nil catalogs are treated as empty.
	Catalogs *catalog.Pair

	// Slot persists the Ledger. Required.
	Slot Slot

	// Scorer ranks suggestions. Defaults to the exact-prefix scorer.
	Scorer Scorer

	// Policy controls auto-matching. Nil uses DefaultPolicy.
	Policy *AutoMatchPolicy

	// SuggestLimit is the default shortlist length.
	SuggestLimit int

	// Logger receives session events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Engine is a matching session: it owns the Ledger and serializes every mutation together with
// its write-through and statistics refresh, so no caller observes a partially applied change.
type Engine struct {
	mu           sync.Mutex
	source       *catalog.Catalog
	candidates   *catalog.Catalog
	ledger       *Ledger
	slot         Slot
	scorer       Scorer
	matcher      *ExactPrefixScorer
	policy       AutoMatchPolicy
	suggestLimit int
	logger       *zap.Logger

	subMu       sync.RWMutex
	subscribers []func(Change)
}

// Open starts a session: it reads the Ledger from the slot once, runs auto-match over items
// without a decision, and writes the Ledger back if auto-match decided anything.
func Open(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Slot == nil {
		return nil, fmt.Errorf("reconcile: a ledger slot is required")
	}

	e := &Engine{
		source:       catalog.Empty(),
		candidates:   catalog.Empty(),
		slot:         opts.Slot,
		scorer:       opts.Scorer,
		policy:       DefaultPolicy(),
		suggestLimit: opts.SuggestLimit,
		logger:       opts.Logger,
	}
	if opts.Catalogs != nil {
		if opts.Catalogs.Source != nil {
			e.source = opts.Catalogs.Source
		}
		if opts.Catalogs.Candidate != nil {
			e.candidates = opts.Catalogs.Candidate
		}
	}
	if opts.Policy != nil {
		e.policy = *opts.Policy
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.suggestLimit <= 0 {
		e.suggestLimit = DefaultSuggestLimit
	}
	e.matcher = NewExactPrefixScorer(e.policy.PrefixLen)
	if e.scorer == nil {
		e.scorer = NewExactPrefixScorer(e.policy.PrefixLen)
	}

	ledger, err := LoadLedger(ctx, e.slot, e.logger)
	if err != nil {
		return nil, err
	}
	e.ledger = ledger

	e.logger.Info("Matching session opened",
		zap.Int("source_items", e.source.Len()),
		zap.Int("candidate_items", e.candidates.Len()),
		zap.Int("ledger_entries", ledger.Len()),
		zap.String("scorer", e.scorer.Name()),
	)

	if _, err := e.AutoMatch(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Subscribe registers a callback invoked after every committed Ledger change.
// Callbacks run outside the session lock and may query the engine.
func (e *Engine) Subscribe(fn func(Change)) {
	e.subMu.Lock()
	e.subscribers = append(e.subscribers, fn)
	e.subMu.Unlock()
}

func (e *Engine) notify(c Change) {
	e.subMu.RLock()
	subs := make([]func(Change), len(e.subscribers))
	copy(subs, e.subscribers)
	e.subMu.RUnlock()

	for _, fn := range subs {
		fn(c)
	}
}

// commit persists next and swaps it in. Must be called with e.mu held.
// On a write failure the current ledger is left untouched.
func (e *Engine) commit(ctx context.Context, next *Ledger) error {
	if err := SaveLedger(ctx, e.slot, next); err != nil {
		return err
	}
	e.ledger = next
	return nil
}

// mutate applies fn to a copy of the ledger, writes it through and publishes the change.
// fn runs under the session lock and may reject the change by returning an error.
func (e *Engine) mutate(ctx context.Context, kind ChangeKind, sourceID utils.ID, fn func(l *Ledger) error) (Stats, error) {
	e.mu.Lock()
	next := e.ledger.Clone()
	if err := fn(next); err != nil {
		e.mu.Unlock()
		return Stats{}, err
	}
	if err := e.commit(ctx, next); err != nil {
		e.mu.Unlock()
		return Stats{}, err
	}
	stats := e.statsLocked()
	e.mu.Unlock()

	e.notify(Change{Kind: kind, SourceID: sourceID, Stats: stats})
	return stats, nil
}

// AutoMatch decides every source item without a Ledger entry. Existing decisions, manual or
// automatic, are never overwritten, so running it again is a no-op.
func (e *Engine) AutoMatch(ctx context.Context) (AutoMatchResult, error) {
	e.mu.Lock()
	next := e.ledger.Clone()
	result := autoMatch(next, e.matcher, e.policy, e.source, e.candidates)
	if !result.Changed() {
		e.mu.Unlock()
		return result, nil
	}
	if err := e.commit(ctx, next); err != nil {
		e.mu.Unlock()
		return AutoMatchResult{}, err
	}
	stats := e.statsLocked()
	e.mu.Unlock()

	e.logger.Info("Auto-match completed",
		zap.Int("confirmed", result.Confirmed),
		zap.Int("rejected", result.Rejected),
		zap.Int("unresolved", result.Unresolved),
		zap.Int("skipped", result.Skipped),
	)
	e.notify(Change{Kind: ChangeAutoMatch, Stats: stats})
	return result, nil
}

// Confirm matches a source item to a candidate, overwriting any previous decision.
func (e *Engine) Confirm(ctx context.Context, sourceID, candidateID utils.ID) (Stats, error) {
	return e.mutate(ctx, ChangeConfirm, sourceID, func(l *Ledger) error {
		if !e.source.Contains(sourceID) {
			return fmt.Errorf("%w: %s", ErrUnknownSource, sourceID)
		}
		if !e.candidates.Contains(candidateID) {
			return fmt.Errorf("%w: %s", ErrUnknownCandidate, candidateID)
		}
		l.Set(sourceID, MatchedTo(candidateID))
		return nil
	})
}

// Reject records an explicit no-match for a source item, overwriting any previous decision.
func (e *Engine) Reject(ctx context.Context, sourceID utils.ID) (Stats, error) {
	return e.mutate(ctx, ChangeReject, sourceID, func(l *Ledger) error {
		if !e.source.Contains(sourceID) {
			return fmt.Errorf("%w: %s", ErrUnknownSource, sourceID)
		}
		l.Set(sourceID, NoMatch())
		return nil
	})
}

// Reset removes the decision of a source item, returning it to pending.
func (e *Engine) Reset(ctx context.Context, sourceID utils.ID) (Stats, error) {
	return e.mutate(ctx, ChangeReset, sourceID, func(l *Ledger) error {
		if !e.source.Contains(sourceID) {
			return fmt.Errorf("%w: %s", ErrUnknownSource, sourceID)
		}
		l.Delete(sourceID)
		return nil
	})
}

// Clear empties the Ledger and its slot. Callers must obtain confirmation before calling it.
func (e *Engine) Clear(ctx context.Context) (Stats, error) {
	e.mu.Lock()
	if err := e.slot.Clear(ctx); err != nil {
		e.mu.Unlock()
		return Stats{}, fmt.Errorf("failed to clear ledger slot: %w", err)
	}
	e.ledger = NewLedger()
	stats := e.statsLocked()
	e.mu.Unlock()

	e.logger.Warn("Ledger cleared")
	e.notify(Change{Kind: ChangeClear, Stats: stats})
	return stats, nil
}

// Import replaces the whole Ledger with the content of r (exchange format).
// r is parsed completely before anything changes; on ErrImportParse the Ledger is untouched.
func (e *Engine) Import(ctx context.Context, r io.Reader) (Stats, error) {
	records, err := DecodeRecords(r)
	if err != nil {
		return Stats{}, err
	}
	return e.ReplaceAll(ctx, records)
}

// ReplaceAll replaces the whole Ledger with records and writes it through.
func (e *Engine) ReplaceAll(ctx context.Context, records []Record) (Stats, error) {
	stats, err := e.mutate(ctx, ChangeImport, "", func(l *Ledger) error {
		l.ReplaceAll(records)
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	e.logger.Info("Ledger replaced", zap.Int("records", len(records)))
	return stats, nil
}

// SetCatalogs swaps in freshly loaded catalogs and auto-matches any new source items.
// Decisions pointing at candidates that disappeared are kept and reported as stale.
func (e *Engine) SetCatalogs(ctx context.Context, pair *catalog.Pair) (AutoMatchResult, error) {
	e.mu.Lock()
	if pair.Source != nil {
		e.source = pair.Source
	}
	if pair.Candidate != nil {
		e.candidates = pair.Candidate
	}
	stats := e.statsLocked()
	e.mu.Unlock()

	e.notify(Change{Kind: ChangeCatalogs, Stats: stats})
	return e.AutoMatch(ctx)
}

func (e *Engine) statsLocked() Stats {
	return e.ledger.ComputeStats(e.source.IDs())
}

// Stats returns the current statistics.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statsLocked()
}

// Status returns the derived status of a source item.
func (e *Engine) Status(sourceID utils.ID) (Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.source.Contains(sourceID) {
		return "", fmt.Errorf("%w: %s", ErrUnknownSource, sourceID)
	}
	return e.ledger.Status(sourceID), nil
}

// View returns the read model of a source item.
func (e *Engine) View(sourceID utils.ID) (View, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	item, ok := e.source.Get(sourceID)
	if !ok {
		return View{}, fmt.Errorf("%w: %s", ErrUnknownSource, sourceID)
	}
	return buildView(item, e.ledger, e.candidates), nil
}

// Filter returns the views of source items passing f, in source catalog order.
func (e *Engine) Filter(f StatusFilter) []View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return filterViews(f, e.source, e.candidates, e.ledger)
}

// Suggest returns the candidate shortlist of a source item. limit <= 0 uses the session default.
func (e *Engine) Suggest(sourceID utils.ID, limit int) ([]Suggestion, error) {
	e.mu.Lock()
	item, ok := e.source.Get(sourceID)
	candidates := e.candidates
	e.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, sourceID)
	}
	if limit <= 0 {
		limit = e.suggestLimit
	}
	return Suggest(e.scorer, item, candidates, limit), nil
}

// Records returns the exchange form of the current Ledger.
func (e *Engine) Records() []Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Records()
}

// Ledger returns a copy of the current Ledger.
func (e *Engine) Ledger() *Ledger {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Clone()
}

// Catalogs returns the catalogs of the session.
func (e *Engine) Catalogs() *catalog.Pair {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &catalog.Pair{Source: e.source, Candidate: e.candidates}
}

// ExportJSON writes the Ledger in the exchange format.
func (e *Engine) ExportJSON(w io.Writer) error {
	return EncodeRecords(w, e.Records())
}

// ExportCSV writes one row per source item using layout.
func (e *Engine) ExportCSV(w io.Writer, layout CSVLayout) error {
	e.mu.Lock()
	source, candidates, ledger := e.source, e.candidates, e.ledger.Clone()
	e.mu.Unlock()
	return WriteCSV(w, layout, source, candidates, ledger)
}
