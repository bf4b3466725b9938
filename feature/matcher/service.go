package matcher

import (
	"context"
	"errors"
	"fmt"
	"io"

	"item-matcher/core/catalog"
	"item-matcher/core/reconcile"
	"item-matcher/core/utils"

	"go.uber.org/zap"
)

// ErrReloadUnavailable is returned by Reload when the session has no catalog loader.
var ErrReloadUnavailable = errors.New("catalog reload is not configured")

// Service wraps a matching session for the HTTP layer.
type Service struct {
	engine    *reconcile.Engine
	loader    *catalog.Loader
	cache     *catalog.Cache
	logger    *zap.Logger
	csvLayout reconcile.CSVLayout
}

// NewService creates a new matcher service. loader and cache may be nil, which disables Reload.
func NewService(engine *reconcile.Engine, loader *catalog.Loader, cache *catalog.Cache, logger *zap.Logger, csvLayout reconcile.CSVLayout) *Service {
	if csvLayout == "" {
		csvLayout = reconcile.CSVLayoutFull
	}
	s := &Service{
		engine:    engine,
		loader:    loader,
		cache:     cache,
		logger:    logger,
		csvLayout: csvLayout,
	}
	engine.Subscribe(s.onChange)
	return s
}

func (s *Service) onChange(c reconcile.Change) {
	s.logger.Debug("Ledger changed",
		zap.String("kind", string(c.Kind)),
		zap.String("source_id", c.SourceID.String()),
		zap.Int("matched", c.Stats.Matched),
		zap.Int("rejected", c.Stats.Rejected),
		zap.Int("pending", c.Stats.Pending),
	)
}

// List returns the items passing the status filter, in catalog order.
func (s *Service) List(status string) ([]reconcile.View, error) {
	filter, err := reconcile.ParseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	return s.engine.Filter(filter), nil
}

// Stats returns the counters.
func (s *Service) Stats() reconcile.Stats {
	return s.engine.Stats()
}

// View returns one item.
func (s *Service) View(sourceID string) (reconcile.View, error) {
	id, err := utils.NormalizeID(sourceID)
	if err != nil {
		return reconcile.View{}, err
	}
	return s.engine.View(id)
}

// Suggestions returns the shortlist of an item.
func (s *Service) Suggestions(sourceID string, limit int) ([]reconcile.Suggestion, error) {
	id, err := utils.NormalizeID(sourceID)
	if err != nil {
		return nil, err
	}
	return s.engine.Suggest(id, limit)
}

// Confirm matches an item to a candidate.
func (s *Service) Confirm(ctx context.Context, sourceID string, candidateID utils.ID) (reconcile.Stats, error) {
	id, err := utils.NormalizeID(sourceID)
	if err != nil {
		return reconcile.Stats{}, err
	}
	if candidateID.IsZero() {
		return reconcile.Stats{}, fmt.Errorf("%w: candidate_id is required", utils.ErrInvalidID)
	}
	return s.engine.Confirm(ctx, id, candidateID)
}

// Reject records a no-match for an item.
func (s *Service) Reject(ctx context.Context, sourceID string) (reconcile.Stats, error) {
	id, err := utils.NormalizeID(sourceID)
	if err != nil {
		return reconcile.Stats{}, err
	}
	return s.engine.Reject(ctx, id)
}

// Reset returns an item to pending.
func (s *Service) Reset(ctx context.Context, sourceID string) (reconcile.Stats, error) {
	id, err := utils.NormalizeID(sourceID)
	if err != nil {
		return reconcile.Stats{}, err
	}
	return s.engine.Reset(ctx, id)
}

// AutoMatch reruns the auto-matcher.
func (s *Service) AutoMatch(ctx context.Context) (reconcile.AutoMatchResult, error) {
	return s.engine.AutoMatch(ctx)
}

// Reload fetches both catalogs again, bypassing the cache, and swaps them into the session.
func (s *Service) Reload(ctx context.Context) (reconcile.AutoMatchResult, error) {
	if s.loader == nil || s.cache == nil {
		return reconcile.AutoMatchResult{}, ErrReloadUnavailable
	}

	s.cache.Invalidate(s.loader)
	pair, err := s.cache.GetOrLoad(ctx, s.loader)
	if err != nil {
		return reconcile.AutoMatchResult{}, err
	}

	s.logger.Info("Catalogs reloaded",
		zap.Int("source_items", pair.Source.Len()),
		zap.Int("candidate_items", pair.Candidate.Len()),
	)
	return s.engine.SetCatalogs(ctx, pair)
}

// ExportJSON writes the ledger in the exchange format.
func (s *Service) ExportJSON(w io.Writer) error {
	return s.engine.ExportJSON(w)
}

// ExportCSV writes the CSV export.
func (s *Service) ExportCSV(w io.Writer, layout reconcile.CSVLayout) error {
	return s.engine.ExportCSV(w, layout)
}

// ParseCSVLayout resolves the layout of a CSV export request.
func (s *Service) ParseCSVLayout(layout string) (reconcile.CSVLayout, error) {
	if layout == "" {
		return s.csvLayout, nil
	}
	return reconcile.ParseCSVLayout(layout)
}

// Import replaces the ledger.
func (s *Service) Import(ctx context.Context, r io.Reader) (reconcile.Stats, error) {
	return s.engine.Import(ctx, r)
}

// Clear removes all progress.
func (s *Service) Clear(ctx context.Context) (reconcile.Stats, error) {
	return s.engine.Clear(ctx)
}
