package catalog

import (
	"context"
	"sync"
)

// Loader fetches the source and candidate catalogs of a session.
type Loader struct {
	// Source provides the items that need a match.
	Source Source

	// Candidate provides the items to match against.
	Candidate Source
}

// Key identifies the loader configuration, so different catalog pairs don't share a cache entry.
func (l *Loader) Key() string {
	return l.Source.Name() + "|" + l.Candidate.Name()
}

// Load fetches both catalogs concurrently. Either failure fails the whole load.
func (l *Loader) Load(ctx context.Context) (*Pair, error) {
	var (
		source       *Catalog
		candidate    *Catalog
		sourceErr    error
		candidateErr error
		wg           sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		source, sourceErr = Fetch(ctx, l.Source)
	}()

	go func() {
		defer wg.Done()
		candidate, candidateErr = Fetch(ctx, l.Candidate)
	}()

	wg.Wait()

	if sourceErr != nil {
		return nil, sourceErr
	}
	if candidateErr != nil {
		return nil, candidateErr
	}

	return &Pair{Source: source, Candidate: candidate}, nil
}
