// Package catalog holds the two immutable, ordered item catalogs a matching session works on:
// the source catalog (items that need a match) and the candidate catalog (items to match against).
//
// # Identifiers
//
// Every identifier is normalized to utils.ID when a catalog is built, so numeric and string
// forms of the same identifier compare equal everywhere downstream.
//
// # Input Format
//
// Decode accepts either a single JSON array of {"id", "description"} objects or one JSON object
// per line (newline-delimited JSON). The format is detected from the first non-space byte.
//
// # Loading
//
// A Loader fetches both catalogs concurrently from a Source each (local file or object storage).
// Any fetch or parse failure is reported as ErrLoadFailure and no partial catalog is returned.
// Cache wraps a Loader with a TTL and stampede protection for repeated reloads.
//
// # Usage
//
//	loader := &catalog.Loader{
//	    Source:    catalog.FileSource{Path: "data/shamrock.json"},
//	    Candidate: catalog.FileSource{Path: "data/usfoods.json"},
//	}
//	pair, err := loader.Load(ctx)
package catalog
