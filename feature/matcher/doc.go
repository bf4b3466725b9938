// Package matcher exposes a matching session over HTTP.
//
// It is the boundary the review UI talks to: every endpoint maps onto one engine operation
// and returns the updated statistics, so the UI can refresh its counters after each change.
//
// # HTTP Endpoints
//
//   - GET /matches : Lists items, filtered with ?status=all|pending|matched|no-match.
//   - GET /matches/stats : Returns the counters.
//   - GET /matches/{sourceId} : Returns one item with its decision.
//   - GET /matches/{sourceId}/suggestions : Returns the candidate shortlist (?limit=N).
//   - PUT /matches/{sourceId} : Confirms a candidate ({"candidate_id": ...}).
//   - POST /matches/{sourceId}/reject : Records an explicit no-match.
//   - POST /matches/{sourceId}/reset : Returns the item to pending.
//   - POST /matches/auto : Reruns auto-match over pending items.
//   - POST /matches/reload : Reloads both catalogs and auto-matches new items.
//   - GET /matches/export.json, GET /matches/export.csv : Downloads the ledger.
//   - POST /matches/import : Replaces the ledger with an exported file.
//   - DELETE /matches?confirm=true : Clears all progress.
//
// Unknown identifiers answer 404, malformed input 400, anything else 500.
package matcher
