package reconcile

import (
	"errors"

	"item-matcher/core/catalog"
	"item-matcher/core/utils"
)

var (
	// ErrUnknownSource is returned when a source identifier is not in the source catalog.
	ErrUnknownSource = errors.New("unknown source item")

	// ErrUnknownCandidate is returned when a candidate identifier is not in the candidate catalog.
	ErrUnknownCandidate = errors.New("unknown candidate item")

	// ErrImportParse is returned when an import or slot payload does not have the exchange shape.
	ErrImportParse = errors.New("import parse error")

	// ErrUnknownScorer is returned for an unsupported scorer name.
	ErrUnknownScorer = errors.New("unknown scorer")

	// ErrUnknownFilter is returned for an unsupported status filter.
	ErrUnknownFilter = errors.New("unknown status filter")

	// ErrUnknownLayout is returned for an unsupported CSV layout.
	ErrUnknownLayout = errors.New("unknown csv layout")
)

// Status is the derived match status of a source item.
type Status string

const (
	// StatusPending means no decision exists yet.
	StatusPending Status = "pending"
	// StatusMatched means the item is confirmed against a candidate.
	StatusMatched Status = "matched"
	// StatusNoMatch means a human or the auto-matcher decided no candidate applies.
	StatusNoMatch Status = "no-match"
)

// Decision is a Ledger value: either the no-match sentinel or a candidate identifier.
type Decision struct {
	candidate utils.ID
	noMatch   bool
}

// NoMatch returns the no-match sentinel decision.
func NoMatch() Decision {
	return Decision{noMatch: true}
}

// MatchedTo returns a decision pointing at a candidate.
func MatchedTo(candidate utils.ID) Decision {
	return Decision{candidate: candidate}
}

// IsNoMatch reports whether the decision is the no-match sentinel.
func (d Decision) IsNoMatch() bool {
	return d.noMatch
}

// Candidate returns the candidate identifier, if the decision holds one.
func (d Decision) Candidate() (utils.ID, bool) {
	if d.noMatch {
		return "", false
	}
	return d.candidate, true
}

// Status maps the decision to its derived status.
func (d Decision) Status() Status {
	if d.noMatch {
		return StatusNoMatch
	}
	return StatusMatched
}

// Record is one entry of the exchange format. A nil CandidateID is the no-match sentinel.
type Record struct {
	SourceID    utils.ID  `json:"source_id"`
	CandidateID *utils.ID `json:"candidate_id"`
}

// Decision converts the record value to a Ledger decision.
func (r Record) Decision() Decision {
	if r.CandidateID == nil {
		return NoMatch()
	}
	return MatchedTo(*r.CandidateID)
}

// Stats provides aggregate counts over the source catalog.
// Matched + Rejected + Pending always equals Total.
type Stats struct {
	// Total is the number of source items.
	Total int `json:"total"`

	// Matched counts items whose entry holds a candidate identifier.
	Matched int `json:"matched"`

	// Rejected counts items whose entry holds the no-match sentinel.
	Rejected int `json:"rejected"`

	// Pending counts items with no entry.
	Pending int `json:"pending"`
}

// View is the read model of one source item, as a presentation layer renders it.
type View struct {
	// Item is the source item.
	Item catalog.Item `json:"item"`

	// Status is the derived match status.
	Status Status `json:"status"`

	// CandidateID is the raw Ledger value for matched items.
	CandidateID *utils.ID `json:"candidate_id,omitempty"`

	// Candidate is the resolved candidate item, nil when pending, rejected or stale.
	Candidate *catalog.Item `json:"candidate,omitempty"`

	// Stale is true when CandidateID no longer resolves in the candidate catalog.
	Stale bool `json:"stale"`
}

// Suggestion is a ranked candidate for a source item.
type Suggestion struct {
	Item  catalog.Item `json:"item"`
	Score int          `json:"score"`
}

// AutoMatchPolicy controls the load-time auto-matcher.
type AutoMatchPolicy struct {
	// PrefixLen is the number of leading characters of the source description that a
	// candidate must contain to be auto-confirmed. Defaults to 10.
	PrefixLen int

	// RejectUnmatched decides no-match for items without any evidence. When false those
	// items stay pending for a human to pick from the shortlist.
	RejectUnmatched bool
}

// DefaultPolicy returns the auto-reject policy.
func DefaultPolicy() AutoMatchPolicy {
	return AutoMatchPolicy{PrefixLen: DefaultPrefixLen, RejectUnmatched: true}
}

// AutoMatchResult summarizes one auto-match run.
type AutoMatchResult struct {
	// Confirmed counts items auto-confirmed against a candidate.
	Confirmed int `json:"confirmed"`

	// Rejected counts items auto-decided as no-match.
	Rejected int `json:"rejected"`

	// Unresolved counts items left pending (only when RejectUnmatched is false).
	Unresolved int `json:"unresolved"`

	// Skipped counts items that already had a decision.
	Skipped int `json:"skipped"`
}

// Changed reports whether the run added any decision.
func (r AutoMatchResult) Changed() bool {
	return r.Confirmed+r.Rejected > 0
}

// ChangeKind names the operation that changed the Ledger.
type ChangeKind string

const (
	ChangeAutoMatch ChangeKind = "auto_match"
	ChangeConfirm   ChangeKind = "confirm"
	ChangeReject    ChangeKind = "reject"
	ChangeReset     ChangeKind = "reset"
	ChangeImport    ChangeKind = "import"
	ChangeClear     ChangeKind = "clear"
	ChangeCatalogs  ChangeKind = "catalogs"
)

// Change is delivered to subscribers after a Ledger mutation is committed.
type Change struct {
	Kind ChangeKind `json:"kind"`

	// SourceID is set for single-item changes.
	SourceID utils.ID `json:"source_id,omitempty"`

	// Stats are the statistics after the change.
	Stats Stats `json:"stats"`
}
