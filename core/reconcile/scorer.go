package reconcile

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	// ScorerExactPrefix selects ExactPrefixScorer.
	ScorerExactPrefix = "exact-prefix"
	// ScorerTokenOverlap selects TokenOverlapScorer.
	ScorerTokenOverlap = "token-overlap"

	// DefaultPrefixLen is the prefix length used by the auto-matcher and the exact-prefix scorer.
	DefaultPrefixLen = 10
	// DefaultExactScore is returned for a case-insensitive exact match.
	DefaultExactScore = 100
	// DefaultPrefixScore is returned when the candidate contains the query prefix.
	DefaultPrefixScore = 50
)

// Scorer computes a similarity score between a query and a candidate description.
// Higher is more similar, 0 means no evidence. Implementations are pure and case-insensitive.
type Scorer interface {
	// Name returns the configuration name of the strategy.
	Name() string

	// Score returns a non-negative score. An empty query always scores 0.
	Score(query, candidate string) int
}

// NewScorer returns the scorer registered under name.
func NewScorer(name string, prefixLen int) (Scorer, error) {
	switch name {
	case "", ScorerExactPrefix:
		return NewExactPrefixScorer(prefixLen), nil
	case ScorerTokenOverlap:
		return TokenOverlapScorer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScorer, name)
	}
}

// fold lower-cases s with full Unicode case folding after NFC normalization.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// ExactPrefixScorer scores exact equality high, and containment of the query prefix lower.
type ExactPrefixScorer struct {
	PrefixLen   int
	ExactScore  int
	PrefixScore int
}

// NewExactPrefixScorer creates a scorer with default scores.
// A non-positive prefixLen falls back to DefaultPrefixLen.
func NewExactPrefixScorer(prefixLen int) *ExactPrefixScorer {
	if prefixLen <= 0 {
		prefixLen = DefaultPrefixLen
	}
	return &ExactPrefixScorer{
		PrefixLen:   prefixLen,
		ExactScore:  DefaultExactScore,
		PrefixScore: DefaultPrefixScore,
	}
}

// Name returns ScorerExactPrefix.
func (s *ExactPrefixScorer) Name() string {
	return ScorerExactPrefix
}

// Score implements Scorer.
func (s *ExactPrefixScorer) Score(query, candidate string) int {
	if strings.TrimSpace(query) == "" {
		return 0
	}

	q := fold(query)
	c := fold(candidate)
	if q == c {
		return s.ExactScore
	}

	prefix := q
	if runes := []rune(q); len(runes) > s.PrefixLen {
		prefix = string(runes[:s.PrefixLen])
	}
	if strings.Contains(c, prefix) {
		return s.PrefixScore
	}
	return 0
}

// TokenOverlapScorer counts the distinct query tokens found inside the candidate.
type TokenOverlapScorer struct{}

// Name returns ScorerTokenOverlap.
func (TokenOverlapScorer) Name() string {
	return ScorerTokenOverlap
}

// Score implements Scorer.
func (TokenOverlapScorer) Score(query, candidate string) int {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return 0
	}

	c := fold(candidate)
	score := 0
	for _, token := range tokens {
		if strings.Contains(c, token) {
			score++
		}
	}
	return score
}

// Tokenize folds s and splits it on runs of anything that is not a letter or digit.
// Duplicate tokens are dropped, first occurrence order is kept.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	seen := make(map[string]struct{}, len(fields))
	tokens := fields[:0]
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}
