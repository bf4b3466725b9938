package reconcile

// Config holds the matching settings of a session.
type Config struct {
	// Scorer is the suggestion strategy (exact-prefix, token-overlap).
	Scorer string `mapstructure:"scorer" default:"exact-prefix"`
	// PrefixLen is the auto-match prefix length.
	PrefixLen int `mapstructure:"prefix_len" default:"10"`
	// SuggestLimit is the default shortlist length.
	SuggestLimit int `mapstructure:"suggest_limit" default:"5"`
	// RejectUnmatched records no-match for items the auto-matcher finds no evidence for.
	RejectUnmatched bool `mapstructure:"reject_unmatched" default:"true"`
	// CSVLayout is the default CSV export layout (full, reduced).
	CSVLayout string `mapstructure:"csv_layout" default:"full"`
}

// Policy returns the auto-match policy described by the configuration.
func (c Config) Policy() AutoMatchPolicy {
	prefixLen := c.PrefixLen
	if prefixLen <= 0 {
		prefixLen = DefaultPrefixLen
	}
	return AutoMatchPolicy{PrefixLen: prefixLen, RejectUnmatched: c.RejectUnmatched}
}

// Validate checks the strategy names.
func (c Config) Validate() error {
	if _, err := NewScorer(c.Scorer, c.PrefixLen); err != nil {
		return err
	}
	if _, err := ParseCSVLayout(c.CSVLayout); err != nil {
		return err
	}
	return nil
}

// Options builds session options from the configuration.
func (c Config) Options() (Options, error) {
	scorer, err := NewScorer(c.Scorer, c.PrefixLen)
	if err != nil {
		return Options{}, err
	}
	policy := c.Policy()
	return Options{Scorer: scorer, Policy: &policy, SuggestLimit: c.SuggestLimit}, nil
}
