package catalog

import (
	"fmt"
	"time"

	"item-matcher/core/storage"
)

const (
	KindFile    = "file"
	KindStorage = "storage"
)

// Config locates the source and candidate catalogs.
type Config struct {
	// SourceKind is where the source catalog lives (file, storage).
	SourceKind string `mapstructure:"source_kind" default:"file"`
	// SourcePath is the file path or object name of the source catalog.
	SourcePath string `mapstructure:"source_path" default:"data/shamrock.json"`
	// CandidateKind is where the candidate catalog lives (file, storage).
	CandidateKind string `mapstructure:"candidate_kind" default:"file"`
	// CandidatePath is the file path or object name of the candidate catalog.
	CandidatePath string `mapstructure:"candidate_path" default:"data/usfoods.json"`
	// CacheTTLSeconds is how long a loaded catalog pair is reused. 0 reloads every time.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// IsValidKind reports whether both catalog kinds are supported.
func (c Config) IsValidKind() bool {
	return validKind(c.SourceKind) && validKind(c.CandidateKind)
}

func validKind(kind string) bool {
	return kind == KindFile || kind == KindStorage
}

// CacheTTL returns the cache time-to-live.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// NewLoader builds a loader from the configuration. client and bucket are only used
// for storage kinds.
func NewLoader(cfg Config, client storage.Client, bucket string) (*Loader, error) {
	source, err := newSource(cfg.SourceKind, cfg.SourcePath, client, bucket)
	if err != nil {
		return nil, fmt.Errorf("source catalog: %w", err)
	}
	candidate, err := newSource(cfg.CandidateKind, cfg.CandidatePath, client, bucket)
	if err != nil {
		return nil, fmt.Errorf("candidate catalog: %w", err)
	}
	return &Loader{Source: source, Candidate: candidate}, nil
}

func newSource(kind, path string, client storage.Client, bucket string) (Source, error) {
	switch kind {
	case KindFile, "":
		return FileSource{Path: path}, nil
	case KindStorage:
		if client == nil {
			return nil, fmt.Errorf("kind %q requires a storage client", kind)
		}
		return ObjectSource{Client: client, Bucket: bucket, Object: path}, nil
	default:
		return nil, fmt.Errorf("unknown catalog kind %q", kind)
	}
}
