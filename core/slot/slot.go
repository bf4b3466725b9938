package slot

import (
	"errors"
	"fmt"

	"item-matcher/core/reconcile"
	"item-matcher/core/storage"

	"gorm.io/gorm"
)

const (
	DriverFile     = "file"
	DriverDatabase = "database"
	DriverStorage  = "storage"
	DriverMemory   = "memory"

	// DefaultKey is the slot name used when none is configured.
	DefaultKey = "matcher-progress"
)

// ErrUnknownDriver is returned for an unsupported slot driver.
var ErrUnknownDriver = errors.New("unknown slot driver")

// Config selects and configures a slot backend.
type Config struct {
	// Driver is the backend (file, database, storage, memory).
	Driver string `mapstructure:"driver" default:"file"`
	// Key names the slot: the table row for database, the object name for storage.
	Key string `mapstructure:"key" default:"matcher-progress"`
	// Path is the file used by the file driver.
	Path string `mapstructure:"path" default:"matcher-progress.json"`
}

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverFile, DriverDatabase, DriverStorage, DriverMemory:
		return true
	default:
		return false
	}
}

// Deps are the connections a backend may need. Only the one matching the driver is required.
type Deps struct {
	DB      *gorm.DB
	Storage storage.Client
	Bucket  string
}

// New creates the backend selected by cfg.Driver.
func New(cfg Config, deps Deps) (reconcile.Slot, error) {
	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	switch cfg.Driver {
	case DriverFile:
		path := cfg.Path
		if path == "" {
			path = key + ".json"
		}
		return NewFileSlot(path), nil
	case DriverDatabase:
		if deps.DB == nil {
			return nil, fmt.Errorf("slot driver %q requires a database connection", cfg.Driver)
		}
		return NewDBSlot(deps.DB, key)
	case DriverStorage:
		if deps.Storage == nil {
			return nil, fmt.Errorf("slot driver %q requires a storage client", cfg.Driver)
		}
		return NewObjectSlot(deps.Storage, deps.Bucket, key), nil
	case DriverMemory:
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
