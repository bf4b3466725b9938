package cmd

import (
	"context"
	"fmt"

	"item-matcher/core/catalog"
	"item-matcher/core/config"
	"item-matcher/core/database"
	"item-matcher/core/reconcile"
	"item-matcher/core/slot"
	"item-matcher/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// session is an opened matching session with the resources it was built from.
type session struct {
	engine *reconcile.Engine
	loader *catalog.Loader
	cache  *catalog.Cache
}

// openSession connects the configured backends, loads both catalogs and opens the engine,
// which runs auto-match once.
func openSession(ctx context.Context, cfg *config.Config, l *zap.Logger) (*session, error) {
	var client storage.Client
	if cfg.NeedsStorage() {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		if cfg.Slot.Driver == slot.DriverStorage {
			if err := storage.EnsureBucket(ctx, c, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				return nil, err
			}
		}
		client = c
	}

	var db *gorm.DB
	if cfg.NeedsDatabase() {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		db = conn
		l.Info("Connected to ledger database", zap.String("driver", cfg.Database.Driver))
	}

	loader, err := catalog.NewLoader(cfg.Catalog, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	cache := catalog.NewCache(cfg.Catalog.CacheTTL())

	l.Info("Loading catalogs", zap.String("catalogs", loader.Key()))
	pair, err := cache.GetOrLoad(ctx, loader)
	if err != nil {
		return nil, err
	}

	s, err := slot.New(cfg.Slot, slot.Deps{DB: db, Storage: client, Bucket: cfg.Storage.Bucket})
	if err != nil {
		return nil, err
	}

	opts, err := cfg.Matcher.Options()
	if err != nil {
		return nil, err
	}
	opts.Catalogs = pair
	opts.Slot = s
	opts.Logger = l

	engine, err := reconcile.Open(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &session{engine: engine, loader: loader, cache: cache}, nil
}

// loadSession loads the configuration and logger, then opens a session.
func loadSession(ctx context.Context) (*config.Config, *zap.Logger, *session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	s, err := openSession(ctx, cfg, l)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, l, s, nil
}
