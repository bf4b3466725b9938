package matcher

import (
	"item-matcher/core/catalog"
	"item-matcher/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new matcher feature.
func NewFeature(engine *reconcile.Engine, catalogs *catalog.Loader, cache *catalog.Cache, logger *zap.Logger, csvLayout reconcile.CSVLayout) *Feature {
	svc := NewService(engine, catalogs, cache, logger, csvLayout)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "matcher"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
