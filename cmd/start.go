package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"item-matcher/core/config"
	"item-matcher/core/loader"
	"item-matcher/core/logger"
	"item-matcher/core/middleware/auth"
	"item-matcher/core/middleware/rayid"
	"item-matcher/core/reconcile"
	"item-matcher/feature/matcher"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "item-matcher/docs/swagger"
)

// @title Item Matcher API
// @version 1.0
// @description API for matching source catalog items to candidate catalog items.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the matcher server",
	Long:  `Loads both catalogs, opens the matching session and serves it over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the matching session (catalogs, slot, auto-match)
		s, err := openSession(context.Background(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open matching session", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			Immutable:             true,
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(matcher.NewFeature(s.engine, s.loader, s.cache, logg, reconcile.CSVLayout(cfg.Matcher.CSVLayout)))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			stats := s.engine.Stats()
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Int("matched", stats.Matched),
				zap.Int("rejected", stats.Rejected),
				zap.Int("pending", stats.Pending),
			)
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
