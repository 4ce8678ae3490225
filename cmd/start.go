package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"company-registry/core/config"
	"company-registry/core/database"
	"company-registry/core/loader"
	"company-registry/core/logger"
	"company-registry/core/middleware/nocache"
	"company-registry/core/middleware/rayid"
	"company-registry/core/storage"

	"company-registry/feature/catalog"
	"company-registry/feature/debt"
	"company-registry/feature/geocoding"
	"company-registry/feature/reconciliation"
	"company-registry/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "company-registry/docs/swagger"
)

// @title Company Registry API
// @version 1.0
// @description API for CNPJ search, reconciliation, debt verification and geocoding cache.
// @host localhost:3000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the company registry server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to Database (Required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to registry database", zap.Error(err))
		}
		logg.Info("Connected to registry database", zap.String("name", cfg.Database.Name))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		// 5. Initialize Storage (Optional report archive)
		var store storage.Client
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			store = client
			logg.Info("Report archive enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(catalog.NewFeature(db, logg))
		mgr.Register(search.NewFeature(db, logg))
		mgr.Register(reconciliation.NewFeature(db, logg, store, cfg.Storage.Bucket))
		mgr.Register(debt.NewFeature(db, logg))
		mgr.Register(geocoding.NewFeature(db, logg, cfg.Geocoding.MonthlyLimit))

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())
		app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.AllowOrigins}))

		// Request logging with Zap + RayID.
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

		// Lookup responses must never be cached by browsers or proxies.
		app.Use(nocache.New())

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
