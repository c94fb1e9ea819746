package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/config"
	"github.com/bme-wacoisd/google-classroom/core/database"
	"github.com/bme-wacoisd/google-classroom/core/export"
	"github.com/bme-wacoisd/google-classroom/core/loader"
	"github.com/bme-wacoisd/google-classroom/core/logger"
	"github.com/bme-wacoisd/google-classroom/core/middleware/auth"
	"github.com/bme-wacoisd/google-classroom/core/middleware/rayid"
	"github.com/bme-wacoisd/google-classroom/core/storage"

	"github.com/bme-wacoisd/google-classroom/feature/audit"
	"github.com/bme-wacoisd/google-classroom/feature/courses"
	"github.com/bme-wacoisd/google-classroom/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/bme-wacoisd/google-classroom/docs/swagger"
)

// @title Classroom Audit API
// @version 1.0
// @description API for reconciling SIS roster exports against Google Classroom.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the classroom audit server",
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

		if !cfg.Server.IsValidConvention() {
			logg.Fatal("Invalid SIS convention configured",
				zap.String("convention", cfg.Server.Convention))
		}

		// 3. Connect to Database (Optional)
		// Without it the service still audits, it just keeps no run history.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to run-history database")
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		})

		// 4. Initialize Storage (Optional)
		// Archiving is opt-in per run, so a dead object store only disables
		// the archive endpoints.
		var store storage.Client
		var archiver *export.Archiver
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			store = client
			archiver = export.NewArchiver(store, cfg.Storage.Bucket, logg)
		}

		// 4. Initialize Classroom Client
		platform, err := classroom.NewClient(cfg.Classroom)
		if err != nil {
			logg.Fatal("Failed to create classroom client", zap.Error(err))
		}
		snapshot := classroom.NewSnapshotCache(platform, time.Duration(cfg.Classroom.CacheTTLSeconds)*time.Second)

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(audit.NewFeature(db, snapshot, archiver, cfg.Server.Convention, logg))
		mgr.Register(courses.NewFeature(snapshot, logg))
		mgr.Register(status.NewFeature(store, cfg.Storage.Bucket, platform, db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		// We protect everything for now as requested ("protect every request")
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("convention", cfg.Server.Convention))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
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
