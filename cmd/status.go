package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/config"
	"github.com/bme-wacoisd/google-classroom/core/database"
	"github.com/bme-wacoisd/google-classroom/core/logger"
	"github.com/bme-wacoisd/google-classroom/core/storage"
	"github.com/bme-wacoisd/google-classroom/feature/status"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the service's backing dependencies",
	Long:  `Checks the run-history database schema, the archive bucket layout, and Google Classroom reachability.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runStatusChecks(cmd.Context(), false, false, false)
	},
}

// databaseCmd represents the status database command
var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the run-history database schema",
	Run: func(cmd *cobra.Command, args []string) {
		runStatusChecks(cmd.Context(), true, false, false)
	},
}

// storageCmd represents the status storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the archive bucket layout",
	Run: func(cmd *cobra.Command, args []string) {
		runStatusChecks(cmd.Context(), false, true, false)
	},
}

// classroomCmd represents the status classroom command
var classroomCmd = &cobra.Command{
	Use:   "classroom",
	Short: "Check Google Classroom reachability",
	Run: func(cmd *cobra.Command, args []string) {
		runStatusChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
	statusCmd.AddCommand(databaseCmd, storageCmd, classroomCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket and prefixes")
}

func runStatusChecks(ctx context.Context, onlyDatabase, onlyStorage, onlyClassroom bool) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	// Create Storage Client
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	// Create Classroom Client
	platform, err := classroom.NewClient(cfg.Classroom)
	if err != nil {
		logg.Fatal("Failed to create classroom client", zap.Error(err))
	}

	// Connect to Database (Optional)
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	svc := status.NewService(store, cfg.Storage.Bucket, platform, db, logg)
	runDatabase := onlyDatabase || (!onlyStorage && !onlyClassroom)
	runStorage := onlyStorage || (!onlyDatabase && !onlyClassroom)
	runClassroom := onlyClassroom || (!onlyDatabase && !onlyStorage)

	// Run Checks

	if runDatabase {
		logg.Info("Checking run-history database...")
		report, err := svc.CheckDatabase(ctx)
		if err != nil {
			logg.Error("Database check failed", zap.Error(err))
		} else if report.Status == "ok" {
			logg.Info("Database schema matches the run model.", zap.String("table", report.Table))
		} else {
			logg.Warn("Database schema problems found",
				zap.Bool("connected", report.Connected),
				zap.Strings("missing_columns", report.MissingColumns),
				zap.Strings("errors", report.Errors))
		}
	}

	if runStorage {
		logg.Info("Checking archive bucket...")
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			logg.Fatal("Storage check failed", zap.Error(err))
		}

		if report.Status == "ok" {
			logg.Info("Archive bucket layout is intact.")
		} else {
			logg.Warn("Archive bucket layout incomplete",
				zap.Bool("bucket_exists", report.BucketExists),
				zap.Strings("missing_prefixes", report.MissingPrefixes))

			if onlyStorage && fixFlag {
				logg.Info("Fixing archive bucket layout...")
				if err := svc.FixStorage(ctx, report); err != nil {
					logg.Fatal("Failed to fix archive bucket layout", zap.Error(err))
				}
				logg.Info("Archive bucket layout fixed successfully.")
			} else if onlyStorage {
				logg.Info("Run with --fix to create the missing pieces.")
			}
		}
	}

	if runClassroom {
		logg.Info("Checking Google Classroom reachability...")
		report := svc.CheckClassroom(ctx)
		if report.Status == "ok" {
			logg.Info("Google Classroom is reachable.")
		} else {
			logg.Warn("Google Classroom is unreachable", zap.String("error", report.Error))
		}
	}
}
