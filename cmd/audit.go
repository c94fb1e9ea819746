package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/config"
	"github.com/bme-wacoisd/google-classroom/core/export"
	"github.com/bme-wacoisd/google-classroom/core/logger"
	"github.com/bme-wacoisd/google-classroom/core/reconcile"
	"github.com/bme-wacoisd/google-classroom/core/server"
	"github.com/bme-wacoisd/google-classroom/core/sis"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the audit command
	swappedNames    bool
	auditConvention string
	platformFile    string
	savePlatform    string
	jsonReport      bool
	missingCSVPath  string
)

// auditCmd runs one reconciliation from the command line.
var auditCmd = &cobra.Command{
	Use:   "audit [roster-file]",
	Short: "Audit a SIS roster export against Google Classroom",
	Long: `Audit reconciles a SIS roster export (CSV) against the Google Classroom
rosters and reports matched, missing, and extra students per class period.

The platform state comes from the live API by default. A snapshot saved with
--save-platform can be replayed later with --platform-file, so repeated runs
against the same day's state do not re-crawl the API.

Examples:
  # Audit against the live platform
  audit exports/fall_roster.csv

  # Accept surname-first rows without a comma
  audit exports/fall_roster.csv --swapped

  # Save the platform state, then replay it offline
  audit exports/fall_roster.csv --save-platform snapshot.json
  audit exports/fall_roster.csv --platform-file snapshot.json

  # Write the full diff and the missing-student list to files
  audit exports/fall_roster.csv --json --missing-csv missing.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().BoolVar(&swappedNames, "swapped", false, "Also match names with first/last reversed")
	auditCmd.Flags().StringVar(&auditConvention, "convention", "", "Pin the export layout (roster, schedule) instead of detecting it")
	auditCmd.Flags().StringVar(&platformFile, "platform-file", "", "Read the platform state from a snapshot file instead of the API")
	auditCmd.Flags().StringVar(&savePlatform, "save-platform", "", "Save the fetched platform state to a snapshot file")
	auditCmd.Flags().BoolVar(&jsonReport, "json", false, "Save the full diff as JSON")
	auditCmd.Flags().StringVar(&missingCSVPath, "missing-csv", "", "Write the missing students as CSV to this path")

	RootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	startTime := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Flag overrides the configured convention.
	convention := cfg.Server.Convention
	if auditConvention != "" {
		convention = auditConvention
	}

	// Parse the roster export
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	result, err := parseRoster(f, convention)
	if err != nil {
		return fmt.Errorf("failed to parse roster file: %w", err)
	}

	l.Info("Parsed roster export",
		zap.String("convention", result.Convention),
		zap.Int("entries", len(result.Entries)),
		zap.Int("row_errors", len(result.RowErrors)),
	)
	for _, rowErr := range result.RowErrors {
		l.Warn("Skipped roster row", zap.Int("row", rowErr.Row), zap.String("reason", rowErr.Message))
	}

	// Load the platform state
	snapshot, err := loadPlatformState(ctx, l, cfg)
	if err != nil {
		return err
	}

	// Reconcile
	diff := reconcile.Reconcile(result.Entries, snapshot.Courses, snapshot.StudentsByCourse,
		reconcile.Options{AcceptSwapped: swappedNames})

	printAuditReport(l, diff, time.Since(startTime))

	if jsonReport {
		filename := fmt.Sprintf("audit_%d.json", time.Now().Unix())
		out, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create JSON report: %w", err)
		}
		defer out.Close()
		if err := export.WriteDiffJSON(out, diff); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		l.Info("Full diff saved", zap.String("file", filename))
	}

	if missingCSVPath != "" {
		out, err := os.Create(missingCSVPath)
		if err != nil {
			return fmt.Errorf("failed to create missing-student CSV: %w", err)
		}
		defer out.Close()
		if err := export.WriteMissingCSV(out, diff); err != nil {
			return fmt.Errorf("failed to write missing-student CSV: %w", err)
		}
		l.Info("Missing-student CSV saved",
			zap.String("file", missingCSVPath),
			zap.Int("students", diff.Summary.TotalMissing))
	}

	return nil
}

// parseRoster parses with the pinned convention, or detects one when the
// convention is empty or "auto".
func parseRoster(f *os.File, convention string) (*sis.ParseResult, error) {
	if convention == "" || convention == server.ConventionAuto {
		return sis.Parse(f)
	}
	conv, ok := sis.ConventionByName(convention)
	if !ok {
		return nil, fmt.Errorf("unknown convention %q", convention)
	}
	return sis.ParseWith(f, conv)
}

// loadPlatformState reads the snapshot file when one is given, otherwise
// crawls the live API, optionally saving the result for later replay.
func loadPlatformState(ctx context.Context, l *zap.Logger, cfg *config.Config) (*classroom.Snapshot, error) {
	if platformFile != "" {
		snapshot, err := classroom.LoadSnapshot(platformFile)
		if err != nil {
			return nil, err
		}
		l.Info("Loaded platform snapshot",
			zap.String("file", platformFile),
			zap.Int("courses", len(snapshot.Courses)),
			zap.Time("fetched_at", snapshot.FetchedAt))
		return snapshot, nil
	}

	client, err := classroom.NewClient(cfg.Classroom)
	if err != nil {
		return nil, fmt.Errorf("failed to create classroom client: %w", err)
	}

	l.Info("Fetching platform state (this might take a while)...")
	snapshot, err := classroom.FetchSnapshot(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch platform state: %w", err)
	}
	l.Info("Fetched platform state", zap.Int("courses", len(snapshot.Courses)))

	if savePlatform != "" {
		if err := classroom.WriteSnapshot(savePlatform, snapshot); err != nil {
			return nil, err
		}
		l.Info("Platform snapshot saved", zap.String("file", savePlatform))
	}
	return snapshot, nil
}

// printAuditReport prints the per-period outcome and the aggregate counts.
func printAuditReport(l *zap.Logger, diff *reconcile.RosterDiff, elapsed time.Duration) {
	fmt.Println("\n=== Roster Audit Summary ===")
	fmt.Printf("Periods:          %d\n", len(diff.Results))
	fmt.Printf("Source Students:  %d\n", diff.Summary.TotalSource)
	fmt.Printf("Matched:          %d\n", diff.Summary.TotalMatched)
	fmt.Printf("Missing:          %d\n", diff.Summary.TotalMissing)
	fmt.Printf("Extra:            %d\n", diff.Summary.TotalExtra)
	fmt.Printf("Execution Time:   %s\n", elapsed.String())

	for _, result := range diff.Results {
		courseName := result.PlatformCourseName
		if courseName == "" {
			courseName = "(no course claimed this period)"
		}
		fmt.Printf("\nPeriod %s: %s -> %s\n", result.Period, result.CourseName, courseName)
		fmt.Printf("  matched %d / %d", len(result.Matched), len(result.SourceNames))
		if len(result.ExtraInPlatform) > 0 {
			fmt.Printf(", %d extra on platform", len(result.ExtraInPlatform))
		}
		fmt.Println()

		// Show a sample of missing names, the CSV export has the full list
		maxShow := 5
		if len(result.MissingFromPlatform) < maxShow {
			maxShow = len(result.MissingFromPlatform)
		}
		for i := 0; i < maxShow; i++ {
			fmt.Printf("  missing: %s\n", result.MissingFromPlatform[i])
		}
		if len(result.MissingFromPlatform) > maxShow {
			fmt.Printf("  ... and %d more missing\n", len(result.MissingFromPlatform)-maxShow)
		}
	}

	if len(diff.UnmatchedPeriods) > 0 {
		l.Warn("Periods with no platform course", zap.Strings("periods", diff.UnmatchedPeriods))
	}

	l.Info("Audit complete",
		zap.Int("total_source", diff.Summary.TotalSource),
		zap.Int("total_platform", diff.Summary.TotalPlatform),
		zap.Int("total_matched", diff.Summary.TotalMatched),
		zap.Int("total_missing", diff.Summary.TotalMissing),
		zap.Int("total_extra", diff.Summary.TotalExtra),
		zap.Duration("execution_time", elapsed),
	)
}
