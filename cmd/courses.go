package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/config"
	"github.com/bme-wacoisd/google-classroom/core/logger"
	"github.com/bme-wacoisd/google-classroom/feature/courses"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// coursesCmd represents the top-level courses command
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List Google Classroom courses and their resolved periods",
	Long:  `Lists the platform courses the configured token can see, annotated with the class period each course name claims.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runCourseList(cmd.Context())
	},
}

// periodsCmd represents the courses periods command
var periodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "Show which courses claim each class period",
	Long:  `Groups the platform courses by the period their names claim. Periods claimed by more than one course are flagged; the audit aligns the first claimant.`,
	Run: func(cmd *cobra.Command, args []string) {
		runPeriodClaims(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(coursesCmd)
	coursesCmd.AddCommand(periodsCmd)
}

// courseBrowser builds a one-shot courses service over a fresh snapshot.
func courseBrowser() (*courses.Service, *zap.Logger) {
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

	platform, err := classroom.NewClient(cfg.Classroom)
	if err != nil {
		logg.Fatal("Failed to create classroom client", zap.Error(err))
	}

	// Zero TTL: a CLI invocation always wants the current state.
	snapshot := classroom.NewSnapshotCache(platform, 0)
	return courses.NewService(snapshot, logg), logg
}

func runCourseList(ctx context.Context) {
	svc, logg := courseBrowser()

	logg.Info("Fetching courses (this might take a while)...")
	views, fetchedAt, err := svc.Courses(ctx, false)
	if err != nil {
		logg.Fatal("Failed to fetch courses", zap.Error(err))
	}

	fmt.Println("\n--- Google Classroom Courses ---")
	fmt.Printf("Fetched: %s\n", fetchedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Println("--------------------------------")
	for _, view := range views {
		period := view.Period
		if period == "" {
			period = "-"
		}
		fmt.Printf("%-16s period %-4s %3d students  %s\n", view.ID, period, view.Students, view.Name)
	}
	fmt.Printf("--------------------------------\nTotal: %d courses\n", len(views))
}

func runPeriodClaims(ctx context.Context) {
	svc, logg := courseBrowser()

	logg.Info("Fetching courses (this might take a while)...")
	claims, err := svc.Periods(ctx)
	if err != nil {
		logg.Fatal("Failed to fetch courses", zap.Error(err))
	}

	fmt.Println("\n--- Period Claims ---")
	for _, claim := range claims {
		marker := ""
		if claim.Ambiguous {
			// Yellow, the same way a WARNING status is rendered elsewhere
			marker = " \033[33m(ambiguous)\033[0m"
		}
		fmt.Printf("Period %s%s\n", claim.Period, marker)
		for i, view := range claim.Courses {
			aligned := ""
			if i == 0 && claim.Ambiguous {
				aligned = "  <- audit aligns this one"
			}
			fmt.Printf("  %-16s %s%s\n", view.ID, view.Name, aligned)
		}
	}
	fmt.Printf("---------------------\nTotal: %d periods\n", len(claims))
}
