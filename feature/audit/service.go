package audit

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/export"
	"github.com/bme-wacoisd/google-classroom/core/reconcile"
	"github.com/bme-wacoisd/google-classroom/core/sis"
	"github.com/bme-wacoisd/google-classroom/feature/audit/models"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service runs roster audits: parse the SIS export, fetch the platform
// snapshot, reconcile, and keep the results.
type Service struct {
	store      *Store
	snapshot   *classroom.SnapshotCache
	archiver   *export.Archiver
	convention string
	logger     *zap.Logger
}

// NewService wires the audit pipeline. archiver may be nil when object
// storage is not configured; convention pins the CSV layout, "" or "auto"
// detects it from the header row.
func NewService(store *Store, snapshot *classroom.SnapshotCache, archiver *export.Archiver, convention string, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		snapshot:   snapshot,
		archiver:   archiver,
		convention: convention,
		logger:     logger,
	}
}

// RunOptions carries the per-run knobs.
type RunOptions struct {
	// AcceptSwapped loosens name matching to also accept reversed
	// first/last tokens.
	AcceptSwapped bool
	// Archive uploads the diff and missing-students CSV to object storage.
	Archive bool
}

// RunResult is the full outcome of one audit run.
type RunResult struct {
	// Run is the persisted run record (persisted only when a database is
	// configured).
	Run *models.Run `json:"run"`
	// Diff is the reconciliation output.
	Diff *reconcile.RosterDiff `json:"diff"`
	// RowErrors lists source rows that could not be used.
	RowErrors []sis.RowError `json:"row_errors"`
	// Delta compares this run's summary against the previous run.
	Delta *reconcile.SummaryDelta `json:"delta,omitempty"`
	// ArchivedObjects names the uploaded objects when archiving was on.
	ArchivedObjects []string `json:"archived_objects,omitempty"`
}

// Run executes one audit over the given SIS export. contentType selects the
// parser: anything containing "json" goes through the extractor-JSON path,
// everything else is treated as CSV.
func (s *Service) Run(ctx context.Context, source io.Reader, contentType string, opts RunOptions) (*RunResult, error) {
	parsed, err := s.parseSource(source, contentType)
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshot.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch platform snapshot: %w", err)
	}

	diff := reconcile.Reconcile(parsed.Entries, snap.Courses, snap.StudentsByCourse, reconcile.Options{
		AcceptSwapped: opts.AcceptSwapped,
	})

	run := &models.Run{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Convention:    parsed.Convention,
		AcceptSwapped: opts.AcceptSwapped,
		TotalSource:   diff.Summary.TotalSource,
		TotalPlatform: diff.Summary.TotalPlatform,
		TotalMatched:  diff.Summary.TotalMatched,
		TotalMissing:  diff.Summary.TotalMissing,
		TotalExtra:    diff.Summary.TotalExtra,
		RowErrors:     len(parsed.RowErrors),
	}
	run.Diff, err = json.Marshal(diff)
	if err != nil {
		return nil, fmt.Errorf("failed to encode diff: %w", err)
	}

	result := &RunResult{
		Run:       run,
		Diff:      diff,
		RowErrors: parsed.RowErrors,
	}

	if opts.Archive {
		if s.archiver == nil {
			return nil, fmt.Errorf("archive requested but object storage is not configured")
		}
		objects, err := s.archiver.Archive(ctx, run.ID, diff)
		if err != nil {
			s.logger.Error("Failed to archive audit run", zap.String("run_id", run.ID), zap.Error(err))
		} else {
			run.Archived = true
			result.ArchivedObjects = objects
		}
	}

	if s.store.Available() {
		if prev, err := s.store.Latest(); err == nil {
			delta := diff.Summary.Delta(prev.Summary())
			result.Delta = &delta
		}
		if err := s.store.Save(run); err != nil {
			s.logger.Error("Failed to persist audit run", zap.String("run_id", run.ID), zap.Error(err))
		}
	}

	s.logger.Info("Audit run completed",
		zap.String("run_id", run.ID),
		zap.String("convention", run.Convention),
		zap.Int("source", run.TotalSource),
		zap.Int("matched", run.TotalMatched),
		zap.Int("missing", run.TotalMissing),
		zap.Int("extra", run.TotalExtra),
		zap.Int("row_errors", run.RowErrors))

	return result, nil
}

// parseSource picks the parser from the content type and the configured
// convention pin.
func (s *Service) parseSource(source io.Reader, contentType string) (*sis.ParseResult, error) {
	if strings.Contains(strings.ToLower(contentType), "json") {
		data, err := io.ReadAll(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		entries, err := sis.ParseJSON(data)
		if err != nil {
			return nil, err
		}
		return &sis.ParseResult{Convention: "json", Entries: entries}, nil
	}

	if s.convention != "" && s.convention != "auto" {
		conv, ok := sis.ConventionByName(s.convention)
		if !ok {
			return nil, fmt.Errorf("unknown roster convention: %s", s.convention)
		}
		return sis.ParseWith(source, conv)
	}
	return sis.Parse(source)
}

// Latest returns the newest run with its decoded diff.
func (s *Service) Latest() (*models.Run, *reconcile.RosterDiff, error) {
	run, err := s.store.Latest()
	if err != nil {
		return nil, nil, err
	}
	diff, err := decodeDiff(run)
	return run, diff, err
}

// List returns up to limit recent runs without their diffs.
func (s *Service) List(limit int) ([]models.Run, error) {
	return s.store.List(limit)
}

// Get returns one run with its decoded diff.
func (s *Service) Get(id string) (*models.Run, *reconcile.RosterDiff, error) {
	run, err := s.store.Get(id)
	if err != nil {
		return nil, nil, err
	}
	diff, err := decodeDiff(run)
	return run, diff, err
}

// Archiver exposes the archive backend, nil when storage is not configured.
func (s *Service) Archiver() *export.Archiver {
	return s.archiver
}

func decodeDiff(run *models.Run) (*reconcile.RosterDiff, error) {
	var diff reconcile.RosterDiff
	if err := json.Unmarshal(run.Diff, &diff); err != nil {
		return nil, fmt.Errorf("failed to decode stored diff for run %s: %w", run.ID, err)
	}
	return &diff, nil
}
