package status

import (
	"context"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/storage"
	"github.com/bme-wacoisd/google-classroom/feature/status/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles environment checks.
type Service struct {
	client   storage.Client
	bucket   string
	platform classroom.Client
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new status service. client and db may be nil when the
// corresponding backend is not configured.
func NewService(client storage.Client, bucket string, platform classroom.Client, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		platform: platform,
		db:       db,
		logger:   logger,
	}
}

// CheckDatabase verifies the run-history schema.
func (s *Service) CheckDatabase(ctx context.Context) (*checks.DatabaseReport, error) {
	return checks.CheckDatabase(ctx, s.db)
}

// CheckStorage verifies the archive bucket layout.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, storageNotConfigured
	}
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates the missing bucket pieces from a prior check.
func (s *Service) FixStorage(ctx context.Context, report *checks.StorageReport) error {
	if s.client == nil {
		return storageNotConfigured
	}
	return checks.FixStorage(ctx, s.client, s.bucket, s.logger, report)
}

// CheckClassroom probes platform reachability.
func (s *Service) CheckClassroom(ctx context.Context) *checks.ClassroomReport {
	return checks.CheckClassroom(ctx, s.platform)
}
