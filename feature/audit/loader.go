package audit

import (
	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/export"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the audit feature. db and archiver may be nil; the
// audit then runs without history or archiving.
func NewFeature(db *gorm.DB, snapshot *classroom.SnapshotCache, archiver *export.Archiver, convention string, logger *zap.Logger) *Feature {
	store := NewStore(db)
	if store.Available() {
		if err := store.EnsureSchema(); err != nil {
			logger.Error("Failed to migrate audit schema", zap.Error(err))
		}
	}
	svc := NewService(store, snapshot, archiver, convention, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "audit"
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
