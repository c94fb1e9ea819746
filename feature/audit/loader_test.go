package audit

import (
	"testing"
	"time"

	"github.com/bme-wacoisd/google-classroom/core/classroom"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	cache := classroom.NewSnapshotCache(platformMock(), time.Minute)
	// Pass nil db and archiver: the feature still loads, without history or
	// archiving.
	feature := NewFeature(nil, cache, nil, "auto", zap.NewNop())

	assert.Equal(t, "audit", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
