package courses

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bme-wacoisd/google-classroom/core/classroom"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New()
	cache := classroom.NewSnapshotCache(setupPlatform(), time.Minute)
	handler := NewHandler(NewService(cache, zap.NewNop()))
	handler.RegisterRoutes(app)
	return app
}

func TestHandleListCourses(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/courses/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, float64(4), body["count"])
	assert.NotNil(t, body["fetched_at"])
}

func TestHandlePeriods(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/courses/periods", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, float64(1), body["ambiguous"])
}

func TestHandleStudents(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/courses/c1/students", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, float64(2), body["count"])
}

func TestHandleStudentsNotFound(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/courses/nope/students", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	cache := classroom.NewSnapshotCache(setupPlatform(), time.Minute)
	feature := NewFeature(cache, zap.NewNop())

	assert.Equal(t, "courses", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
