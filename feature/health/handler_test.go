package health

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, host *fakeHost) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(host, nil, "sorter", setupHistoryDB(t), zap.NewNop())).RegisterRoutes(app)
	return app
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp(t, &fakeHost{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, "disabled", report.Storage.Status)
}

func TestHandleHealth_HostOffline(t *testing.T) {
	app := setupTestApp(t, &fakeHost{err: errors.New("refused")})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/health/host", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleComponentChecks(t *testing.T) {
	app := setupTestApp(t, &fakeHost{})

	for _, path := range []string{"/health/host", "/health/storage", "/health/database"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode, path)
	}
}

func TestLoader(t *testing.T) {
	feature := NewFeature(&fakeHost{}, nil, "sorter", nil, zap.NewNop())

	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
