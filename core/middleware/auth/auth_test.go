package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	app := newApp(Config{ApiKey: "s3cret", Skip: []string{"/swagger"}})

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    int
	}{
		{"MissingKey", "/folders/items", nil, fiber.StatusUnauthorized},
		{"WrongKey", "/folders/items", map[string]string{HeaderName: "nope"}, fiber.StatusUnauthorized},
		{"HeaderKey", "/folders/items", map[string]string{HeaderName: "s3cret"}, fiber.StatusOK},
		{"BearerKey", "/folders/items", map[string]string{"Authorization": "Bearer s3cret"}, fiber.StatusOK},
		{"SkippedPath", "/swagger/index.html", nil, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	app := newApp(Config{})
	resp, err := app.Test(httptest.NewRequest("GET", "/anything", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
