package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"helloapi/internal/http/middleware"
	"helloapi/internal/model"
	"helloapi/internal/service"
	serviceMocks "helloapi/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var defaultInfo = model.AppInfo{Name: "Hello Actix App", Version: "1.0.0"}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHello(t *testing.T) {
	app := fiber.New()
	app.Get("/", Hello())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello, Quira.sh!", readBody(t, resp))
}

func TestEcho(t *testing.T) {
	app := fiber.New()
	app.Post("/post", Echo())

	tests := []struct {
		name string
		body string
	}{
		{"sample data", "Sample Data"},
		{"empty", ""},
		{"json payload", `{"a":[1,2,3]}`},
		{"binary", "\x00\xff\x10bytes"},
		{"unicode", "héllo wörld ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/post", strings.NewReader(tt.body))
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.body, readBody(t, resp))
		})
	}
}

func TestStatus(t *testing.T) {
	app := fiber.New()
	app.Get("/status", Status(defaultInfo))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/status", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `{"name":"Hello Actix App","version":"1.0.0"}`, readBody(t, resp))
}

func TestSetName(t *testing.T) {
	app := fiber.New(fiber.Config{JSONEncoder: MarshalJSON})
	app.Get("/a/:name", SetName())

	tests := []struct {
		path string
		want string
	}{
		{"/a/Dom", `{"name":"Dom"}`},
		{"/a/Hello%20World", `{"name":"Hello World"}`},
		{"/a/caf%C3%A9", `{"name":"café"}`},
		{"/a/quote%22d", `{"name":"quote\"d"}`},
		{"/a/%3Cb%3E%26", `{"name":"<b>&"}`},
		{"/a/a%2Fb", `{"name":"a/b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, readBody(t, resp))
		})
	}

	t.Run("undecodable segment is not found", func(t *testing.T) {
		for _, path := range []string{"/a/%FF", "/a/%C3%28"} {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		}
	})
}

func TestMarshalJSON(t *testing.T) {
	got, err := MarshalJSON(model.User{Name: "<a href=\"x\">&</a>"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"<a href=\"x\">&</a>"}`, string(got))

	got, err = MarshalJSON(defaultInfo)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Hello Actix App","version":"1.0.0"}`, string(got))

	_, err = MarshalJSON(func() {})
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	mockSvc := new(serviceMocks.MockHealthService)
	app := fiber.New()
	app.Get("/health", HealthCheck(mockSvc))

	t.Run("healthy", func(t *testing.T) {
		mockSvc.On("Check", mock.Anything).Return(&service.HealthReport{
			Status: service.StatusHealthy,
			Checks: map[string]string{"postgres": "ok"},
		}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body service.HealthReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "ok", body.Checks["postgres"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("unhealthy", func(t *testing.T) {
		mockSvc.On("Check", mock.Anything).Return(&service.HealthReport{
			Status: service.StatusUnhealthy,
		}, service.ErrUnhealthy).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.ErrBadRequest })
	app.Get("/large", func(c *fiber.Ctx) error { return fiber.ErrRequestEntityTooLarge })
	app.Get("/slow", func(c *fiber.Ctx) error { return fiber.ErrRequestTimeout })
	app.Get("/headers", func(c *fiber.Ctx) error { return fiber.ErrRequestHeaderFieldsTooLarge })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.ErrTeapot })
	app.Get("/gateway", func(c *fiber.Ctx) error { return fiber.ErrBadGateway })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("secret internal detail") })

	tests := []struct {
		path       string
		wantStatus int
		wantCode   string
	}{
		{"/bad", http.StatusBadRequest, "BAD_REQUEST"},
		{"/large", http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE"},
		{"/slow", http.StatusRequestTimeout, "REQUEST_TIMEOUT"},
		{"/headers", http.StatusRequestHeaderFieldsTooLarge, "HEADERS_TOO_LARGE"},
		{"/teapot", http.StatusTeapot, "REQUEST_ERROR"},
		{"/gateway", http.StatusBadGateway, "INTERNAL_ERROR"},
		{"/boom", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(middleware.RequestIDHeader, "rid-1")
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw := readBody(t, resp)
			assert.NotContains(t, raw, "secret")

			var body errorPayload
			require.NoError(t, json.Unmarshal([]byte(raw), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, "rid-1", body.RequestID)
		})
	}
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
		JSONEncoder:  MarshalJSON,
	})

	RegisterRoutes(app, defaultInfo)
	RegisterOpsRoutes(app, new(serviceMocks.MockHealthService), prometheus.NewRegistry())
	app.Use(NotFound())

	t.Run("not found route", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("wrong method is not found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/post", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/status", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("empty name segment is not found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/a/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("metrics exposed", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("swagger doc served", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
		req.Header.Set("X-Forwarded-Proto", "https, http")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := readBody(t, resp)
		assert.Contains(t, body, `"/a/{name}"`)
		assert.Contains(t, body, `"https"`)
	})
}
