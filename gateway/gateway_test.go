package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/sicko7947/colorstore"
	"github.com/sicko7947/colorstore/service"
	"github.com/sicko7947/colorstore/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, opts ...service.Option) *fiber.App {
	t.Helper()

	mem := store.NewMemoryStore()
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	current := base
	clock := func() time.Time {
		now := current
		current = current.Add(time.Millisecond)
		return now
	}

	allOpts := append([]service.Option{
		service.WithClock(clock),
		service.WithLogger(zerolog.Nop()),
	}, opts...)
	svc := service.NewColorService(mem, allOpts...)

	gw := New(StaticServiceFactory(svc),
		WithLogger(zerolog.Nop()),
		WithCORSOrigin("https://colors.example.com"),
	)

	app := fiber.New()
	gw.RegisterRoutes(app)
	return app
}

func submitRequest(tenantHeader, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/colors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if tenantHeader != "" {
		req.Header.Set(TenantHeader, tenantHeader)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestGateway_Submit(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(submitRequest("T1", `{"firstName":"John","color":"blue"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	body := decodeBody(t, resp)
	assert.Equal(t, float64(http.StatusCreated), body["statusCode"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "John", data["pk"])
	assert.Equal(t, "blue", data["color"])
	assert.Equal(t, []any{"blue"}, data["colors"])
	assert.NotContains(t, data, "tenantId")
	assert.NotContains(t, data, "sk")
}

func TestGateway_Submit_MissingTenant(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(submitRequest("", `{"firstName":"John","color":"blue"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], colorstore.ErrCodeMissingTenantID)
}

func TestGateway_Submit_InvalidTenant(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(submitRequest("bad tenant!", `{"firstName":"John","color":"blue"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], colorstore.ErrCodeInvalidTenantID)
}

func TestGateway_Submit_ForeignTenantBody(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(submitRequest("T2", `{"tenantId":"T1","firstName":"John","color":"blue"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], colorstore.ErrCodeUnauthorizedTenant)

	// Nothing persisted for either tenant
	for _, tenant := range []string{"T1", "T2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/colors", nil)
		req.Header.Set(TenantHeader, tenant)
		resp, err := app.Test(req)
		require.NoError(t, err)
		searchBody := decodeBody(t, resp)
		assert.Empty(t, searchBody["data"])
	}
}

func TestGateway_Submit_InvalidBody(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(submitRequest("T1", `{"firstName":"","color":"blue"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], colorstore.ErrCodeInvalidSubmission)
}

func TestGateway_Submit_Duplicate(t *testing.T) {
	// Fixed clock forces the same sort-key millisecond for both writes
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	app := newTestApp(t, service.WithClock(func() time.Time { return fixed }))

	resp, err := app.Test(submitRequest("T1", `{"firstName":"John","color":"blue"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(submitRequest("T1", `{"firstName":"John","color":"red"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], colorstore.ErrCodeDuplicateRecord)
}

func TestGateway_Search(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(submitRequest("T1", `{"firstName":"John","color":"blue"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, err = app.Test(submitRequest("T1", `{"firstName":"Jane","color":"green"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/colors?firstName=John", nil)
	req.Header.Set(TenantHeader, "T1")

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(http.StatusOK), body["statusCode"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	rec := data[0].(map[string]any)
	assert.Equal(t, "John", rec["firstName"])
	assert.Equal(t, "blue", rec["color"])
}

func TestGateway_Search_EmptyList(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/colors", nil)
	req.Header.Set(TenantHeader, "T1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestGateway_Search_ForeignTenantQuery(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/colors?tenantId=T1", nil)
	req.Header.Set(TenantHeader, "T2")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], colorstore.ErrCodeUnauthorizedTenant)
}

func TestGateway_CORSHeaders(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://colors.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
}

func TestGateway_Health(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "healthy", body["status"])
}
