// Package gateway is the HTTP boundary of the color record store. It
// extracts and validates the tenant claim, maps typed core errors onto
// HTTP status codes, injects CORS headers and builds a tenant-scoped
// service for each request. The core never sees a raw request.
package gateway

import (
	"context"
	"net/http"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sicko7947/colorstore"
	"github.com/sicko7947/colorstore/service"
)

// TenantHeader carries the validated tenant claim. It stands in for the
// upstream authorizer claim at this boundary.
const TenantHeader = "X-Tenant-Id"

// RequestIDHeader echoes the per-request ID assigned by the gateway.
const RequestIDHeader = "X-Request-Id"

// ServiceFactory builds a color service scoped to one tenant. The
// production factory brokers tenant credentials and constructs a
// tenant-scoped store; tests substitute a fixed service.
type ServiceFactory func(ctx context.Context, tenantID string) (*service.ColorService, error)

// StaticServiceFactory returns a factory that always yields the given
// service, for deployments without per-tenant credential isolation.
func StaticServiceFactory(svc *service.ColorService) ServiceFactory {
	return func(ctx context.Context, tenantID string) (*service.ColorService, error) {
		return svc, nil
	}
}

// Gateway routes color record requests to a tenant-scoped service.
type Gateway struct {
	factory    ServiceFactory
	logger     zerolog.Logger
	corsOrigin string
}

// Option configures the gateway
type Option func(*Gateway)

// WithLogger sets a custom logger for the gateway
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// WithCORSOrigin sets the allowed CORS origin
func WithCORSOrigin(origin string) Option {
	return func(g *Gateway) {
		g.corsOrigin = origin
	}
}

// New creates a gateway over the given service factory.
func New(factory ServiceFactory, opts ...Option) *Gateway {
	defaultLogger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	g := &Gateway{
		factory: factory,
		logger:  defaultLogger,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// RegisterRoutes registers all HTTP routes on the fiber app.
func (g *Gateway) RegisterRoutes(app *fiber.App) {
	app.Use(g.corsMiddleware)

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "colorstore",
		})
	})

	v1 := app.Group("/api/v1")
	colors := v1.Group("/colors")

	colors.Post("/", g.handleSubmit)
	colors.Get("/", g.handleSearch)
}

// corsMiddleware injects CORS headers on every response.
func (g *Gateway) corsMiddleware(c fiber.Ctx) error {
	c.Set("Access-Control-Allow-Origin", g.corsOrigin)
	c.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-Tenant-Id")
	c.Set("Access-Control-Max-Age", "300")
	return c.Next()
}

// handleSubmit persists one color submission for the acting tenant
func (g *Gateway) handleSubmit(c fiber.Ctx) error {
	tenantID, logger, err := g.authenticate(c)
	if err != nil {
		return errorResponse(c, err)
	}

	var sub colorstore.ColorSubmission
	if err := c.Bind().JSON(&sub); err != nil {
		return badResponse(c, http.StatusBadRequest, "invalid request body")
	}

	// A body naming a different tenant is an authorization failure, not
	// a validation failure.
	if sub.TenantID != "" && sub.TenantID != tenantID {
		logger.Warn().
			Str("event", colorstore.EventTenantDenied).
			Str("target_tenant_id", sub.TenantID).
			Msg("Cannot submit colors for a different tenant")
		return errorResponse(c, colorstore.NewError(colorstore.ErrCodeUnauthorizedTenant,
			"cannot submit colors for a different tenant"))
	}
	sub.TenantID = tenantID

	svc, err := g.factory(c.Context(), tenantID)
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := svc.Submit(c.Context(), sub, tenantID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(result.StatusCode).JSON(result)
}

// handleSearch lists the acting tenant's records, optionally filtered
// by first name
func (g *Gateway) handleSearch(c fiber.Ctx) error {
	tenantID, logger, err := g.authenticate(c)
	if err != nil {
		return errorResponse(c, err)
	}

	// A query naming a different tenant is an authorization failure.
	if target := c.Query("tenantId"); target != "" && target != tenantID {
		logger.Warn().
			Str("event", colorstore.EventTenantDenied).
			Str("target_tenant_id", target).
			Msg("Cannot access colors from a different tenant")
		return errorResponse(c, colorstore.NewError(colorstore.ErrCodeUnauthorizedTenant,
			"cannot access colors from a different tenant"))
	}

	svc, err := g.factory(c.Context(), tenantID)
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := svc.Search(c.Context(), tenantID, c.Query("firstName"), tenantID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(result.StatusCode).JSON(result)
}

// authenticate extracts and validates the tenant claim and assigns a
// request ID. It returns a request-scoped logger for the handlers.
func (g *Gateway) authenticate(c fiber.Ctx) (string, zerolog.Logger, error) {
	requestID := uuid.New().String()
	c.Set(RequestIDHeader, requestID)

	tenantID := c.Get(TenantHeader)
	logger := colorstore.RequestLogger(g.logger, requestID, tenantID)

	if err := colorstore.ValidateTenantID(tenantID); err != nil {
		logger.Warn().
			Str("event", colorstore.EventRequestReceived).
			Err(err).
			Msg("Rejected request with missing or invalid tenant")
		return "", logger, err
	}

	logger.Debug().
		Str("event", colorstore.EventRequestReceived).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("Request received")

	return tenantID, logger, nil
}

// statusForError maps typed core errors onto HTTP status codes.
func statusForError(err error) int {
	switch colorstore.CodeOf(err) {
	case colorstore.ErrCodeMissingTenantID,
		colorstore.ErrCodeInvalidTenantID,
		colorstore.ErrCodeUnauthorizedTenant:
		return http.StatusForbidden
	case colorstore.ErrCodeDuplicateRecord,
		colorstore.ErrCodeInvalidSubmission:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(c fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		// Internal failure detail stays out of the response body.
		return badResponse(c, status, "internal server error")
	}
	return badResponse(c, status, err.Error())
}

func badResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message":    message,
		"statusCode": status,
	})
}
