// Package service implements the color record service: tenant
// authorization, key derivation, persistence and response shaping for
// the submit and search operations.
package service

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/sicko7947/colorstore"
)

// timestampLayout is RFC 3339 with millisecond precision, matching the
// wire format of the stored timestamp attribute.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ColorService orchestrates the tenant guard, key schema and backing
// store. It holds no mutable state between calls; the backing store is
// the only shared resource.
type ColorService struct {
	store  colorstore.ColorStore
	logger zerolog.Logger
	now    func() time.Time
}

// Option configures the color service
type Option func(*ColorService)

// WithLogger sets a custom logger for the service
func WithLogger(logger zerolog.Logger) Option {
	return func(s *ColorService) {
		s.logger = logger
	}
}

// WithClock sets the time source used for sort-key sequencing and
// record timestamps. Production uses the wall clock; tests inject a
// fixed or stepped clock.
func WithClock(now func() time.Time) Option {
	return func(s *ColorService) {
		s.now = now
	}
}

// NewColorService creates a new color record service backed by the
// given store. If no logger is provided, a default stdout logger with
// Info level is used.
func NewColorService(store colorstore.ColorStore, opts ...Option) *ColorService {
	defaultLogger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	svc := &ColorService{
		store:  store,
		logger: defaultLogger,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// Submit validates and persists one color submission for the acting
// tenant, returning the created record shaped for the caller. The write
// is append-only: resubmitting the same (tenant, firstName) at a later
// millisecond creates a new record, while a same-millisecond collision
// fails with DUPLICATE_RECORD.
func (s *ColorService) Submit(ctx context.Context, sub colorstore.ColorSubmission, actingTenantID string) (*colorstore.SubmitResult, error) {
	if err := validateSubmission(sub); err != nil {
		colorstore.LogRecordRejected(s.logger, sub.TenantID, err)
		return nil, err
	}

	if err := colorstore.AuthorizeTenant(actingTenantID, sub.TenantID); err != nil {
		colorstore.LogTenantDenied(s.logger, actingTenantID, sub.TenantID)
		return nil, err
	}

	now := s.now()
	key, err := colorstore.NewRecordKey(sub.TenantID, sub.FirstName, now.UnixMilli())
	if err != nil {
		return nil, err
	}

	rec := &colorstore.StoredColorRecord{
		PartitionKey: key.PartitionKey(),
		SortKey:      key.SortKey(),
		TenantID:     key.Tenant,
		FirstName:    key.Subject,
		Color:        sub.Color,
		Colors:       []string{sub.Color},
		Timestamp:    now.UTC().Format(timestampLayout),
	}

	if err := s.store.ConditionalInsert(ctx, rec); err != nil {
		if colorstore.IsDuplicateRecord(err) {
			colorstore.LogRecordRejected(s.logger, sub.TenantID, err)
		} else {
			colorstore.LogStoreError(s.logger, "ConditionalInsert", err)
		}
		return nil, err
	}

	colorstore.LogRecordSaved(s.logger, key.Tenant, key.Subject)

	return &colorstore.SubmitResult{
		Data:       colorstore.NewColorRecordView(rec),
		StatusCode: http.StatusCreated,
	}, nil
}

// Search returns every record for the given tenant, optionally
// restricted to one subject name. When actingTenantID is empty the call
// is treated as internally trusted; boundary callers always supply it.
// An empty result is success, not an error.
func (s *ColorService) Search(ctx context.Context, tenantID, firstNameFilter, actingTenantID string) (*colorstore.SearchResult, error) {
	if actingTenantID != "" {
		if err := colorstore.AuthorizeTenant(actingTenantID, tenantID); err != nil {
			colorstore.LogTenantDenied(s.logger, actingTenantID, tenantID)
			return nil, err
		}
	}

	records, err := s.store.QueryByTenant(ctx, tenantID, firstNameFilter)
	if err != nil {
		colorstore.LogStoreError(s.logger, "QueryByTenant", err)
		return nil, err
	}

	views := make([]*colorstore.ColorRecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, colorstore.NewColorRecordView(rec))
	}

	colorstore.LogSearchCompleted(s.logger, tenantID, len(views))

	return &colorstore.SearchResult{
		Data:       views,
		StatusCode: http.StatusOK,
	}, nil
}

// validateSubmission rejects incomplete submissions before any key
// derivation or store call.
func validateSubmission(sub colorstore.ColorSubmission) error {
	if sub.TenantID == "" {
		return colorstore.NewError(colorstore.ErrCodeInvalidSubmission, "tenantId is required")
	}
	if sub.FirstName == "" {
		return colorstore.NewError(colorstore.ErrCodeInvalidSubmission, "firstName is required")
	}
	if sub.Color == "" {
		return colorstore.NewError(colorstore.ErrCodeInvalidSubmission, "color is required")
	}
	return nil
}
