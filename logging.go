package colorstore

import (
	"github.com/rs/zerolog"
)

// Log event names
const (
	// Service-level events
	EventRecordSaved     = "record_saved"
	EventRecordRejected  = "record_rejected"
	EventSearchCompleted = "search_completed"
	EventTenantDenied    = "tenant_denied"

	// Persistence events
	EventStoreError = "store_error"

	// Boundary events
	EventRequestReceived   = "request_received"
	EventCredentialsIssued = "credentials_issued"
)

// LogRecordSaved logs a successful conditional insert
func LogRecordSaved(logger zerolog.Logger, tenantID, firstName string) {
	logger.Info().
		Str("event", EventRecordSaved).
		Str("tenant_id", tenantID).
		Str("first_name", firstName).
		Msg("Color record saved")
}

// LogRecordRejected logs a submission rejected before or during the write
func LogRecordRejected(logger zerolog.Logger, tenantID string, err error) {
	logger.Warn().
		Str("event", EventRecordRejected).
		Str("tenant_id", tenantID).
		Err(err).
		Msg("Color submission rejected")
}

// LogSearchCompleted logs a tenant-scoped query
func LogSearchCompleted(logger zerolog.Logger, tenantID string, count int) {
	logger.Info().
		Str("event", EventSearchCompleted).
		Str("tenant_id", tenantID).
		Int("count", count).
		Msg("Search completed")
}

// LogTenantDenied logs an acting/target tenant mismatch
func LogTenantDenied(logger zerolog.Logger, actingTenantID, targetTenantID string) {
	logger.Warn().
		Str("event", EventTenantDenied).
		Str("acting_tenant_id", actingTenantID).
		Str("target_tenant_id", targetTenantID).
		Msg("Tenant access denied")
}

// LogStoreError logs a backing-store failure
func LogStoreError(logger zerolog.Logger, operation string, err error) {
	logger.Error().
		Str("event", EventStoreError).
		Str("operation", operation).
		Err(err).
		Msg("Store operation failed")
}

// RequestLogger creates a logger enriched with request context
func RequestLogger(baseLogger zerolog.Logger, requestID, tenantID string) zerolog.Logger {
	return baseLogger.With().
		Str("request_id", requestID).
		Str("tenant_id", tenantID).
		Logger()
}
