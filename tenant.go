package colorstore

import "regexp"

var tenantIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// AuthorizeTenant verifies that the acting tenant matches the tenant a
// request is scoped to. This is the single authorization primitive used
// by every storage operation; tenant identity is trusted as already
// validated by the upstream gateway, so this is a pure comparison.
func AuthorizeTenant(actingTenantID, targetTenantID string) error {
	if actingTenantID != targetTenantID {
		return NewError(ErrCodeUnauthorizedTenant, "unauthorized access to tenant")
	}
	return nil
}

// ValidateTenantID checks the boundary format rule for tenant
// identifiers. Empty identifiers and identifiers outside [A-Za-z0-9-]+
// are rejected with distinct codes so the gateway can report them apart.
func ValidateTenantID(tenantID string) error {
	if tenantID == "" {
		return NewError(ErrCodeMissingTenantID, "tenant ID not found in request")
	}
	if !tenantIDPattern.MatchString(tenantID) {
		return NewError(ErrCodeInvalidTenantID, "invalid tenant ID format")
	}
	return nil
}
