package colorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeTenant_Match(t *testing.T) {
	assert.NoError(t, AuthorizeTenant("acme", "acme"))
}

func TestAuthorizeTenant_Mismatch(t *testing.T) {
	err := AuthorizeTenant("acme", "globex")
	require.Error(t, err)
	assert.True(t, IsUnauthorizedTenant(err))
}

func TestValidateTenantID(t *testing.T) {
	assert.NoError(t, ValidateTenantID("acme"))
	assert.NoError(t, ValidateTenantID("tenant-42"))
	assert.NoError(t, ValidateTenantID("ABC-123-def"))
}

func TestValidateTenantID_Missing(t *testing.T) {
	err := ValidateTenantID("")
	require.Error(t, err)
	assert.Equal(t, ErrCodeMissingTenantID, CodeOf(err))
}

func TestValidateTenantID_Malformed(t *testing.T) {
	for _, id := range []string{"ac me", "acme#1", "tenant_1", "a/b", "Ünïcode"} {
		err := ValidateTenantID(id)
		require.Error(t, err, "expected %q to be rejected", id)
		assert.Equal(t, ErrCodeInvalidTenantID, CodeOf(err))
	}
}
