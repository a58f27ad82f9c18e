package jwt

import (
	"testing"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "0192f3a4-5b6c-7d8e-9f01-23456789abcd", tutorreport.RoleAdminShelter)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	shelterID, ok := decoded.Get("shelter_id")
	require.True(t, ok)
	assert.Equal(t, "0192f3a4-5b6c-7d8e-9f01-23456789abcd", shelterID)

	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
	role, _ := decoded.Get("role")
	assert.Equal(t, "admin_shelter", role)
}

func TestJWTService_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "soon")

	_, _, err := svc.GenerateAccessToken("user-1", "shelter", tutorreport.RoleTutor)
	assert.Error(t, err)
}
