package services_test

import (
	"testing"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	require.NoError(t, services.InitJWTService("test-secret"))

	token, err := services.GenerateAdminJWT("0192a4f0-0000-7000-8000-000000000001", "ops@feauage.in", models.RoleSuperAdmin)
	require.NoError(t, err)

	claims, err := services.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "0192a4f0-0000-7000-8000-000000000001", claims.UserID)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
	assert.Equal(t, "feauage-cms", claims.Issuer)
}

func TestJWTRejectsForeignSignature(t *testing.T) {
	require.NoError(t, services.InitJWTService("first-secret"))
	token, err := services.GenerateAdminJWT("id", "ops@feauage.in", models.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, services.InitJWTService("second-secret"))
	_, err = services.VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestJWTRequiresClaims(t *testing.T) {
	require.NoError(t, services.InitJWTService("test-secret"))

	_, err := services.GenerateAdminJWT("id", "ops@feauage.in", "")
	assert.Error(t, err)
	assert.Error(t, services.InitJWTService(""))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := services.HashAdminPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, services.VerifyAdminPassword(hash, "correct horse"))
	assert.False(t, services.VerifyAdminPassword(hash, "battery staple"))
	assert.False(t, services.ValidateAdminPassword("short"))
	assert.True(t, services.ValidateAdminPassword("long enough"))
}
