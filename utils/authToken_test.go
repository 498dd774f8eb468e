package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSymmetricKey(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
}

func TestGenerateAndValidateToken(t *testing.T) {
	setSymmetricKey(t)

	token, err := GenerateAccessToken("42", "Receptionist")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "Receptionist", claims.Role)
}

func TestValidateTokenRoleCheck(t *testing.T) {
	setSymmetricKey(t)

	token, err := GenerateAccessToken("7", "Counselor")
	require.NoError(t, err)

	_, err = ValidateToken(token, "Counselor", "Admin")
	assert.NoError(t, err)

	_, err = ValidateToken(token, "Admin")
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	setSymmetricKey(t)

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerateTokensPair(t *testing.T) {
	setSymmetricKey(t)

	access, refresh, err := GenerateTokens("9", "Admin")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)
}
