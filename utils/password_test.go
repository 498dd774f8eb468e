package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("S3cure@pass")
	require.NoError(t, err)
	require.NotEqual(t, "S3cure@pass", hashed)

	assert.True(t, CheckPassword(hashed, "S3cure@pass"))
	assert.False(t, CheckPassword(hashed, "wrong-password"))
}

func TestValidatePasswordRules(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Abcdef1@", nil},
		{"too short", "Ab1@", ErrPasswordTooShort},
		{"no uppercase", "abcdef1@", ErrPasswordNotComplex},
		{"no digit", "Abcdefg@", ErrPasswordNotComplex},
		{"no special", "Abcdefg1", ErrPasswordNotComplex},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.password)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
