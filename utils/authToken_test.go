package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateAccessToken(testKey, "carla", time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, "carla", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.Expiry, 5*time.Second)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	token, err := GenerateAccessToken(testKey, "carla", time.Minute)
	require.NoError(t, err)

	otherKey := []byte("ffffffffffffffffffffffffffffffff")
	_, err = ValidateToken(otherKey, token)
	require.Error(t, err)
}

func TestValidateTokenRejectsMalformed(t *testing.T) {
	_, err := ValidateToken(testKey, "v2.local.garbage")
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Run("zero ttl", func(t *testing.T) {
		token, err := GenerateAccessToken(testKey, "carla", 0)
		require.NoError(t, err)

		_, err = ValidateToken(testKey, token)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("negative ttl", func(t *testing.T) {
		token, err := GenerateAccessToken(testKey, "carla", -time.Hour)
		require.NoError(t, err)

		_, err = ValidateToken(testKey, token)
		require.ErrorIs(t, err, ErrTokenExpired)
	})
}
