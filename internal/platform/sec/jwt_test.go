// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package sec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := NewTokenService("", "anizora")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	service, err := NewTokenService("test-secret", "anizora")
	require.NoError(t, err)

	token, err := service.GenerateToken(123, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 123, userID)
	assert.Equal(t, "anizora", claims.Issuer)
}

func TestVerifyToken_FailsClosed(t *testing.T) {
	service, err := NewTokenService("test-secret", "anizora")
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.VerifyToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenService("different-secret", "anizora")
		require.NoError(t, err)

		token, err := other.GenerateToken(7, time.Hour)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := service.GenerateToken(7, -time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})
}

func TestAuthClaims_MalformedSubject(t *testing.T) {
	claims := &AuthClaims{}
	claims.Subject = "not-a-number"

	_, err := claims.UserID()
	assert.Error(t, err)
}
