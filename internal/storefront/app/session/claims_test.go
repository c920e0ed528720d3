package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/app/session"
)

func TestDecode(t *testing.T) {
	expiresAt := time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)

	t.Run("reads identity claims", func(t *testing.T) {
		token := accessToken(t, "budi", true, expiresAt)

		identity, err := session.Decode(token)

		require.NoError(t, err)
		assert.Equal(t, "42", identity.UserID)
		assert.Equal(t, "budi", identity.Username)
		assert.Equal(t, "budi@mail.test", identity.Email)
		assert.True(t, identity.IsStaff)
		assert.True(t, expiresAt.Equal(identity.ExpiresAt))
	})

	t.Run("string user id and subject fallback", func(t *testing.T) {
		identity, err := session.Decode(signToken(t, jwt.MapClaims{"user_id": "u-7", "username": "sari"}))
		require.NoError(t, err)
		assert.Equal(t, "u-7", identity.UserID)
		assert.True(t, identity.ExpiresAt.IsZero())

		identity, err = session.Decode(signToken(t, jwt.MapClaims{"sub": "9", "username": "sari"}))
		require.NoError(t, err)
		assert.Equal(t, "9", identity.UserID)
	})

	t.Run("expired token still decodes", func(t *testing.T) {
		identity, err := session.Decode(accessToken(t, "budi", false, expiresAt.Add(-48*time.Hour)))
		require.NoError(t, err)
		assert.True(t, identity.Expired(expiresAt))
	})

	t.Run("repeated decoding yields the same identity", func(t *testing.T) {
		token := accessToken(t, "budi", false, expiresAt)

		first, err := session.Decode(token)
		require.NoError(t, err)
		second, err := session.Decode(token)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	for _, token := range []string{"", "not-a-jwt", "a.b.c", "not-json"} {
		t.Run("malformed "+token, func(t *testing.T) {
			_, err := session.Decode(token)
			assert.ErrorIs(t, err, session.ErrMalformedToken)
		})
	}
}
