//go:build unit

package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-pricing-engine/internal/domain/session"
)

func TestExpiredAt(t *testing.T) {
	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sess := session.RegisterSession{RegisterID: "reg-1", StoreID: "store-1", ExpiresAt: expiry}

	assert.False(t, sess.ExpiredAt(expiry.Add(-time.Second)))
	assert.True(t, sess.ExpiredAt(expiry))
	assert.True(t, sess.ExpiredAt(expiry.Add(time.Second)))
}

func TestExpiryFromToken(t *testing.T) {
	signingKey := []byte("unit-test-key")

	t.Run("reads the exp claim without verification", func(t *testing.T) {
		expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "reg-1",
			"exp": expiry.Unix(),
		})
		signed, err := token.SignedString(signingKey)
		require.NoError(t, err)

		got, err := session.ExpiryFromToken(signed)
		require.NoError(t, err)
		assert.True(t, got.Equal(expiry))
	})

	t.Run("token without exp claim", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "reg-1"})
		signed, err := token.SignedString(signingKey)
		require.NoError(t, err)

		_, err = session.ExpiryFromToken(signed)
		require.ErrorIs(t, err, session.ErrNoExpiryClaim)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := session.ExpiryFromToken("not-a-jwt")
		require.Error(t, err)
	})
}


