package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

func TestIssuer(t *testing.T) {
	now := time.Now()
	issuer := NewIssuer("dev-secret", "credit-ledger", time.Hour)

	t.Run("should round-trip the caller", func(t *testing.T) {
		token, err := issuer.Issue("user-1", "a@b.c", now)
		require.NoError(t, err)

		id, err := issuer.Verify(token)

		require.NoError(t, err)
		assert.Equal(t, Identity{UserID: "user-1", Email: "a@b.c"}, id)
	})

	t.Run("should reject expired tokens", func(t *testing.T) {
		token, err := issuer.Issue("user-1", "", now.Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = issuer.Verify(token)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject another secret or issuer", func(t *testing.T) {
		token, err := NewIssuer("other", "credit-ledger", time.Hour).Issue("user-1", "", now)
		require.NoError(t, err)
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)

		token, err = NewIssuer("dev-secret", "someone-else", time.Hour).Issue("user-1", "", now)
		require.NoError(t, err)
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject unsigned tokens", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Verify(token)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should refuse to mint without a subject", func(t *testing.T) {
		_, err := issuer.Issue("", "", now)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
