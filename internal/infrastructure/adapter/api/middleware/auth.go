package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/auth"
)

const (
	userIDKey    = "user_id"
	userEmailKey = "user_email"
)

// TokenVerifier checks a bearer token
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate requires an "Authorization: Bearer" token. EventSource clients
// cannot set headers, so the token may also come as the access_token query parameter.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token = c.Query("access_token")
		}
		if token == "" {
			_ = c.Error(fmt.Errorf("%w: missing bearer token", errs.ErrUnauthenticated))
			c.Abort()
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(userIDKey, identity.UserID)
		c.Set(userEmailKey, identity.Email)
		c.Next()
	}
}

// UserID returns the authenticated caller set by Authenticate
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// UserEmail returns the caller's email claim, possibly empty
func UserEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
