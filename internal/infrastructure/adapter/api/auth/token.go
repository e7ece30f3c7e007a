package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// Claims identifies the calling user; the subject is the user id
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Identity is what handlers need to know about the caller
type Identity struct {
	UserID string
	Email  string
}

// Issuer signs and verifies HS256 bearer tokens
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewIssuer creates an issuer; ttl defaults to one hour
func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Issuer{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue mints a token for userID valid from now
func (i *Issuer) Issue(userID, email string, now time.Time) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", errs.ErrInvalidRequest)
	}
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses a token and returns the caller it names
func (i *Issuer) Verify(token string) (Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return Identity{}, fmt.Errorf("%w: %v", errs.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: token has no subject", errs.ErrUnauthenticated)
	}
	return Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
