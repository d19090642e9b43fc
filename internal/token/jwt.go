package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fit4ever/fit4ever-server/internal/model"
)

// JWT implements TokenManager backed by symmetric HMAC. The subject of
// every token is the user's normalized email; validation is a pure
// function of the token, the secret and the clock, so instances are
// safe for concurrent use without locking.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key
// and token lifetime.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: secretKey, ttl: ttl, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

// Issue creates a signed token for the given subject email.
func (j *JWT) Issue(subject string) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies signature and expiry and returns the subject.
// Malformed, forged and expired tokens all yield model.ErrInvalidToken;
// the cause is deliberately not exposed to callers.
func (j *JWT) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil || !token.Valid {
		return "", model.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", model.ErrInvalidToken
	}

	return claims.Subject, nil
}
