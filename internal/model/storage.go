package model

import (
	"context"
	"io"
)

// Storage abstracts the object store holding profile avatars.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// TokenManager issues and validates bearer tokens. Validate returns the
// subject email; any failure is ErrInvalidToken.
type TokenManager interface {
	Issue(subject string) (string, error)
	Validate(tokenString string) (string, error)
}
