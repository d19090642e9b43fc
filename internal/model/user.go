package model

import (
	"context"
	"strings"
	"time"
)

// Auth providers. Provider is recorded on the user row; LOCAL accounts
// carry a password hash, federated accounts may not.
const (
	ProviderLocal  = "LOCAL"
	ProviderGoogle = "GOOGLE"
)

// RoleUser is the only role issued today.
const RoleUser = "USER"

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
}

// User represents a stored identity record. Email is the canonical
// identity key: unique, stored trimmed and lowercased, and the subject
// of every issued token.
type User struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  *string
	Role          string
	Provider      string
	ProviderID    *string
	ImageURL      *string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FederatedProfile is the identity an external provider vouches for.
type FederatedProfile struct {
	Provider      string
	ProviderID    string
	Email         string
	Name          string
	ImageURL      string
	EmailVerified bool
}

// NormalizeEmail canonicalizes an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
