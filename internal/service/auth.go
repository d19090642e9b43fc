package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fit4ever/fit4ever-server/internal/apperrors"
	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
)

// Auth implements local registration/login and federated identity
// reconciliation. Tokens are issued against the user's normalized
// email; the authorizer later resolves that email back to a row.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a LOCAL account and returns a token for it. The
// check-then-insert is racy by nature; a concurrent duplicate surfaces
// from the store as ErrDuplicateEmail and is translated to the same
// conflict as the up-front check.
func (a *Auth) Register(ctx context.Context, name, email, password string) (string, error) {
	email = model.NormalizeEmail(email)
	a.logger.Debug("Auth service: registering user", "email", email)

	exists, err := a.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		a.logger.Warn("Auth service: registration rejected, email taken", "email", email)
		return "", apperrors.NewErrEmailTaken()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	hashString := string(hash)
	user := model.User{
		Name:          strings.TrimSpace(name),
		Email:         email,
		PasswordHash:  &hashString,
		Role:          model.RoleUser,
		Provider:      model.ProviderLocal,
		EmailVerified: false,
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrDuplicateEmail) {
		a.logger.Warn("Auth service: registration lost insert race", "email", email)
		return "", apperrors.NewErrEmailTaken()
	}
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "user_id", savedUser.ID, "email", email)

	tokenString, err := a.tokenManager.Issue(savedUser.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return tokenString, nil
}

// Login verifies credentials and returns a token. A missing user, a
// password mismatch and a federated-only account without a password all
// produce the identical invalid-credentials outcome.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	email = model.NormalizeEmail(email)
	a.logger.Debug("Auth service: login attempt", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Warn("Auth service: login failed, user not found", "email", email)
		return "", apperrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	var storedHash string
	if user.PasswordHash != nil {
		storedHash = *user.PasswordHash
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		a.logger.Warn("Auth service: login failed, invalid password", "email", email)
		return "", apperrors.NewErrInvalidCredentials()
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID, "email", email)

	tokenString, err := a.tokenManager.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return tokenString, nil
}

// Reconcile maps a federated profile onto a local user record: same
// email links to the existing account (provider fields overwritten in
// place), unknown email creates a passwordless account. Linking happens
// even when the provider reports the email unverified; that matches the
// upstream behavior and is flagged as an open question in DESIGN.md.
func (a *Auth) Reconcile(ctx context.Context, profile model.FederatedProfile) (model.User, error) {
	if strings.TrimSpace(profile.Email) == "" {
		a.logger.Error("Auth service: federated profile without email", "provider", profile.Provider)
		return model.User{}, apperrors.NewErrFederatedIdentity()
	}

	email := model.NormalizeEmail(profile.Email)
	a.logger.Debug("Auth service: reconciling federated identity", "provider", profile.Provider, "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if errors.Is(err, model.ErrNotFound) {
		name := strings.TrimSpace(profile.Name)
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		newUser := model.User{
			Name:          name,
			Email:         email,
			Role:          model.RoleUser,
			Provider:      profile.Provider,
			ProviderID:    &profile.ProviderID,
			ImageURL:      optionalString(profile.ImageURL),
			EmailVerified: profile.EmailVerified,
		}
		savedUser, err := a.userStore.Create(ctx, newUser)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to create federated user: %w", err)
		}
		a.logger.Info("Auth service: federated user created", "user_id", savedUser.ID, "provider", profile.Provider)
		return savedUser, nil
	}

	if user.Provider == profile.Provider && user.ProviderID != nil && *user.ProviderID == profile.ProviderID {
		return user, nil
	}

	user.Provider = profile.Provider
	user.ProviderID = &profile.ProviderID
	user.ImageURL = optionalString(profile.ImageURL)
	user.EmailVerified = profile.EmailVerified

	savedUser, err := a.userStore.Update(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user with federated identity: %w", err)
	}

	a.logger.Info("Auth service: federated identity linked", "user_id", savedUser.ID, "provider", profile.Provider)
	return savedUser, nil
}

// IssueToken returns a token for an already-resolved user, used by the
// federated callback after reconciliation.
func (a *Auth) IssueToken(user model.User) (string, error) {
	tokenString, err := a.tokenManager.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return tokenString, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
