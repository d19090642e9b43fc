package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
)

const stateCookie = "oauth_state"

// FederatedProvider drives an upstream authorization-code flow.
type FederatedProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (model.FederatedProfile, error)
}

// OAuth handles the Google authorization-code endpoints. The callback
// reconciles the upstream identity into a local account and hands the
// token off through a redirect chain.
type OAuth struct {
	provider FederatedProvider
	service  AuthService
	logger   *logger.Logger
}

// NewOAuth creates a new OAuth handler instance.
func NewOAuth(provider FederatedProvider, service AuthService, logger *logger.Logger) *OAuth {
	return &OAuth{provider: provider, service: service, logger: logger}
}

// Authorize starts the flow: sets a state cookie and redirects the
// browser to the provider's consent page.
func (h *OAuth) Authorize(c *gin.Context) {
	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)

	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// Callback finishes the flow: checks state against the cookie,
// exchanges the code, reconciles the profile into a user and redirects
// to the token hand-off endpoint.
func (h *OAuth) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		h.logger.Warn("OAuth handler: state mismatch on callback")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	profile, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		h.logger.Error("OAuth handler: code exchange failed", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to authenticate with provider"})
		return
	}

	user, err := h.service.Reconcile(c.Request.Context(), profile)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	token, err := h.service.IssueToken(user)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/oauth2/redirect?token="+url.QueryEscape(token))
}

// Redirect is the final hand-off hop: it forwards the token to the
// frontend entry point as query parameters.
func (h *OAuth) Redirect(c *gin.Context) {
	token := c.Query("token")
	c.Redirect(http.StatusFound, "/?token="+url.QueryEscape(token)+"&auth=oauth2")
}
