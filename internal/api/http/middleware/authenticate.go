package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fit4ever/fit4ever-server/internal/apperrors"
	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
)

// ContextManager stores the resolved user on a request context.
type ContextManager interface {
	SetUser(c *gin.Context, user model.User)
}

// Authenticate validates bearer tokens and resolves the token subject
// to a user row before the handler runs.
type Authenticate struct {
	tokenManager   model.TokenManager
	userStore      model.UserStore
	contextManager ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, userStore model.UserStore, contextManager ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handler parses the Authorization header, validates the token and
// stores the resolved user on the context. Forged, expired and
// unresolvable tokens all abort with the same 401.
func (m *Authenticate) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			abortWithError(c, apperrors.NewErrMissingAuthorizationToken())
			return
		}

		subject, err := m.tokenManager.Validate(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected", "error", err)
			abortWithError(c, apperrors.NewErrInvalidAuthorizationToken())
			return
		}

		user, err := m.userStore.GetByEmail(c.Request.Context(), subject)
		if err != nil {
			m.logger.Warn("Authenticate middleware: token subject has no user row", "subject", subject)
			abortWithError(c, apperrors.NewErrInvalidAuthorizationToken())
			return
		}

		m.contextManager.SetUser(c, user)
		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortWithError(c *gin.Context, err *apperrors.APIError) {
	c.AbortWithStatusJSON(err.HTTPCode, gin.H{"error": err.Message})
}
