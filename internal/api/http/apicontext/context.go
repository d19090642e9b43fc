// Package apicontext stores and retrieves the authenticated user on a
// request context.
package apicontext

import (
	"github.com/gin-gonic/gin"

	"github.com/fit4ever/fit4ever-server/internal/model"
)

const userKey = "auth_user"

// Manager provides typed access to the authenticated user stashed on a
// gin context by the authenticate middleware.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUser stores the resolved user on the request context.
func (m *Manager) SetUser(c *gin.Context, user model.User) {
	c.Set(userKey, user)
}

// GetUser retrieves the authenticated user from the request context.
// The boolean is false when the request never passed authentication.
func (m *Manager) GetUser(c *gin.Context) (model.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return model.User{}, false
	}

	user, ok := value.(model.User)
	if !ok {
		return model.User{}, false
	}

	return user, true
}
