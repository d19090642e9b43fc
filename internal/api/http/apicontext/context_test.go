package apicontext

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fit4ever/fit4ever-server/internal/model"
)

func TestManager_SetUser_GetUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewManager()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	user := model.User{ID: 42, Email: "user@example.com"}
	m.SetUser(c, user)

	got, ok := m.GetUser(c)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_GetUser_notSet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewManager()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := m.GetUser(c)
	assert.False(t, ok)
}

func TestManager_GetUser_wrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewManager()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("auth_user", "not a user")

	_, ok := m.GetUser(c)
	assert.False(t, ok)
}
