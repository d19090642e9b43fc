package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fit4ever/fit4ever-server/internal/model"
)

// ContextManager retrieves the authenticated user stored by the
// authenticate middleware.
type ContextManager interface {
	GetUser(c *gin.Context) (model.User, bool)
}

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// currentUser resolves the authenticated user or answers 401. A missing
// user on a protected route means the middleware chain is broken.
func currentUser(c *gin.Context, cm ContextManager) (model.User, bool) {
	user, ok := cm.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return model.User{}, false
	}
	return user, true
}

// pathID parses the named int64 path parameter or answers 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// queryDate parses an optional date-only query parameter. A missing
// parameter yields the zero time.
func queryDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be formatted as YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
