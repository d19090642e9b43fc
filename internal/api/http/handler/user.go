package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
)

// maxAvatarSize bounds avatar uploads to 5 MiB.
const maxAvatarSize = 5 << 20

// UserService covers profile operations for the authenticated user.
type UserService interface {
	UpdateAvatar(ctx context.Context, user model.User, reader io.Reader, size int64, contentType string) (model.User, error)
}

// User handles the profile endpoints.
type User struct {
	service        UserService
	contextManager ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler instance.
func NewUser(service UserService, contextManager ContextManager, logger *logger.Logger) *User {
	return &User{service: service, contextManager: contextManager, logger: logger}
}

type userResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Provider      string    `json:"provider"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		Provider:      user.Provider,
		ImageURL:      user.ImageURL,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// Me answers with the authenticated user's profile. The password hash
// never leaves the model layer.
func (h *User) Me(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UploadAvatar accepts a multipart image under the "file" field, stores
// it and answers with the updated profile.
func (h *User) UploadAvatar(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 5 MiB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	savedUser, err := h.service.UpdateAvatar(c.Request.Context(), user, file, fileHeader.Size, contentType)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(savedUser))
}
