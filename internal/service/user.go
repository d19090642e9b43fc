package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
)

// User provides profile operations for the authenticated user.
type User struct {
	userStore model.UserStore
	storage   model.Storage
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, storage model.Storage, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		storage:   storage,
		logger:    logger,
	}
}

// UpdateAvatar stores the uploaded image and records its public URL on
// the user row. The previous object, if any, is left behind; avatar
// keys are unique so stale ones are harmless.
func (s *User) UpdateAvatar(ctx context.Context, user model.User, reader io.Reader, size int64, contentType string) (model.User, error) {
	key := fmt.Sprintf("avatars/%d-%s", user.ID, uuid.NewString())

	if err := s.storage.Upload(ctx, key, reader, size, contentType); err != nil {
		return model.User{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	url := s.storage.PublicURL(key)
	user.ImageURL = &url

	savedUser, err := s.userStore.Update(ctx, user)
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("User service: failed to delete orphaned avatar", "key", key, "error", delErr)
		}
		return model.User{}, fmt.Errorf("failed to update user avatar: %w", err)
	}

	s.logger.Info("User service: avatar updated", "user_id", user.ID, "key", key)
	return savedUser, nil
}
