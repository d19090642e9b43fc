// Package mocks contains testify mocks for the store and service
// interfaces used across unit tests.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fit4ever/fit4ever-server/internal/model"
)

type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

type WorkoutStore struct {
	mock.Mock
}

func (m *WorkoutStore) Create(ctx context.Context, workout model.Workout) (model.Workout, error) {
	args := m.Called(ctx, workout)
	return args.Get(0).(model.Workout), args.Error(1)
}

func (m *WorkoutStore) GetByID(ctx context.Context, id int64) (model.Workout, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Workout), args.Error(1)
}

func (m *WorkoutStore) GetByUserID(ctx context.Context, userID int64) ([]model.Workout, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Workout), args.Error(1)
}

func (m *WorkoutStore) Update(ctx context.Context, workout model.Workout, replaceExercises bool) (model.Workout, error) {
	args := m.Called(ctx, workout, replaceExercises)
	return args.Get(0).(model.Workout), args.Error(1)
}

func (m *WorkoutStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type FoodLogStore struct {
	mock.Mock
}

func (m *FoodLogStore) Create(ctx context.Context, log model.FoodLog) (model.FoodLog, error) {
	args := m.Called(ctx, log)
	return args.Get(0).(model.FoodLog), args.Error(1)
}

func (m *FoodLogStore) GetByID(ctx context.Context, id int64) (model.FoodLog, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.FoodLog), args.Error(1)
}

func (m *FoodLogStore) GetByUserIDAndDate(ctx context.Context, userID int64, date time.Time) ([]model.FoodLog, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).([]model.FoodLog), args.Error(1)
}

func (m *FoodLogStore) GetByUserIDAndDateRange(ctx context.Context, userID int64, from, to time.Time) ([]model.FoodLog, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).([]model.FoodLog), args.Error(1)
}

func (m *FoodLogStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type GoalStore struct {
	mock.Mock
}

func (m *GoalStore) Create(ctx context.Context, goal model.Goal) (model.Goal, error) {
	args := m.Called(ctx, goal)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *GoalStore) GetByID(ctx context.Context, id int64) (model.Goal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *GoalStore) GetByUserID(ctx context.Context, userID int64) ([]model.Goal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Goal), args.Error(1)
}

func (m *GoalStore) Update(ctx context.Context, goal model.Goal) (model.Goal, error) {
	args := m.Called(ctx, goal)
	return args.Get(0).(model.Goal), args.Error(1)
}

type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Issue(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Validate(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
