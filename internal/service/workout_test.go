package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fit4ever/fit4ever-server/internal/apperrors"
	servermocks "github.com/fit4ever/fit4ever-server/internal/mocks"
	"github.com/fit4ever/fit4ever-server/internal/model"
	"github.com/fit4ever/fit4ever-server/internal/testutil"
)

func TestWorkout_Create_SetsOwner(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.WorkoutStore{}
	log := testutil.MakeNoopLogger()

	store.On("Create", mock.Anything, mock.MatchedBy(func(w model.Workout) bool {
		return w.OwnerID == int64(7) && w.Title == "Leg day"
	})).Return(model.Workout{ID: 1, OwnerID: 7, Title: "Leg day"}, nil)

	s := NewWorkout(store, log)

	saved, err := s.Create(ctx, 7, model.Workout{Title: "Leg day"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.OwnerID)
	store.AssertExpectations(t)
}

// A workout that exists but belongs to someone else must come back
// Forbidden, not NotFound.
func TestWorkout_Get_ForeignWorkoutForbidden(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.WorkoutStore{}
	log := testutil.MakeNoopLogger()

	store.On("GetByID", mock.Anything, int64(1)).Return(model.Workout{ID: 1, OwnerID: 99}, nil)

	s := NewWorkout(store, log)

	_, err := s.Get(ctx, 7, 1)
	require.Error(t, err)

	apiErr, ok := err.(*apperrors.APIError)
	require.True(t, ok)
	assert.Equal(t, 403, apiErr.HTTPCode)
}

func TestWorkout_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.WorkoutStore{}
	log := testutil.MakeNoopLogger()

	store.On("GetByID", mock.Anything, int64(404)).Return(model.Workout{}, model.ErrNotFound)

	s := NewWorkout(store, log)

	_, err := s.Get(ctx, 7, 404)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestWorkout_Update_PartialFields(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.WorkoutStore{}
	log := testutil.MakeNoopLogger()

	existing := model.Workout{
		ID:      1,
		OwnerID: 7,
		Title:   "Old title",
		Notes:   "old notes",
		Date:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	store.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)

	newTitle := "New title"
	store.On("Update", mock.Anything, mock.MatchedBy(func(w model.Workout) bool {
		return w.Title == "New title" && w.Notes == "old notes"
	}), false).Return(existing, nil)

	s := NewWorkout(store, log)

	_, err := s.Update(ctx, 7, 1, &newTitle, nil, nil, nil)
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestWorkout_Update_ReplacesExercises(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.WorkoutStore{}
	log := testutil.MakeNoopLogger()

	store.On("GetByID", mock.Anything, int64(1)).Return(model.Workout{ID: 1, OwnerID: 7}, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(w model.Workout) bool {
		return len(w.Exercises) == 1 && w.Exercises[0].Name == "Squat"
	}), true).Return(model.Workout{ID: 1, OwnerID: 7}, nil)

	s := NewWorkout(store, log)

	_, err := s.Update(ctx, 7, 1, nil, nil, nil, []model.Exercise{{Name: "Squat"}})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestWorkout_Delete_ForeignWorkoutForbidden(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.WorkoutStore{}
	log := testutil.MakeNoopLogger()

	store.On("GetByID", mock.Anything, int64(1)).Return(model.Workout{ID: 1, OwnerID: 99}, nil)

	s := NewWorkout(store, log)

	err := s.Delete(ctx, 7, 1)
	require.Error(t, err)

	apiErr, ok := err.(*apperrors.APIError)
	require.True(t, ok)
	assert.Equal(t, 403, apiErr.HTTPCode)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
