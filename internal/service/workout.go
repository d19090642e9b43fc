package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fit4ever/fit4ever-server/internal/apperrors"
	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
)

// Workout provides workout CRUD scoped to the calling user. Every
// access to an existing row compares its owner to the caller and fails
// closed with Forbidden on mismatch.
type Workout struct {
	workoutStore model.WorkoutStore
	logger       *logger.Logger
}

func NewWorkout(workoutStore model.WorkoutStore, logger *logger.Logger) *Workout {
	return &Workout{
		workoutStore: workoutStore,
		logger:       logger,
	}
}

func (s *Workout) Create(ctx context.Context, userID int64, workout model.Workout) (model.Workout, error) {
	workout.OwnerID = userID

	saved, err := s.workoutStore.Create(ctx, workout)
	if err != nil {
		return model.Workout{}, fmt.Errorf("failed to create workout: %w", err)
	}

	s.logger.Info("Workout service: workout created", "workout_id", saved.ID, "user_id", userID)
	return saved, nil
}

func (s *Workout) List(ctx context.Context, userID int64) ([]model.Workout, error) {
	workouts, err := s.workoutStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	return workouts, nil
}

func (s *Workout) Get(ctx context.Context, userID, workoutID int64) (model.Workout, error) {
	workout, err := s.requireOwned(ctx, userID, workoutID)
	if err != nil {
		return model.Workout{}, err
	}

	return workout, nil
}

// Update applies partial changes. A non-nil exercises slice replaces
// the stored set wholesale.
func (s *Workout) Update(ctx context.Context, userID, workoutID int64, title, notes *string, date *time.Time, exercises []model.Exercise) (model.Workout, error) {
	workout, err := s.requireOwned(ctx, userID, workoutID)
	if err != nil {
		return model.Workout{}, err
	}

	if title != nil {
		workout.Title = *title
	}
	if notes != nil {
		workout.Notes = *notes
	}
	if date != nil {
		workout.Date = *date
	}

	replace := exercises != nil
	if replace {
		workout.Exercises = exercises
	}

	saved, err := s.workoutStore.Update(ctx, workout, replace)
	if err != nil {
		return model.Workout{}, fmt.Errorf("failed to update workout: %w", err)
	}

	return saved, nil
}

func (s *Workout) Delete(ctx context.Context, userID, workoutID int64) error {
	if _, err := s.requireOwned(ctx, userID, workoutID); err != nil {
		return err
	}

	if err := s.workoutStore.Delete(ctx, workoutID); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}

	s.logger.Info("Workout service: workout deleted", "workout_id", workoutID, "user_id", userID)
	return nil
}

func (s *Workout) requireOwned(ctx context.Context, userID, workoutID int64) (model.Workout, error) {
	workout, err := s.workoutStore.GetByID(ctx, workoutID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Workout{}, model.ErrNotFound
	}
	if err != nil {
		return model.Workout{}, fmt.Errorf("failed to get workout: %w", err)
	}

	if workout.OwnerID != userID {
		s.logger.Warn("Workout service: ownership violation",
			"workout_id", workoutID, "owner_id", workout.OwnerID, "user_id", userID)
		return model.Workout{}, apperrors.NewErrForbidden()
	}

	return workout, nil
}
