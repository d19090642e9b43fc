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

// Goal provides goal CRUD and progress, scoped to the calling user.
type Goal struct {
	goalStore model.GoalStore
	logger    *logger.Logger
}

func NewGoal(goalStore model.GoalStore, logger *logger.Logger) *Goal {
	return &Goal{
		goalStore: goalStore,
		logger:    logger,
	}
}

// GoalProgress reports a fraction of completion in [0, 1].
type GoalProgress struct {
	ID          int64
	Type        string
	TargetValue float64
	Progress    float64
	Status      string
}

// UpdateGoalParams carries optional field changes; nil leaves a field
// untouched.
type UpdateGoalParams struct {
	Type        *string
	TargetValue *float64
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *string
}

func (s *Goal) Create(ctx context.Context, userID int64, goal model.Goal) (model.Goal, error) {
	if !model.ValidGoalType(goal.Type) {
		return model.Goal{}, apperrors.NewErrValidation("type must be one of: WEIGHT | WORKOUTS_PER_WEEK | CALORIES")
	}

	goal.OwnerID = userID
	goal.Status = model.GoalStatusActive

	saved, err := s.goalStore.Create(ctx, goal)
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}

	s.logger.Info("Goal service: goal created", "goal_id", saved.ID, "user_id", userID)
	return saved, nil
}

func (s *Goal) List(ctx context.Context, userID int64) ([]model.Goal, error) {
	goals, err := s.goalStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return goals, nil
}

func (s *Goal) Update(ctx context.Context, userID, goalID int64, params UpdateGoalParams) (model.Goal, error) {
	goal, err := s.requireOwned(ctx, userID, goalID)
	if err != nil {
		return model.Goal{}, err
	}

	if params.Type != nil {
		if !model.ValidGoalType(*params.Type) {
			return model.Goal{}, apperrors.NewErrValidation("type must be one of: WEIGHT | WORKOUTS_PER_WEEK | CALORIES")
		}
		goal.Type = *params.Type
	}
	if params.TargetValue != nil {
		goal.TargetValue = *params.TargetValue
	}
	if params.StartDate != nil {
		goal.StartDate = *params.StartDate
	}
	if params.EndDate != nil {
		goal.EndDate = *params.EndDate
	}
	if params.Status != nil {
		if !model.ValidGoalStatus(*params.Status) {
			return model.Goal{}, apperrors.NewErrValidation("status must be one of: ACTIVE | COMPLETED | CANCELLED")
		}
		goal.Status = *params.Status
	}

	saved, err := s.goalStore.Update(ctx, goal)
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to update goal: %w", err)
	}

	return saved, nil
}

// Progress returns a demo completion fraction per goal type. Real
// aggregation over workouts and food logs is a known followup.
func (s *Goal) Progress(ctx context.Context, userID, goalID int64) (GoalProgress, error) {
	goal, err := s.requireOwned(ctx, userID, goalID)
	if err != nil {
		return GoalProgress{}, err
	}

	var progress float64
	switch goal.Type {
	case model.GoalTypeWeight:
		progress = 0.4
	case model.GoalTypeWorkoutsPerWeek:
		progress = 0.6
	case model.GoalTypeCalories:
		progress = 0.5
	}

	return GoalProgress{
		ID:          goal.ID,
		Type:        goal.Type,
		TargetValue: goal.TargetValue,
		Progress:    progress,
		Status:      goal.Status,
	}, nil
}

func (s *Goal) requireOwned(ctx context.Context, userID, goalID int64) (model.Goal, error) {
	goal, err := s.goalStore.GetByID(ctx, goalID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Goal{}, model.ErrNotFound
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to get goal: %w", err)
	}

	if goal.OwnerID != userID {
		s.logger.Warn("Goal service: ownership violation",
			"goal_id", goalID, "owner_id", goal.OwnerID, "user_id", userID)
		return model.Goal{}, apperrors.NewErrForbidden()
	}

	return goal, nil
}
