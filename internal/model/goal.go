package model

import (
	"context"
	"time"
)

// Goal types.
const (
	GoalTypeWeight          = "WEIGHT"
	GoalTypeWorkoutsPerWeek = "WORKOUTS_PER_WEEK"
	GoalTypeCalories        = "CALORIES"
)

// Goal statuses.
const (
	GoalStatusActive    = "ACTIVE"
	GoalStatusCompleted = "COMPLETED"
	GoalStatusCancelled = "CANCELLED"
)

// GoalStore defines persistence operations for goals.
type GoalStore interface {
	Create(ctx context.Context, goal Goal) (Goal, error)
	GetByID(ctx context.Context, id int64) (Goal, error)
	GetByUserID(ctx context.Context, userID int64) ([]Goal, error)
	Update(ctx context.Context, goal Goal) (Goal, error)
}

// Goal is an owned resource describing a target over a date range.
type Goal struct {
	ID          int64
	OwnerID     int64
	Type        string
	TargetValue float64
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidGoalType reports whether t is a known goal type.
func ValidGoalType(t string) bool {
	switch t {
	case GoalTypeWeight, GoalTypeWorkoutsPerWeek, GoalTypeCalories:
		return true
	}
	return false
}

// ValidGoalStatus reports whether s is a known goal status.
func ValidGoalStatus(s string) bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusCancelled:
		return true
	}
	return false
}
