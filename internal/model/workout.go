package model

import (
	"context"
	"time"
)

// WorkoutStore defines persistence operations for workouts and their
// exercises. Update replaces the exercise set when a new one is given.
type WorkoutStore interface {
	Create(ctx context.Context, workout Workout) (Workout, error)
	GetByID(ctx context.Context, id int64) (Workout, error)
	GetByUserID(ctx context.Context, userID int64) ([]Workout, error)
	Update(ctx context.Context, workout Workout, replaceExercises bool) (Workout, error)
	Delete(ctx context.Context, id int64) error
}

// Workout is an owned resource: every access must check OwnerID against
// the caller resolved by the authorizer.
type Workout struct {
	ID        int64
	OwnerID   int64
	Title     string
	Notes     string
	Date      time.Time
	Exercises []Exercise
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Exercise is a child row of a workout.
type Exercise struct {
	ID         int64
	WorkoutID  int64
	Name       string
	SetsCount  *int
	RepsPerSet *int
	Weight     *float64
}
