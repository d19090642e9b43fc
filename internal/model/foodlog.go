package model

import (
	"context"
	"strings"
	"time"
)

// Meal types accepted on a food log, stored uppercase.
const (
	MealBreakfast = "BREAKFAST"
	MealLunch     = "LUNCH"
	MealDinner    = "DINNER"
	MealSnack     = "SNACK"
)

// FoodLogStore defines persistence operations for food logs.
type FoodLogStore interface {
	Create(ctx context.Context, log FoodLog) (FoodLog, error)
	GetByID(ctx context.Context, id int64) (FoodLog, error)
	GetByUserIDAndDate(ctx context.Context, userID int64, date time.Time) ([]FoodLog, error)
	GetByUserIDAndDateRange(ctx context.Context, userID int64, from, to time.Time) ([]FoodLog, error)
	Delete(ctx context.Context, id int64) error
}

// FoodLog is an owned resource recording a single eaten item.
type FoodLog struct {
	ID       int64
	OwnerID  int64
	Date     time.Time
	MealType string
	ItemName string
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

// ValidMealType reports whether mealType normalizes to a known meal.
func ValidMealType(mealType string) bool {
	switch strings.ToUpper(strings.TrimSpace(mealType)) {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
