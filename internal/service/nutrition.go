package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fit4ever/fit4ever-server/internal/apperrors"
	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
)

// Nutrition provides food-log CRUD and date-range summaries, scoped to
// the calling user.
type Nutrition struct {
	foodLogStore model.FoodLogStore
	logger       *logger.Logger
	now          func() time.Time
}

func NewNutrition(foodLogStore model.FoodLogStore, logger *logger.Logger) *Nutrition {
	return &Nutrition{
		foodLogStore: foodLogStore,
		logger:       logger,
		now:          time.Now,
	}
}

// NutritionTotals aggregates macros over a set of logs.
type NutritionTotals struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

// NutritionDay is the per-day slice of a summary.
type NutritionDay struct {
	Date   time.Time
	Totals NutritionTotals
}

// NutritionSummary covers the inclusive range [From, To].
type NutritionSummary struct {
	From   time.Time
	To     time.Time
	Totals NutritionTotals
	ByDay  []NutritionDay
}

func (s *Nutrition) CreateLog(ctx context.Context, userID int64, log model.FoodLog) (model.FoodLog, error) {
	if !model.ValidMealType(log.MealType) {
		return model.FoodLog{}, apperrors.NewErrValidation("mealType must be one of BREAKFAST/LUNCH/DINNER/SNACK")
	}
	log.MealType = strings.ToUpper(strings.TrimSpace(log.MealType))
	log.OwnerID = userID

	saved, err := s.foodLogStore.Create(ctx, log)
	if err != nil {
		return model.FoodLog{}, fmt.Errorf("failed to create food log: %w", err)
	}

	s.logger.Info("Nutrition service: food log created", "log_id", saved.ID, "user_id", userID)
	return saved, nil
}

func (s *Nutrition) ListByDate(ctx context.Context, userID int64, date time.Time) ([]model.FoodLog, error) {
	logs, err := s.foodLogStore.GetByUserIDAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list food logs: %w", err)
	}

	return logs, nil
}

func (s *Nutrition) Delete(ctx context.Context, userID, logID int64) error {
	log, err := s.foodLogStore.GetByID(ctx, logID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get food log: %w", err)
	}

	if log.OwnerID != userID {
		s.logger.Warn("Nutrition service: ownership violation",
			"log_id", logID, "owner_id", log.OwnerID, "user_id", userID)
		return apperrors.NewErrForbidden()
	}

	if err := s.foodLogStore.Delete(ctx, logID); err != nil {
		return fmt.Errorf("failed to delete food log: %w", err)
	}

	return nil
}

// Summary aggregates the user's logs over [from, to]. A zero to
// defaults to today, a zero from to six days before to (a trailing
// week).
func (s *Nutrition) Summary(ctx context.Context, userID int64, from, to time.Time) (NutritionSummary, error) {
	if to.IsZero() {
		to = s.now().Truncate(24 * time.Hour)
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -6)
	}

	logs, err := s.foodLogStore.GetByUserIDAndDateRange(ctx, userID, from, to)
	if err != nil {
		return NutritionSummary{}, fmt.Errorf("failed to get food logs in range: %w", err)
	}

	summary := NutritionSummary{From: from, To: to}
	byDay := map[time.Time]*NutritionTotals{}

	for _, log := range logs {
		summary.Totals.add(log)
		day, ok := byDay[log.Date]
		if !ok {
			day = &NutritionTotals{}
			byDay[log.Date] = day
		}
		day.add(log)
	}

	for date, totals := range byDay {
		summary.ByDay = append(summary.ByDay, NutritionDay{Date: date, Totals: *totals})
	}
	sort.Slice(summary.ByDay, func(i, j int) bool {
		return summary.ByDay[i].Date.Before(summary.ByDay[j].Date)
	})

	return summary, nil
}

func (t *NutritionTotals) add(log model.FoodLog) {
	t.Calories += log.Calories
	t.Protein += log.Protein
	t.Carbs += log.Carbs
	t.Fat += log.Fat
}
