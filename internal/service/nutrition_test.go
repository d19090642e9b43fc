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

func TestNutrition_CreateLog_NormalizesMealType(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.FoodLogStore{}
	log := testutil.MakeNoopLogger()

	store.On("Create", mock.Anything, mock.MatchedBy(func(l model.FoodLog) bool {
		return l.MealType == model.MealLunch && l.OwnerID == int64(7)
	})).Return(model.FoodLog{ID: 1, MealType: model.MealLunch}, nil)

	s := NewNutrition(store, log)

	saved, err := s.CreateLog(ctx, 7, model.FoodLog{MealType: " lunch ", ItemName: "Salad"})
	require.NoError(t, err)
	assert.Equal(t, model.MealLunch, saved.MealType)
	store.AssertExpectations(t)
}

func TestNutrition_CreateLog_InvalidMealType(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.FoodLogStore{}
	log := testutil.MakeNoopLogger()

	s := NewNutrition(store, log)

	_, err := s.CreateLog(ctx, 7, model.FoodLog{MealType: "BRUNCH", ItemName: "Eggs"})
	require.Error(t, err)

	apiErr, ok := err.(*apperrors.APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.HTTPCode)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNutrition_Delete_ForeignLogForbidden(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.FoodLogStore{}
	log := testutil.MakeNoopLogger()

	store.On("GetByID", mock.Anything, int64(1)).Return(model.FoodLog{ID: 1, OwnerID: 99}, nil)

	s := NewNutrition(store, log)

	err := s.Delete(ctx, 7, 1)
	require.Error(t, err)

	apiErr, ok := err.(*apperrors.APIError)
	require.True(t, ok)
	assert.Equal(t, 403, apiErr.HTTPCode)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNutrition_Summary_DefaultsToTrailingWeek(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.FoodLogStore{}
	log := testutil.MakeNoopLogger()

	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	expectedFrom := today.AddDate(0, 0, -6)

	store.On("GetByUserIDAndDateRange", mock.Anything, int64(7), expectedFrom, today).
		Return([]model.FoodLog{}, nil)

	s := NewNutrition(store, log)
	s.now = func() time.Time { return today.Add(15 * time.Hour) }

	summary, err := s.Summary(ctx, 7, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, expectedFrom, summary.From)
	assert.Equal(t, today, summary.To)
	store.AssertExpectations(t)
}

func TestNutrition_Summary_AggregatesByDay(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.FoodLogStore{}
	log := testutil.MakeNoopLogger()

	day1 := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	store.On("GetByUserIDAndDateRange", mock.Anything, int64(7), day1, day2).
		Return([]model.FoodLog{
			{Date: day2, Calories: 300, Protein: 20},
			{Date: day1, Calories: 500, Protein: 30, Fat: 10},
			{Date: day1, Calories: 200, Carbs: 40},
		}, nil)

	s := NewNutrition(store, log)

	summary, err := s.Summary(ctx, 7, day1, day2)
	require.NoError(t, err)

	assert.Equal(t, 1000, summary.Totals.Calories)
	assert.Equal(t, 50.0, summary.Totals.Protein)

	require.Len(t, summary.ByDay, 2)
	assert.Equal(t, day1, summary.ByDay[0].Date)
	assert.Equal(t, 700, summary.ByDay[0].Totals.Calories)
	assert.Equal(t, day2, summary.ByDay[1].Date)
	assert.Equal(t, 300, summary.ByDay[1].Totals.Calories)
}
