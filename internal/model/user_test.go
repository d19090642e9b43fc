package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice@example.com", "alice@example.com"},
		{"  Alice@EXAMPLE.com  ", "alice@example.com"},
		{"BOB@Example.COM", "bob@example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestValidMealType(t *testing.T) {
	assert.True(t, ValidMealType("BREAKFAST"))
	assert.True(t, ValidMealType(" lunch "))
	assert.False(t, ValidMealType("BRUNCH"))
	assert.False(t, ValidMealType(""))
}

func TestValidGoalType(t *testing.T) {
	assert.True(t, ValidGoalType(GoalTypeWeight))
	assert.True(t, ValidGoalType(GoalTypeWorkoutsPerWeek))
	assert.True(t, ValidGoalType(GoalTypeCalories))
	assert.False(t, ValidGoalType("STEPS"))
}
