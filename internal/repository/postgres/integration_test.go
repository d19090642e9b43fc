//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fit4ever/fit4ever-server/internal/model"
	repo "github.com/fit4ever/fit4ever-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "fit4ever_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/fit4ever_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	t.Run("user_repository", func(t *testing.T) {
		u := model.User{
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: strPtr("hash"),
			Role:         model.RoleUser,
			Provider:     model.ProviderLocal,
		}
		saved, err := ur.Create(ctx, u)
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		byEmail, err := ur.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byEmail.ID)

		byID, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", byID.Email)

		exists, err := ur.ExistsByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.True(t, exists)

		// The unique index must surface a duplicate as the sentinel.
		_, err = ur.Create(ctx, u)
		require.ErrorIs(t, err, model.ErrDuplicateEmail)

		byID.Name = "Alice Updated"
		updated, err := ur.Update(ctx, byID)
		require.NoError(t, err)
		require.Equal(t, "Alice Updated", updated.Name)

		_, err = ur.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	owner, err := ur.Create(ctx, model.User{
		Name:     "Owner",
		Email:    "owner@example.com",
		Role:     model.RoleUser,
		Provider: model.ProviderLocal,
	})
	require.NoError(t, err)

	t.Run("workout_repository", func(t *testing.T) {
		wr := repo.NewWorkoutRepository(conn)
		w := model.Workout{
			OwnerID: owner.ID,
			Title:   "Leg day",
			Notes:   "felt strong",
			Date:    time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			Exercises: []model.Exercise{
				{Name: "Squat", SetsCount: intPtr(5), RepsPerSet: intPtr(5)},
				{Name: "Lunge"},
			},
		}
		saved, err := wr.Create(ctx, w)
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		require.Len(t, saved.Exercises, 2)

		got, err := wr.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, owner.ID, got.OwnerID)
		require.Len(t, got.Exercises, 2)

		got.Title = "Leg day v2"
		got.Exercises = []model.Exercise{{Name: "Deadlift"}}
		updated, err := wr.Update(ctx, got, true)
		require.NoError(t, err)
		require.Equal(t, "Leg day v2", updated.Title)
		require.Len(t, updated.Exercises, 1)

		list, err := wr.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 1)

		require.NoError(t, wr.Delete(ctx, saved.ID))
		_, err = wr.GetByID(ctx, saved.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
		require.ErrorIs(t, wr.Delete(ctx, saved.ID), model.ErrNotFound)
	})

	t.Run("foodlog_repository", func(t *testing.T) {
		fr := repo.NewFoodLogRepository(conn)
		day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

		saved, err := fr.Create(ctx, model.FoodLog{
			OwnerID:  owner.ID,
			Date:     day,
			MealType: model.MealLunch,
			ItemName: "Salad",
			Calories: 350,
			Protein:  12.5,
		})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		byDate, err := fr.GetByUserIDAndDate(ctx, owner.ID, day)
		require.NoError(t, err)
		require.Len(t, byDate, 1)

		inRange, err := fr.GetByUserIDAndDateRange(ctx, owner.ID, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
		require.NoError(t, err)
		require.Len(t, inRange, 1)

		require.NoError(t, fr.Delete(ctx, saved.ID))
		_, err = fr.GetByID(ctx, saved.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("goal_repository", func(t *testing.T) {
		gr := repo.NewGoalRepository(conn)

		saved, err := gr.Create(ctx, model.Goal{
			OwnerID:     owner.ID,
			Type:        model.GoalTypeWeight,
			TargetValue: 80,
			StartDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			Status:      model.GoalStatusActive,
		})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		saved.Status = model.GoalStatusCompleted
		updated, err := gr.Update(ctx, saved)
		require.NoError(t, err)
		require.Equal(t, model.GoalStatusCompleted, updated.Status)

		list, err := gr.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 1)
	})
}
