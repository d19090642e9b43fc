package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fit4ever/fit4ever-server/internal/model"
)

var _ model.WorkoutStore = (*WorkoutRepository)(nil)

type WorkoutRepository struct {
	db *Connection
}

func NewWorkoutRepository(db *Connection) *WorkoutRepository {
	return &WorkoutRepository{
		db: db,
	}
}

func (r *WorkoutRepository) Create(ctx context.Context, workout model.Workout) (model.Workout, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Workout{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO workouts (user_id, title, notes, workout_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, query, workout.OwnerID, workout.Title, workout.Notes, workout.Date).
		Scan(&workout.ID, &workout.CreatedAt, &workout.UpdatedAt)
	if err != nil {
		return model.Workout{}, fmt.Errorf("failed to create workout: %w", err)
	}

	workout.Exercises, err = insertExercises(ctx, tx, workout.ID, workout.Exercises)
	if err != nil {
		return model.Workout{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Workout{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return workout, nil
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id int64) (model.Workout, error) {
	var workout model.Workout
	query := `SELECT id, user_id, title, notes, workout_date, created_at, updated_at
			  FROM workouts WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&workout.ID, &workout.OwnerID, &workout.Title, &workout.Notes, &workout.Date,
		&workout.CreatedAt, &workout.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Workout{}, model.ErrNotFound
		}
		return model.Workout{}, fmt.Errorf("failed to get workout by id: %w", err)
	}

	workout.Exercises, err = r.exercisesByWorkout(ctx, workout.ID)
	if err != nil {
		return model.Workout{}, err
	}

	return workout, nil
}

func (r *WorkoutRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Workout, error) {
	query := `SELECT id, user_id, title, notes, workout_date, created_at, updated_at
			  FROM workouts WHERE user_id = $1 ORDER BY workout_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workouts by user id: %w", err)
	}
	defer rows.Close()

	workouts := []model.Workout{}
	for rows.Next() {
		var workout model.Workout
		err := rows.Scan(
			&workout.ID, &workout.OwnerID, &workout.Title, &workout.Notes, &workout.Date,
			&workout.CreatedAt, &workout.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workouts: %w", err)
	}

	return workouts, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, workout model.Workout, replaceExercises bool) (model.Workout, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Workout{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE workouts
			  SET title = $2, notes = $3, workout_date = $4, updated_at = now()
			  WHERE id = $1
			  RETURNING updated_at`

	err = tx.QueryRow(ctx, query, workout.ID, workout.Title, workout.Notes, workout.Date).
		Scan(&workout.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Workout{}, model.ErrNotFound
		}
		return model.Workout{}, fmt.Errorf("failed to update workout: %w", err)
	}

	if replaceExercises {
		if _, err := tx.Exec(ctx, `DELETE FROM exercises WHERE workout_id = $1`, workout.ID); err != nil {
			return model.Workout{}, fmt.Errorf("failed to delete exercises: %w", err)
		}
		workout.Exercises, err = insertExercises(ctx, tx, workout.ID, workout.Exercises)
		if err != nil {
			return model.Workout{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Workout{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if !replaceExercises {
		workout.Exercises, err = r.exercisesByWorkout(ctx, workout.ID)
		if err != nil {
			return model.Workout{}, err
		}
	}

	return workout, nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *WorkoutRepository) exercisesByWorkout(ctx context.Context, workoutID int64) ([]model.Exercise, error) {
	query := `SELECT id, workout_id, name, sets_count, reps_per_set, weight
			  FROM exercises WHERE workout_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}
	defer rows.Close()

	exercises := []model.Exercise{}
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.SetsCount, &e.RepsPerSet, &e.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exercises: %w", err)
	}

	return exercises, nil
}

func insertExercises(ctx context.Context, tx pgx.Tx, workoutID int64, exercises []model.Exercise) ([]model.Exercise, error) {
	saved := make([]model.Exercise, 0, len(exercises))
	for _, e := range exercises {
		query := `INSERT INTO exercises (workout_id, name, sets_count, reps_per_set, weight)
				  VALUES ($1, $2, $3, $4, $5)
				  RETURNING id`

		e.WorkoutID = workoutID
		if err := tx.QueryRow(ctx, query, workoutID, e.Name, e.SetsCount, e.RepsPerSet, e.Weight).Scan(&e.ID); err != nil {
			return nil, fmt.Errorf("failed to insert exercise: %w", err)
		}
		saved = append(saved, e)
	}

	return saved, nil
}
