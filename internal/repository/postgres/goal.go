package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fit4ever/fit4ever-server/internal/model"
)

var _ model.GoalStore = (*GoalRepository)(nil)

type GoalRepository struct {
	db *Connection
}

func NewGoalRepository(db *Connection) *GoalRepository {
	return &GoalRepository{
		db: db,
	}
}

const goalColumns = `id, user_id, type, target_value, start_date, end_date, status, created_at, updated_at`

func scanGoal(row pgx.Row) (model.Goal, error) {
	var goal model.Goal
	err := row.Scan(
		&goal.ID, &goal.OwnerID, &goal.Type, &goal.TargetValue,
		&goal.StartDate, &goal.EndDate, &goal.Status,
		&goal.CreatedAt, &goal.UpdatedAt,
	)
	return goal, err
}

func (r *GoalRepository) Create(ctx context.Context, goal model.Goal) (model.Goal, error) {
	query := `INSERT INTO goals (user_id, type, target_value, start_date, end_date, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + goalColumns

	saved, err := scanGoal(r.db.QueryRow(ctx, query,
		goal.OwnerID, goal.Type, goal.TargetValue, goal.StartDate, goal.EndDate, goal.Status,
	))
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return saved, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id int64) (model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`

	goal, err := scanGoal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Goal{}, model.ErrNotFound
		}
		return model.Goal{}, fmt.Errorf("failed to get goal by id: %w", err)
	}

	return goal, nil
}

func (r *GoalRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals by user id: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}

	return goals, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal model.Goal) (model.Goal, error) {
	query := `UPDATE goals
			  SET type = $2, target_value = $3, start_date = $4, end_date = $5, status = $6, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + goalColumns

	saved, err := scanGoal(r.db.QueryRow(ctx, query,
		goal.ID, goal.Type, goal.TargetValue, goal.StartDate, goal.EndDate, goal.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Goal{}, model.ErrNotFound
		}
		return model.Goal{}, fmt.Errorf("failed to update goal: %w", err)
	}

	return saved, nil
}
