package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fit4ever/fit4ever-server/internal/model"
)

var _ model.FoodLogStore = (*FoodLogRepository)(nil)

type FoodLogRepository struct {
	db *Connection
}

func NewFoodLogRepository(db *Connection) *FoodLogRepository {
	return &FoodLogRepository{
		db: db,
	}
}

const foodLogColumns = `id, user_id, date, meal_type, item_name, calories, protein, carbs, fat`

func scanFoodLog(row pgx.Row) (model.FoodLog, error) {
	var log model.FoodLog
	err := row.Scan(
		&log.ID, &log.OwnerID, &log.Date, &log.MealType, &log.ItemName,
		&log.Calories, &log.Protein, &log.Carbs, &log.Fat,
	)
	return log, err
}

func (r *FoodLogRepository) Create(ctx context.Context, log model.FoodLog) (model.FoodLog, error) {
	query := `INSERT INTO food_logs (user_id, date, meal_type, item_name, calories, protein, carbs, fat)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + foodLogColumns

	saved, err := scanFoodLog(r.db.QueryRow(ctx, query,
		log.OwnerID, log.Date, log.MealType, log.ItemName,
		log.Calories, log.Protein, log.Carbs, log.Fat,
	))
	if err != nil {
		return model.FoodLog{}, fmt.Errorf("failed to create food log: %w", err)
	}

	return saved, nil
}

func (r *FoodLogRepository) GetByID(ctx context.Context, id int64) (model.FoodLog, error) {
	query := `SELECT ` + foodLogColumns + ` FROM food_logs WHERE id = $1`

	log, err := scanFoodLog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FoodLog{}, model.ErrNotFound
		}
		return model.FoodLog{}, fmt.Errorf("failed to get food log by id: %w", err)
	}

	return log, nil
}

func (r *FoodLogRepository) GetByUserIDAndDate(ctx context.Context, userID int64, date time.Time) ([]model.FoodLog, error) {
	query := `SELECT ` + foodLogColumns + ` FROM food_logs
			  WHERE user_id = $1 AND date = $2 ORDER BY meal_type`

	return r.queryLogs(ctx, query, userID, date)
}

func (r *FoodLogRepository) GetByUserIDAndDateRange(ctx context.Context, userID int64, from, to time.Time) ([]model.FoodLog, error) {
	query := `SELECT ` + foodLogColumns + ` FROM food_logs
			  WHERE user_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date`

	return r.queryLogs(ctx, query, userID, from, to)
}

func (r *FoodLogRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM food_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete food log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *FoodLogRepository) queryLogs(ctx context.Context, query string, args ...any) ([]model.FoodLog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get food logs: %w", err)
	}
	defer rows.Close()

	logs := []model.FoodLog{}
	for rows.Next() {
		log, err := scanFoodLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read food logs: %w", err)
	}

	return logs, nil
}
