package storage

import (
	"context"
	"database/sql"

	"foodplate-dashboard/dashboard-svc/internal/domain"
)

const CreateActivityTable = `
CREATE TABLE IF NOT EXISTS dashboard_activity (
	id         SERIAL PRIMARY KEY,
	operation  TEXT        NOT NULL,
	food_id    INTEGER,
	succeeded  BOOLEAN     NOT NULL,
	error      TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PostgresJournal struct {
	DB *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{DB: db}
}

func (j *PostgresJournal) Migrate(ctx context.Context) error {
	_, err := j.DB.ExecContext(ctx, CreateActivityTable)
	return err
}

func (j *PostgresJournal) Record(ctx context.Context, entry domain.ActivityEntry) error {
	var foodID sql.NullInt64
	if entry.FoodID != 0 {
		foodID = sql.NullInt64{Int64: int64(entry.FoodID), Valid: true}
	}
	var errText sql.NullString
	if entry.Error != "" {
		errText = sql.NullString{String: entry.Error, Valid: true}
	}

	_, err := j.DB.ExecContext(ctx,
		"INSERT INTO dashboard_activity (operation, food_id, succeeded, error, created_at) VALUES ($1, $2, $3, $4, $5)",
		entry.Operation, foodID, entry.Succeeded, errText, entry.CreatedAt)
	return err
}

func (j *PostgresJournal) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	rows, err := j.DB.QueryContext(ctx, `
		SELECT id, operation, COALESCE(food_id, 0), succeeded, COALESCE(error, ''), created_at
		FROM dashboard_activity
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.ActivityEntry{}
	for rows.Next() {
		var e domain.ActivityEntry
		if err := rows.Scan(&e.ID, &e.Operation, &e.FoodID, &e.Succeeded, &e.Error, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
