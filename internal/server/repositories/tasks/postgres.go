package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const taskColumns = `id, user_id, title, description, done, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	err := row.Scan(&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Done, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (id, user_id, title, description, done)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + taskColumns

	id := uuid.NewString()
	created, err := scanTask(r.db.QueryRowContext(ctx, query,
		id, task.UserID, task.Title, task.Description, task.Done))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`UPDATE tasks
		 SET user_id = $2, title = $3, description = $4, done = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING ` + taskColumns

	updated, err := scanTask(r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.Done))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
