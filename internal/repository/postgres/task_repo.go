package postgres

import (
	"context"
	"dealTracker/internal/logger"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TaskRepo struct {
	pool *pgxpool.Pool
}

const taskColumns = `id, property_deal_id, contact_id, name, description, due_date, status, created_at, updated_at`

func scanTask(row pgx.Row) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(
		&t.ID,
		&t.PropertyDealID,
		&t.ContactID,
		&t.Name,
		&t.Description,
		&t.DueDate,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

func (r *TaskRepo) Create(ctx context.Context, taskToCreate *models.Task) error {
	start := time.Now()

	query := `INSERT INTO tasks
				(property_deal_id, contact_id, name, description, due_date, status)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id, due_date, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		taskToCreate.PropertyDealID,
		taskToCreate.ContactID,
		taskToCreate.Name,
		taskToCreate.Description,
		models.DateOf(taskToCreate.DueDate),
		taskToCreate.Status,
	).Scan(&taskToCreate.ID, &taskToCreate.DueDate, &taskToCreate.CreatedAt, &taskToCreate.UpdatedAt)

	if err != nil {
		logger.Error("Repository: failed to insert task", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("insert task: %w", err)
	}

	warnIfSlow("create_task", start, slowWrite)
	return nil
}

func (r *TaskRepo) ListByDeal(ctx context.Context, dealID int64) ([]*models.Task, error) {
	start := time.Now()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE property_deal_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, dealID)
	if err != nil {
		logger.Error("Repository: failed to select tasks", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select tasks: %w", err)
	}

	tasks, err := collect(rows, scanTask)
	if err != nil {
		logger.Error("Repository: failed to read tasks", err)
		return nil, err
	}

	warnIfSlow("list_tasks", start, slowQuery)
	return tasks, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	start := time.Now()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: failed to select task", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select task: %w", err)
	}

	warnIfSlow("get_task", start, slowQuery)
	return t, nil
}

func (r *TaskRepo) Update(ctx context.Context, taskToUpdate *models.Task) error {
	start := time.Now()

	query := `UPDATE tasks
			SET contact_id = $1,
				name = $2,
				description = $3,
				due_date = $4,
				status = $5,
				updated_at = NOW()
			WHERE id = $6
			RETURNING property_deal_id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		taskToUpdate.ContactID,
		taskToUpdate.Name,
		taskToUpdate.Description,
		models.DateOf(taskToUpdate.DueDate),
		taskToUpdate.Status,
		taskToUpdate.ID,
	).Scan(&taskToUpdate.PropertyDealID, &taskToUpdate.CreatedAt, &taskToUpdate.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrNotFound
		}
		logger.Error("Repository: failed to update task", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("update task: %w", err)
	}

	warnIfSlow("update_task", start, slowQuery)
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		logger.Error("Repository: failed to delete task", err, zap.Duration("ms", time.Since(start)))
		return false, fmt.Errorf("delete task: %w", err)
	}

	warnIfSlow("delete_task", start, slowQuery)
	return tag.RowsAffected() > 0, nil
}
