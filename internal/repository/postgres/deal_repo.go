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

type DealRepo struct {
	pool *pgxpool.Pool
}

const dealColumns = `id, name, address, status, description, created_at, updated_at`

func scanDeal(row pgx.Row) (*models.Deal, error) {
	d := &models.Deal{}
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Address,
		&d.Status,
		&d.Description,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

func (r *DealRepo) Create(ctx context.Context, dealToCreate *models.Deal) error {
	start := time.Now()

	query := `INSERT INTO property_deals
				(name, address, status, description)
				VALUES ($1, $2, $3, $4)
				RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		dealToCreate.Name,
		dealToCreate.Address,
		dealToCreate.Status,
		dealToCreate.Description,
	).Scan(&dealToCreate.ID, &dealToCreate.CreatedAt, &dealToCreate.UpdatedAt)

	if err != nil {
		logger.Error("Repository: failed to insert deal", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("insert deal: %w", err)
	}

	warnIfSlow("create_deal", start, slowWrite)
	return nil
}

func (r *DealRepo) GetAll(ctx context.Context) ([]*models.Deal, error) {
	start := time.Now()

	query := `SELECT ` + dealColumns + ` FROM property_deals ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("Repository: failed to select deals", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select deals: %w", err)
	}

	deals, err := collect(rows, scanDeal)
	if err != nil {
		logger.Error("Repository: failed to read deals", err)
		return nil, err
	}

	warnIfSlow("get_deals", start, slowQuery)
	return deals, nil
}

func (r *DealRepo) GetByID(ctx context.Context, id int64) (*models.Deal, error) {
	start := time.Now()

	query := `SELECT ` + dealColumns + ` FROM property_deals WHERE id = $1`

	d, err := scanDeal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: failed to select deal", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select deal: %w", err)
	}

	warnIfSlow("get_deal", start, slowQuery)
	return d, nil
}

func (r *DealRepo) Update(ctx context.Context, dealToUpdate *models.Deal) error {
	start := time.Now()

	query := `UPDATE property_deals
			SET name = $1,
				address = $2,
				status = $3,
				description = $4,
				updated_at = NOW()
			WHERE id = $5
			RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		dealToUpdate.Name,
		dealToUpdate.Address,
		dealToUpdate.Status,
		dealToUpdate.Description,
		dealToUpdate.ID,
	).Scan(&dealToUpdate.CreatedAt, &dealToUpdate.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrNotFound
		}
		logger.Error("Repository: failed to update deal", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("update deal: %w", err)
	}

	warnIfSlow("update_deal", start, slowQuery)
	return nil
}

// Delete removes the deal and all rows it owns in one transaction.
// Tasks go first because they may reference the deal's contacts.
func (r *DealRepo) Delete(ctx context.Context, id int64) (bool, error) {
	start := time.Now()
	existed := false

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var found int64
		err := tx.QueryRow(ctx, `SELECT id FROM property_deals WHERE id = $1 FOR UPDATE`, id).Scan(&found)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lock deal: %w", err)
		}

		for _, table := range []string{"tasks", "documents", "communications", "contacts"} {
			tag, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE property_deal_id = $1`, id)
			if err != nil {
				return fmt.Errorf("delete %s: %w", table, err)
			}
			logger.Debug("Repository: cascade delete",
				zap.String("table", table),
				zap.Int64("deal_id", id),
				zap.Int64("rows", tag.RowsAffected()))
		}

		tag, err := tx.Exec(ctx, `DELETE FROM property_deals WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete deal: %w", err)
		}
		existed = tag.RowsAffected() > 0
		return nil
	})

	if err != nil {
		logger.Error("Repository: cascade delete failed", err,
			zap.Int64("deal_id", id),
			zap.Duration("ms", time.Since(start)))
		return false, err
	}

	warnIfSlow("delete_deal", start, slowQuery)
	return existed, nil
}
