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

type CommunicationRepo struct {
	pool *pgxpool.Pool
}

const communicationColumns = `id, property_deal_id, date, type, subject, notes, created_at, updated_at`

func scanCommunication(row pgx.Row) (*models.Communication, error) {
	c := &models.Communication{}
	err := row.Scan(
		&c.ID,
		&c.PropertyDealID,
		&c.Date,
		&c.Type,
		&c.Subject,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *CommunicationRepo) Create(ctx context.Context, commToCreate *models.Communication) error {
	start := time.Now()

	query := `INSERT INTO communications
				(property_deal_id, date, type, subject, notes)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id, date, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		commToCreate.PropertyDealID,
		models.DateOf(commToCreate.Date),
		commToCreate.Type,
		commToCreate.Subject,
		commToCreate.Notes,
	).Scan(&commToCreate.ID, &commToCreate.Date, &commToCreate.CreatedAt, &commToCreate.UpdatedAt)

	if err != nil {
		logger.Error("Repository: failed to insert communication", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("insert communication: %w", err)
	}

	warnIfSlow("create_communication", start, slowWrite)
	return nil
}

func (r *CommunicationRepo) ListByDeal(ctx context.Context, dealID int64) ([]*models.Communication, error) {
	start := time.Now()

	query := `SELECT ` + communicationColumns + ` FROM communications WHERE property_deal_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, dealID)
	if err != nil {
		logger.Error("Repository: failed to select communications", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select communications: %w", err)
	}

	comms, err := collect(rows, scanCommunication)
	if err != nil {
		logger.Error("Repository: failed to read communications", err)
		return nil, err
	}

	warnIfSlow("list_communications", start, slowQuery)
	return comms, nil
}

func (r *CommunicationRepo) GetByID(ctx context.Context, id int64) (*models.Communication, error) {
	start := time.Now()

	query := `SELECT ` + communicationColumns + ` FROM communications WHERE id = $1`

	c, err := scanCommunication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: failed to select communication", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select communication: %w", err)
	}

	warnIfSlow("get_communication", start, slowQuery)
	return c, nil
}

func (r *CommunicationRepo) Update(ctx context.Context, commToUpdate *models.Communication) error {
	start := time.Now()

	query := `UPDATE communications
			SET date = $1,
				type = $2,
				subject = $3,
				notes = $4,
				updated_at = NOW()
			WHERE id = $5
			RETURNING property_deal_id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		models.DateOf(commToUpdate.Date),
		commToUpdate.Type,
		commToUpdate.Subject,
		commToUpdate.Notes,
		commToUpdate.ID,
	).Scan(&commToUpdate.PropertyDealID, &commToUpdate.CreatedAt, &commToUpdate.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrNotFound
		}
		logger.Error("Repository: failed to update communication", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("update communication: %w", err)
	}

	warnIfSlow("update_communication", start, slowQuery)
	return nil
}

func (r *CommunicationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	tag, err := r.pool.Exec(ctx, `DELETE FROM communications WHERE id = $1`, id)
	if err != nil {
		logger.Error("Repository: failed to delete communication", err, zap.Duration("ms", time.Since(start)))
		return false, fmt.Errorf("delete communication: %w", err)
	}

	warnIfSlow("delete_communication", start, slowQuery)
	return tag.RowsAffected() > 0, nil
}
