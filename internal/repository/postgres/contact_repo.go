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

type ContactRepo struct {
	pool *pgxpool.Pool
}

const contactColumns = `id, property_deal_id, name, role, organization, email, phone, notes, created_at, updated_at`

func scanContact(row pgx.Row) (*models.Contact, error) {
	c := &models.Contact{}
	err := row.Scan(
		&c.ID,
		&c.PropertyDealID,
		&c.Name,
		&c.Role,
		&c.Organization,
		&c.Email,
		&c.Phone,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *ContactRepo) Create(ctx context.Context, contactToCreate *models.Contact) error {
	start := time.Now()

	query := `INSERT INTO contacts
				(property_deal_id, name, role, organization, email, phone, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		contactToCreate.PropertyDealID,
		contactToCreate.Name,
		contactToCreate.Role,
		contactToCreate.Organization,
		contactToCreate.Email,
		contactToCreate.Phone,
		contactToCreate.Notes,
	).Scan(&contactToCreate.ID, &contactToCreate.CreatedAt, &contactToCreate.UpdatedAt)

	if err != nil {
		logger.Error("Repository: failed to insert contact", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("insert contact: %w", err)
	}

	warnIfSlow("create_contact", start, slowWrite)
	return nil
}

func (r *ContactRepo) ListByDeal(ctx context.Context, dealID int64) ([]*models.Contact, error) {
	start := time.Now()

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE property_deal_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, dealID)
	if err != nil {
		logger.Error("Repository: failed to select contacts", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select contacts: %w", err)
	}

	contacts, err := collect(rows, scanContact)
	if err != nil {
		logger.Error("Repository: failed to read contacts", err)
		return nil, err
	}

	warnIfSlow("list_contacts", start, slowQuery)
	return contacts, nil
}

func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	start := time.Now()

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	c, err := scanContact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: failed to select contact", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select contact: %w", err)
	}

	warnIfSlow("get_contact", start, slowQuery)
	return c, nil
}

func (r *ContactRepo) Update(ctx context.Context, contactToUpdate *models.Contact) error {
	start := time.Now()

	query := `UPDATE contacts
			SET name = $1,
				role = $2,
				organization = $3,
				email = $4,
				phone = $5,
				notes = $6,
				updated_at = NOW()
			WHERE id = $7
			RETURNING property_deal_id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		contactToUpdate.Name,
		contactToUpdate.Role,
		contactToUpdate.Organization,
		contactToUpdate.Email,
		contactToUpdate.Phone,
		contactToUpdate.Notes,
		contactToUpdate.ID,
	).Scan(&contactToUpdate.PropertyDealID, &contactToUpdate.CreatedAt, &contactToUpdate.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrNotFound
		}
		logger.Error("Repository: failed to update contact", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("update contact: %w", err)
	}

	warnIfSlow("update_contact", start, slowQuery)
	return nil
}

// Delete relies on the tasks.contact_id foreign key (ON DELETE SET NULL)
// to detach referencing tasks.
func (r *ContactRepo) Delete(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		logger.Error("Repository: failed to delete contact", err, zap.Duration("ms", time.Since(start)))
		return false, fmt.Errorf("delete contact: %w", err)
	}

	warnIfSlow("delete_contact", start, slowQuery)
	return tag.RowsAffected() > 0, nil
}
