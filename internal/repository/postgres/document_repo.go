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

type DocumentRepo struct {
	pool *pgxpool.Pool
}

const documentColumns = `id, property_deal_id, name, type, upload_date, file_path, created_at, updated_at`

func scanDocument(row pgx.Row) (*models.Document, error) {
	d := &models.Document{}
	err := row.Scan(
		&d.ID,
		&d.PropertyDealID,
		&d.Name,
		&d.Type,
		&d.UploadDate,
		&d.FilePath,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

func (r *DocumentRepo) Create(ctx context.Context, docToCreate *models.Document) error {
	start := time.Now()

	query := `INSERT INTO documents
				(property_deal_id, name, type, upload_date, file_path)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id, upload_date, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		docToCreate.PropertyDealID,
		docToCreate.Name,
		docToCreate.Type,
		models.DateOf(docToCreate.UploadDate),
		docToCreate.FilePath,
	).Scan(&docToCreate.ID, &docToCreate.UploadDate, &docToCreate.CreatedAt, &docToCreate.UpdatedAt)

	if err != nil {
		logger.Error("Repository: failed to insert document", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("insert document: %w", err)
	}

	warnIfSlow("create_document", start, slowWrite)
	return nil
}

func (r *DocumentRepo) ListByDeal(ctx context.Context, dealID int64) ([]*models.Document, error) {
	start := time.Now()

	query := `SELECT ` + documentColumns + ` FROM documents WHERE property_deal_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, dealID)
	if err != nil {
		logger.Error("Repository: failed to select documents", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select documents: %w", err)
	}

	docs, err := collect(rows, scanDocument)
	if err != nil {
		logger.Error("Repository: failed to read documents", err)
		return nil, err
	}

	warnIfSlow("list_documents", start, slowQuery)
	return docs, nil
}

func (r *DocumentRepo) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	start := time.Now()

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	d, err := scanDocument(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: failed to select document", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("select document: %w", err)
	}

	warnIfSlow("get_document", start, slowQuery)
	return d, nil
}

func (r *DocumentRepo) Update(ctx context.Context, docToUpdate *models.Document) error {
	start := time.Now()

	query := `UPDATE documents
			SET name = $1,
				type = $2,
				upload_date = $3,
				file_path = $4,
				updated_at = NOW()
			WHERE id = $5
			RETURNING property_deal_id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		docToUpdate.Name,
		docToUpdate.Type,
		models.DateOf(docToUpdate.UploadDate),
		docToUpdate.FilePath,
		docToUpdate.ID,
	).Scan(&docToUpdate.PropertyDealID, &docToUpdate.CreatedAt, &docToUpdate.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrNotFound
		}
		logger.Error("Repository: failed to update document", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("update document: %w", err)
	}

	warnIfSlow("update_document", start, slowQuery)
	return nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	tag, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		logger.Error("Repository: failed to delete document", err, zap.Duration("ms", time.Since(start)))
		return false, fmt.Errorf("delete document: %w", err)
	}

	warnIfSlow("delete_document", start, slowQuery)
	return tag.RowsAffected() > 0, nil
}
