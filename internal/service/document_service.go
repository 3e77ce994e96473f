package service

import (
	"context"
	"dealTracker/internal/logger"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type DocumentService struct {
	repo      DocumentRepository
	validator validator
	now       func() time.Time
}

// Create stamps the upload date with today; a caller supplied value is ignored.
func (s *DocumentService) Create(ctx context.Context, in models.Document) (*models.Document, error) {
	if err := s.validator.dealExists(ctx, in.PropertyDealID); err != nil {
		return nil, err
	}

	doc := &models.Document{
		PropertyDealID: in.PropertyDealID,
		Name:           in.Name,
		Type:           in.Type,
		UploadDate:     models.DateOf(s.now()),
		FilePath:       in.FilePath,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	logger.Info("Service: document created",
		zap.Int64("document_id", doc.ID),
		zap.Int64("property_deal_id", doc.PropertyDealID))
	return doc, nil
}

func (s *DocumentService) ListByDeal(ctx context.Context, dealID int64) ([]*models.Document, error) {
	docs, err := s.repo.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *DocumentService) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: document not found", zap.Int64("document_id", id))
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

func (s *DocumentService) Update(ctx context.Context, id int64, patch models.DocumentPatch) (*models.Document, error) {
	if patch.IsEmpty() {
		logger.Debug("Service: empty document patch ignored", zap.Int64("document_id", id))
		return nil, nil
	}

	doc, err := s.GetByID(ctx, id)
	if err != nil || doc == nil {
		return nil, err
	}

	patch.Apply(doc)
	if err := s.repo.Update(ctx, doc); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update document: %w", err)
	}

	logger.Info("Service: document updated", zap.Int64("document_id", id))
	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}

	logger.Info("Service: document delete", zap.Int64("document_id", id), zap.Bool("deleted", deleted))
	return deleted, nil
}
