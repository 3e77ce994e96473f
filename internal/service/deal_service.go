package service

import (
	"context"
	"dealTracker/internal/logger"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
	"dealTracker/internal/view"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type DealService struct {
	repo DealRepository
	now  func() time.Time
}

func (s *DealService) Create(ctx context.Context, in models.Deal) (*models.Deal, error) {
	deal := &models.Deal{
		Name:        in.Name,
		Address:     in.Address,
		Status:      in.Status,
		Description: in.Description,
	}

	if err := s.repo.Create(ctx, deal); err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}

	logger.Info("Service: deal created", zap.Int64("deal_id", deal.ID))
	return deal, nil
}

func (s *DealService) GetAll(ctx context.Context) ([]*models.Deal, error) {
	deals, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get deals: %w", err)
	}
	return deals, nil
}

// GetByID returns nil without an error when the deal does not exist.
func (s *DealService) GetByID(ctx context.Context, id int64) (*models.Deal, error) {
	deal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: deal not found", zap.Int64("deal_id", id))
			return nil, nil
		}
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return deal, nil
}

// Update returns nil when the deal does not exist or the patch is empty.
func (s *DealService) Update(ctx context.Context, id int64, patch models.DealPatch) (*models.Deal, error) {
	if patch.IsEmpty() {
		logger.Debug("Service: empty deal patch ignored", zap.Int64("deal_id", id))
		return nil, nil
	}

	deal, err := s.GetByID(ctx, id)
	if err != nil || deal == nil {
		return nil, err
	}

	patch.Apply(deal)
	if err := s.repo.Update(ctx, deal); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update deal: %w", err)
	}

	logger.Info("Service: deal updated", zap.Int64("deal_id", id))
	return deal, nil
}

// Delete also removes every task, document, communication and contact of the deal.
func (s *DealService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete deal: %w", err)
	}

	logger.Info("Service: deal delete", zap.Int64("deal_id", id), zap.Bool("deleted", deleted))
	return deleted, nil
}

func (s *DealService) Stats(ctx context.Context) (view.DealStats, error) {
	deals, err := s.GetAll(ctx)
	if err != nil {
		return view.DealStats{}, err
	}
	return view.SummarizeDeals(deals, s.now()), nil
}
