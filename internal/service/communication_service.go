package service

import (
	"context"
	"dealTracker/internal/logger"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type CommunicationService struct {
	repo      CommunicationRepository
	validator validator
}

func (s *CommunicationService) Create(ctx context.Context, in models.Communication) (*models.Communication, error) {
	if err := s.validator.dealExists(ctx, in.PropertyDealID); err != nil {
		return nil, err
	}

	comm := &models.Communication{
		PropertyDealID: in.PropertyDealID,
		Date:           models.DateOf(in.Date),
		Type:           in.Type,
		Subject:        in.Subject,
		Notes:          in.Notes,
	}

	if err := s.repo.Create(ctx, comm); err != nil {
		return nil, fmt.Errorf("create communication: %w", err)
	}

	logger.Info("Service: communication created",
		zap.Int64("communication_id", comm.ID),
		zap.Int64("property_deal_id", comm.PropertyDealID))
	return comm, nil
}

func (s *CommunicationService) ListByDeal(ctx context.Context, dealID int64) ([]*models.Communication, error) {
	comms, err := s.repo.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("list communications: %w", err)
	}
	return comms, nil
}

func (s *CommunicationService) GetByID(ctx context.Context, id int64) (*models.Communication, error) {
	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: communication not found", zap.Int64("communication_id", id))
			return nil, nil
		}
		return nil, fmt.Errorf("get communication: %w", err)
	}
	return comm, nil
}

func (s *CommunicationService) Update(ctx context.Context, id int64, patch models.CommunicationPatch) (*models.Communication, error) {
	if patch.IsEmpty() {
		logger.Debug("Service: empty communication patch ignored", zap.Int64("communication_id", id))
		return nil, nil
	}

	comm, err := s.GetByID(ctx, id)
	if err != nil || comm == nil {
		return nil, err
	}

	patch.Apply(comm)
	if err := s.repo.Update(ctx, comm); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update communication: %w", err)
	}

	logger.Info("Service: communication updated", zap.Int64("communication_id", id))
	return comm, nil
}

func (s *CommunicationService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete communication: %w", err)
	}

	logger.Info("Service: communication delete", zap.Int64("communication_id", id), zap.Bool("deleted", deleted))
	return deleted, nil
}
