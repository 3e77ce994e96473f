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

type ContactService struct {
	repo      ContactRepository
	validator validator
}

func (s *ContactService) Create(ctx context.Context, in models.Contact) (*models.Contact, error) {
	if err := s.validator.dealExists(ctx, in.PropertyDealID); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		PropertyDealID: in.PropertyDealID,
		Name:           in.Name,
		Role:           in.Role,
		Organization:   in.Organization,
		Email:          in.Email,
		Phone:          in.Phone,
		Notes:          in.Notes,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	logger.Info("Service: contact created",
		zap.Int64("contact_id", contact.ID),
		zap.Int64("property_deal_id", contact.PropertyDealID))
	return contact, nil
}

func (s *ContactService) ListByDeal(ctx context.Context, dealID int64) ([]*models.Contact, error) {
	contacts, err := s.repo.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: contact not found", zap.Int64("contact_id", id))
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

func (s *ContactService) Update(ctx context.Context, id int64, patch models.ContactPatch) (*models.Contact, error) {
	if patch.IsEmpty() {
		logger.Debug("Service: empty contact patch ignored", zap.Int64("contact_id", id))
		return nil, nil
	}

	contact, err := s.GetByID(ctx, id)
	if err != nil || contact == nil {
		return nil, err
	}

	patch.Apply(contact)
	if err := s.repo.Update(ctx, contact); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}

	logger.Info("Service: contact updated", zap.Int64("contact_id", id))
	return contact, nil
}

// Delete leaves the contact's tasks in place with contact_id cleared.
func (s *ContactService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}

	logger.Info("Service: contact delete", zap.Int64("contact_id", id), zap.Bool("deleted", deleted))
	return deleted, nil
}
