package service

import (
	"context"
	"dealTracker/internal/logger"
	repo "dealTracker/internal/repository"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// validator checks cross-entity references before a write reaches storage.
type validator struct {
	deals    DealRepository
	contacts ContactRepository
}

func (v validator) dealExists(ctx context.Context, dealID int64) error {
	_, err := v.deals.GetByID(ctx, dealID)
	if err == nil {
		return nil
	}
	if errors.Is(err, repo.ErrNotFound) {
		logger.Info("Service: parent deal not found", zap.Int64("property_deal_id", dealID))
		return NewParentNotFound(dealID)
	}
	return fmt.Errorf("lookup deal %d: %w", dealID, err)
}

func (v validator) contactBelongsTo(ctx context.Context, contactID, dealID int64) error {
	contact, err := v.contacts.GetByID(ctx, contactID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("lookup contact %d: %w", contactID, err)
	}
	if err != nil || contact.PropertyDealID != dealID {
		logger.Info("Service: contact rejected",
			zap.Int64("contact_id", contactID),
			zap.Int64("property_deal_id", dealID))
		return NewContactMismatch(contactID, dealID)
	}
	return nil
}
