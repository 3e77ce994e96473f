package service

import (
	"context"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
	"dealTracker/internal/view"
	"errors"
	"fmt"
	"time"
)

// OverviewService assembles the read-only views. They are recomputed from
// storage on every call.
type OverviewService struct {
	deals          DealRepository
	tasks          TaskRepository
	documents      DocumentRepository
	communications CommunicationRepository
	contacts       ContactRepository
	now            func() time.Time
}

// Deal returns nil when the deal does not exist.
func (s *OverviewService) Deal(ctx context.Context, dealID int64) (*view.DealOverview, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("overview deal: %w", err)
	}

	tasks, err := s.tasks.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("overview tasks: %w", err)
	}
	docs, err := s.documents.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("overview documents: %w", err)
	}
	comms, err := s.communications.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("overview communications: %w", err)
	}
	contacts, err := s.contacts.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("overview contacts: %w", err)
	}

	return view.Overview(deal, tasks, docs, comms, contacts, s.now()), nil
}

// DealOverdue is one deal's share of the overdue report.
type DealOverdue struct {
	Deal  *models.Deal
	Tasks []*models.Task
}

// OverdueReport lists, per deal, the tasks that are overdue today. Deals with
// nothing overdue are left out.
func (s *OverviewService) OverdueReport(ctx context.Context) ([]DealOverdue, error) {
	deals, err := s.deals.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("overdue report deals: %w", err)
	}

	today := s.now()
	report := []DealOverdue{}
	for _, d := range deals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tasks, err := s.tasks.ListByDeal(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("overdue report tasks of deal %d: %w", d.ID, err)
		}

		overdue := view.OverdueTasks(tasks, today)
		if len(overdue) > 0 {
			report = append(report, DealOverdue{Deal: d, Tasks: overdue})
		}
	}
	return report, nil
}
