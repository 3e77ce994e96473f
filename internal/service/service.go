// Package service holds the business rules of the deal tracker: reference
// validation, partial updates and the derived views built from stored rows.
package service

import (
	"context"
	"dealTracker/internal/logger"
	"fmt"
	"time"
)

type Services struct {
	Deals          *DealService
	Tasks          *TaskService
	Documents      *DocumentService
	Communications *CommunicationService
	Contacts       *ContactService
	Overview       *OverviewService

	health HealthChecker
	now    func() time.Time
}

func New(repos Repositories, opts ...Option) *Services {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	v := validator{deals: repos.Deals, contacts: repos.Contacts}

	return &Services{
		Deals:          &DealService{repo: repos.Deals, now: o.now},
		Tasks:          &TaskService{repo: repos.Tasks, validator: v},
		Documents:      &DocumentService{repo: repos.Documents, validator: v, now: o.now},
		Communications: &CommunicationService{repo: repos.Communications, validator: v},
		Contacts:       &ContactService{repo: repos.Contacts, validator: v},
		Overview: &OverviewService{
			deals:          repos.Deals,
			tasks:          repos.Tasks,
			documents:      repos.Documents,
			communications: repos.Communications,
			contacts:       repos.Contacts,
			now:            o.now,
		},
		health: repos.Health,
		now:    o.now,
	}
}

// Now is the clock every derived view is computed against.
func (s *Services) Now() time.Time {
	return s.now()
}

func (s *Services) HealthCheck(ctx context.Context) error {
	if s.health == nil {
		return nil
	}
	if err := s.health.HealthCheck(ctx); err != nil {
		logger.Error("Service: health check failed", err)
		return fmt.Errorf("service health check: %w", err)
	}
	return nil
}
