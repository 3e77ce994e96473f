package service

import (
	"context"
	"dealTracker/internal/models"
)

type HealthChecker interface {
	HealthCheck(context.Context) error
}

type DealRepository interface {
	Create(context.Context, *models.Deal) error
	GetAll(context.Context) ([]*models.Deal, error)
	GetByID(context.Context, int64) (*models.Deal, error)
	Update(context.Context, *models.Deal) error
	Delete(context.Context, int64) (bool, error)
}

type TaskRepository interface {
	Create(context.Context, *models.Task) error
	ListByDeal(context.Context, int64) ([]*models.Task, error)
	GetByID(context.Context, int64) (*models.Task, error)
	Update(context.Context, *models.Task) error
	Delete(context.Context, int64) (bool, error)
}

type DocumentRepository interface {
	Create(context.Context, *models.Document) error
	ListByDeal(context.Context, int64) ([]*models.Document, error)
	GetByID(context.Context, int64) (*models.Document, error)
	Update(context.Context, *models.Document) error
	Delete(context.Context, int64) (bool, error)
}

type CommunicationRepository interface {
	Create(context.Context, *models.Communication) error
	ListByDeal(context.Context, int64) ([]*models.Communication, error)
	GetByID(context.Context, int64) (*models.Communication, error)
	Update(context.Context, *models.Communication) error
	Delete(context.Context, int64) (bool, error)
}

type ContactRepository interface {
	Create(context.Context, *models.Contact) error
	ListByDeal(context.Context, int64) ([]*models.Contact, error)
	GetByID(context.Context, int64) (*models.Contact, error)
	Update(context.Context, *models.Contact) error
	Delete(context.Context, int64) (bool, error)
}

// Repositories is the storage backend as the services see it.
type Repositories struct {
	Health         HealthChecker
	Deals          DealRepository
	Tasks          TaskRepository
	Documents      DocumentRepository
	Communications CommunicationRepository
	Contacts       ContactRepository
}
