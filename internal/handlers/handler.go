package handlers

import (
	"context"
	"dealTracker/internal/logger"
	"dealTracker/internal/models"
	"dealTracker/internal/service"
	"dealTracker/internal/view"
	"time"

	"go.uber.org/zap"
)

type DealService interface {
	Create(context.Context, models.Deal) (*models.Deal, error)
	GetAll(context.Context) ([]*models.Deal, error)
	GetByID(context.Context, int64) (*models.Deal, error)
	Update(context.Context, int64, models.DealPatch) (*models.Deal, error)
	Delete(context.Context, int64) (bool, error)
	Stats(context.Context) (view.DealStats, error)
}

type TaskService interface {
	Create(context.Context, models.Task) (*models.Task, error)
	ListByDeal(context.Context, int64) ([]*models.Task, error)
	GetByID(context.Context, int64) (*models.Task, error)
	Update(context.Context, int64, models.TaskPatch) (*models.Task, error)
	Delete(context.Context, int64) (bool, error)
}

type DocumentService interface {
	Create(context.Context, models.Document) (*models.Document, error)
	ListByDeal(context.Context, int64) ([]*models.Document, error)
	GetByID(context.Context, int64) (*models.Document, error)
	Update(context.Context, int64, models.DocumentPatch) (*models.Document, error)
	Delete(context.Context, int64) (bool, error)
}

type CommunicationService interface {
	Create(context.Context, models.Communication) (*models.Communication, error)
	ListByDeal(context.Context, int64) ([]*models.Communication, error)
	GetByID(context.Context, int64) (*models.Communication, error)
	Update(context.Context, int64, models.CommunicationPatch) (*models.Communication, error)
	Delete(context.Context, int64) (bool, error)
}

type ContactService interface {
	Create(context.Context, models.Contact) (*models.Contact, error)
	ListByDeal(context.Context, int64) ([]*models.Contact, error)
	GetByID(context.Context, int64) (*models.Contact, error)
	Update(context.Context, int64, models.ContactPatch) (*models.Contact, error)
	Delete(context.Context, int64) (bool, error)
}

type OverviewService interface {
	Deal(context.Context, int64) (*view.DealOverview, error)
}

type HealthChecker interface {
	HealthCheck(context.Context) error
}

type Handler struct {
	deals          DealService
	tasks          TaskService
	documents      DocumentService
	communications CommunicationService
	contacts       ContactService
	overview       OverviewService
	health         HealthChecker
	now            func() time.Time
}

func NewHandler(svc *service.Services) *Handler {
	return &Handler{
		deals:          svc.Deals,
		tasks:          svc.Tasks,
		documents:      svc.Documents,
		communications: svc.Communications,
		contacts:       svc.Contacts,
		overview:       svc.Overview,
		health:         svc,
		now:            svc.Now,
	}
}

func logOut(msg string, start time.Time, status int, fields ...zap.Field) {
	fields = append(fields,
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", status))
	logger.Info("HTTP_OUT: "+msg, fields...)
}
