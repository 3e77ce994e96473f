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

type TaskService struct {
	repo      TaskRepository
	validator validator
}

// Create rejects the task when the deal is missing or when the contact
// belongs to some other deal. Nothing is stored in either case.
func (s *TaskService) Create(ctx context.Context, in models.Task) (*models.Task, error) {
	if err := s.validator.dealExists(ctx, in.PropertyDealID); err != nil {
		return nil, err
	}
	if in.ContactID != nil {
		if err := s.validator.contactBelongsTo(ctx, *in.ContactID, in.PropertyDealID); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		PropertyDealID: in.PropertyDealID,
		ContactID:      in.ContactID,
		Name:           in.Name,
		Description:    in.Description,
		DueDate:        models.DateOf(in.DueDate),
		Status:         in.Status,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	logger.Info("Service: task created",
		zap.Int64("task_id", task.ID),
		zap.Int64("property_deal_id", task.PropertyDealID))
	return task, nil
}

func (s *TaskService) ListByDeal(ctx context.Context, dealID int64) ([]*models.Task, error) {
	tasks, err := s.repo.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: task not found", zap.Int64("task_id", id))
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// Update re-checks a non-null contact against the task's own deal.
// Any present field refreshes updated_at, even if the stored values do not change.
func (s *TaskService) Update(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	if patch.IsEmpty() {
		logger.Debug("Service: empty task patch ignored", zap.Int64("task_id", id))
		return nil, nil
	}

	task, err := s.GetByID(ctx, id)
	if err != nil || task == nil {
		return nil, err
	}

	if patch.ContactID.Set && patch.ContactID.Value != nil {
		if err := s.validator.contactBelongsTo(ctx, *patch.ContactID.Value, task.PropertyDealID); err != nil {
			return nil, err
		}
	}

	patch.Apply(task)
	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	logger.Info("Service: task updated", zap.Int64("task_id", id))
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}

	logger.Info("Service: task delete", zap.Int64("task_id", id), zap.Bool("deleted", deleted))
	return deleted, nil
}
