package inmemory

import (
	"context"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
)

type TaskRepo struct {
	s *Storage
}

func (r *TaskRepo) Create(ctx context.Context, taskToCreate *models.Task) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	now := r.s.now()
	taskToCreate.ID = r.s.tasks.nextID()
	taskToCreate.DueDate = models.DateOf(taskToCreate.DueDate)
	taskToCreate.CreatedAt = now
	taskToCreate.UpdatedAt = now

	r.s.tasks.put(taskToCreate.ID, taskToCreate)
	return nil
}

func (r *TaskRepo) ListByDeal(ctx context.Context, dealID int64) ([]*models.Task, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	return r.s.tasks.filter(func(t *models.Task) bool {
		return t.PropertyDealID == dealID
	}), nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	t, ok := r.s.tasks.get(id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return t, nil
}

func (r *TaskRepo) Update(ctx context.Context, taskToUpdate *models.Task) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	existing, ok := r.s.tasks.get(taskToUpdate.ID)
	if !ok {
		return repo.ErrNotFound
	}

	taskToUpdate.PropertyDealID = existing.PropertyDealID
	taskToUpdate.CreatedAt = existing.CreatedAt
	taskToUpdate.UpdatedAt = r.s.now()
	r.s.tasks.put(taskToUpdate.ID, taskToUpdate)
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	return r.s.tasks.remove(id), nil
}
