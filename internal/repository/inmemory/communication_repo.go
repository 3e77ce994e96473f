package inmemory

import (
	"context"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
)

type CommunicationRepo struct {
	s *Storage
}

func (r *CommunicationRepo) Create(ctx context.Context, commToCreate *models.Communication) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	now := r.s.now()
	commToCreate.ID = r.s.communications.nextID()
	commToCreate.Date = models.DateOf(commToCreate.Date)
	commToCreate.CreatedAt = now
	commToCreate.UpdatedAt = now

	r.s.communications.put(commToCreate.ID, commToCreate)
	return nil
}

func (r *CommunicationRepo) ListByDeal(ctx context.Context, dealID int64) ([]*models.Communication, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	return r.s.communications.filter(func(c *models.Communication) bool {
		return c.PropertyDealID == dealID
	}), nil
}

func (r *CommunicationRepo) GetByID(ctx context.Context, id int64) (*models.Communication, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	c, ok := r.s.communications.get(id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return c, nil
}

func (r *CommunicationRepo) Update(ctx context.Context, commToUpdate *models.Communication) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	existing, ok := r.s.communications.get(commToUpdate.ID)
	if !ok {
		return repo.ErrNotFound
	}

	commToUpdate.PropertyDealID = existing.PropertyDealID
	commToUpdate.CreatedAt = existing.CreatedAt
	commToUpdate.UpdatedAt = r.s.now()
	r.s.communications.put(commToUpdate.ID, commToUpdate)
	return nil
}

func (r *CommunicationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	return r.s.communications.remove(id), nil
}
