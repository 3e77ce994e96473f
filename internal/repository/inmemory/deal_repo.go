package inmemory

import (
	"context"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
)

type DealRepo struct {
	s *Storage
}

func (r *DealRepo) Create(ctx context.Context, dealToCreate *models.Deal) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	now := r.s.now()
	dealToCreate.ID = r.s.deals.nextID()
	dealToCreate.CreatedAt = now
	dealToCreate.UpdatedAt = now

	r.s.deals.put(dealToCreate.ID, dealToCreate)
	return nil
}

func (r *DealRepo) GetAll(ctx context.Context) ([]*models.Deal, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	return r.s.deals.filter(nil), nil
}

func (r *DealRepo) GetByID(ctx context.Context, id int64) (*models.Deal, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	d, ok := r.s.deals.get(id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return d, nil
}

func (r *DealRepo) Update(ctx context.Context, dealToUpdate *models.Deal) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	existing, ok := r.s.deals.get(dealToUpdate.ID)
	if !ok {
		return repo.ErrNotFound
	}

	dealToUpdate.CreatedAt = existing.CreatedAt
	dealToUpdate.UpdatedAt = r.s.now()
	r.s.deals.put(dealToUpdate.ID, dealToUpdate)
	return nil
}

// Delete removes the deal together with everything it owns.
func (r *DealRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	if _, ok := r.s.deals.get(id); !ok {
		return false, nil
	}

	r.s.tasks.removeWhere(func(t *models.Task) bool { return t.PropertyDealID == id })
	r.s.documents.removeWhere(func(d *models.Document) bool { return d.PropertyDealID == id })
	r.s.communications.removeWhere(func(c *models.Communication) bool { return c.PropertyDealID == id })
	r.s.contacts.removeWhere(func(c *models.Contact) bool { return c.PropertyDealID == id })

	return r.s.deals.remove(id), nil
}
