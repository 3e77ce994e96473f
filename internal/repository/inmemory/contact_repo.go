package inmemory

import (
	"context"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
)

type ContactRepo struct {
	s *Storage
}

func (r *ContactRepo) Create(ctx context.Context, contactToCreate *models.Contact) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	now := r.s.now()
	contactToCreate.ID = r.s.contacts.nextID()
	contactToCreate.CreatedAt = now
	contactToCreate.UpdatedAt = now

	r.s.contacts.put(contactToCreate.ID, contactToCreate)
	return nil
}

func (r *ContactRepo) ListByDeal(ctx context.Context, dealID int64) ([]*models.Contact, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	return r.s.contacts.filter(func(c *models.Contact) bool {
		return c.PropertyDealID == dealID
	}), nil
}

func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	c, ok := r.s.contacts.get(id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return c, nil
}

func (r *ContactRepo) Update(ctx context.Context, contactToUpdate *models.Contact) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	existing, ok := r.s.contacts.get(contactToUpdate.ID)
	if !ok {
		return repo.ErrNotFound
	}

	contactToUpdate.PropertyDealID = existing.PropertyDealID
	contactToUpdate.CreatedAt = existing.CreatedAt
	contactToUpdate.UpdatedAt = r.s.now()
	r.s.contacts.put(contactToUpdate.ID, contactToUpdate)
	return nil
}

// Delete drops the contact and detaches it from any task that referenced it,
// mirroring ON DELETE SET NULL in the postgres schema.
func (r *ContactRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	if !r.s.contacts.remove(id) {
		return false, nil
	}

	for _, tid := range r.s.tasks.ids {
		t := r.s.tasks.rows[tid]
		if t.ContactID != nil && *t.ContactID == id {
			t.ContactID = nil
		}
	}
	return true, nil
}
