package inmemory

import (
	"context"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
)

type DocumentRepo struct {
	s *Storage
}

func (r *DocumentRepo) Create(ctx context.Context, docToCreate *models.Document) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	now := r.s.now()
	docToCreate.ID = r.s.documents.nextID()
	docToCreate.UploadDate = models.DateOf(docToCreate.UploadDate)
	docToCreate.CreatedAt = now
	docToCreate.UpdatedAt = now

	r.s.documents.put(docToCreate.ID, docToCreate)
	return nil
}

func (r *DocumentRepo) ListByDeal(ctx context.Context, dealID int64) ([]*models.Document, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	return r.s.documents.filter(func(d *models.Document) bool {
		return d.PropertyDealID == dealID
	}), nil
}

func (r *DocumentRepo) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	d, ok := r.s.documents.get(id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return d, nil
}

func (r *DocumentRepo) Update(ctx context.Context, docToUpdate *models.Document) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	existing, ok := r.s.documents.get(docToUpdate.ID)
	if !ok {
		return repo.ErrNotFound
	}

	docToUpdate.PropertyDealID = existing.PropertyDealID
	docToUpdate.CreatedAt = existing.CreatedAt
	docToUpdate.UpdatedAt = r.s.now()
	r.s.documents.put(docToUpdate.ID, docToUpdate)
	return nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	return r.s.documents.remove(id), nil
}
