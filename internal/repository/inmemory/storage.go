package inmemory

import (
	"context"
	"dealTracker/internal/logger"
	"dealTracker/internal/models"
	"sync"
	"time"
)

// table keeps rows by id plus their insertion order.
type table[T any] struct {
	rows map[int64]*T
	ids  []int64
	seq  int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]*T)}
}

func (t *table[T]) nextID() int64 {
	t.seq++
	return t.seq
}

func (t *table[T]) put(id int64, row *T) {
	if _, ok := t.rows[id]; !ok {
		t.ids = append(t.ids, id)
	}
	c := *row
	t.rows[id] = &c
}

func (t *table[T]) get(id int64) (*T, bool) {
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	c := *row
	return &c, true
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for ind, val := range t.ids {
		if val == id {
			t.ids = append(t.ids[:ind], t.ids[ind+1:]...)
			break
		}
	}
	return true
}

// removeWhere deletes every row matching fn and reports how many went away.
func (t *table[T]) removeWhere(fn func(*T) bool) int {
	removed := 0
	kept := t.ids[:0]
	for _, id := range t.ids {
		if fn(t.rows[id]) {
			delete(t.rows, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	t.ids = kept
	return removed
}

// filter returns copies of matching rows in insertion order.
func (t *table[T]) filter(fn func(*T) bool) []*T {
	res := []*T{}
	for _, id := range t.ids {
		row := t.rows[id]
		if fn != nil && !fn(row) {
			continue
		}
		c := *row
		res = append(res, &c)
	}
	return res
}

// Storage is a process-local backend. One lock guards all five tables so a
// cascade delete is observed atomically.
type Storage struct {
	mtx            *sync.RWMutex
	deals          *table[models.Deal]
	tasks          *table[models.Task]
	documents      *table[models.Document]
	communications *table[models.Communication]
	contacts       *table[models.Contact]
	now            func() time.Time
}

func NewStorage() *Storage {
	return &Storage{
		mtx:            &sync.RWMutex{},
		deals:          newTable[models.Deal](),
		tasks:          newTable[models.Task](),
		documents:      newTable[models.Document](),
		communications: newTable[models.Communication](),
		contacts:       newTable[models.Contact](),
		now:            time.Now,
	}
}

// WithClock replaces the timestamp source, used by tests.
func (s *Storage) WithClock(now func() time.Time) *Storage {
	s.now = now
	return s
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: in-memory storage is healthy")
	return nil
}

func (s *Storage) Close() {
	logger.Info("Repository: in-memory storage closed")
}

func (s *Storage) Deals() *DealRepo {
	return &DealRepo{s: s}
}

func (s *Storage) Tasks() *TaskRepo {
	return &TaskRepo{s: s}
}

func (s *Storage) Documents() *DocumentRepo {
	return &DocumentRepo{s: s}
}

func (s *Storage) Communications() *CommunicationRepo {
	return &CommunicationRepo{s: s}
}

func (s *Storage) Contacts() *ContactRepo {
	return &ContactRepo{s: s}
}
