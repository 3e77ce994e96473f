package inmemory_test

import (
	"context"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
	"dealTracker/internal/repository/inmemory"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newStorage() (*inmemory.Storage, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	return inmemory.NewStorage().WithClock(clock.now), clock
}

func createDeal(t *testing.T, s *inmemory.Storage, name string) *models.Deal {
	t.Helper()
	d := &models.Deal{Name: name, Address: "12 Ocean Dr", Status: models.DealStatusActive}
	require.NoError(t, s.Deals().Create(context.Background(), d))
	return d
}

func TestStorage_HealthCheck(t *testing.T) {
	s, _ := newStorage()
	assert.NoError(t, s.HealthCheck(context.Background()))
	assert.NotPanics(t, s.Close)
}

func TestDealRepo_Create(t *testing.T) {
	s, clock := newStorage()

	first := createDeal(t, s, "Sunset Villa")
	second := createDeal(t, s, "Harbor Loft")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, clock.t, first.CreatedAt)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	deals, err := s.Deals().GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 2)
	assert.Equal(t, "Sunset Villa", deals[0].Name)
	assert.Equal(t, "Harbor Loft", deals[1].Name)
}

func TestDealRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	s, _ := newStorage()
	d := createDeal(t, s, "Sunset Villa")

	got, err := s.Deals().GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	got.Name = "mutated"
	again, err := s.Deals().GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunset Villa", again.Name, "stored row must not alias returned copies")

	_, err = s.Deals().GetByID(ctx, 42)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDealRepo_Update(t *testing.T) {
	ctx := context.Background()
	s, clock := newStorage()
	d := createDeal(t, s, "Sunset Villa")
	created := d.CreatedAt

	clock.advance(time.Hour)
	d.Status = models.DealStatusClosed
	d.CreatedAt = time.Time{}
	require.NoError(t, s.Deals().Update(ctx, d))

	got, err := s.Deals().GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DealStatusClosed, got.Status)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, clock.t, got.UpdatedAt)

	err = s.Deals().Update(ctx, &models.Deal{ID: 99})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDealRepo_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	s, _ := newStorage()
	d := createDeal(t, s, "Sunset Villa")
	other := createDeal(t, s, "Harbor Loft")

	contact := &models.Contact{PropertyDealID: d.ID, Name: "Jane", Role: "Agent"}
	require.NoError(t, s.Contacts().Create(ctx, contact))
	require.NoError(t, s.Tasks().Create(ctx, &models.Task{PropertyDealID: d.ID, ContactID: &contact.ID, Name: "Inspect"}))
	require.NoError(t, s.Documents().Create(ctx, &models.Document{PropertyDealID: d.ID, Name: "Contract"}))
	require.NoError(t, s.Communications().Create(ctx, &models.Communication{PropertyDealID: d.ID, Subject: "Kickoff"}))
	require.NoError(t, s.Tasks().Create(ctx, &models.Task{PropertyDealID: other.ID, Name: "Keep"}))

	deleted, err := s.Deals().Delete(ctx, d.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	tasks, _ := s.Tasks().ListByDeal(ctx, d.ID)
	docs, _ := s.Documents().ListByDeal(ctx, d.ID)
	comms, _ := s.Communications().ListByDeal(ctx, d.ID)
	contacts, _ := s.Contacts().ListByDeal(ctx, d.ID)
	assert.Empty(t, tasks)
	assert.Empty(t, docs)
	assert.Empty(t, comms)
	assert.Empty(t, contacts)

	kept, err := s.Tasks().ListByDeal(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	deleted, err = s.Deals().Delete(ctx, d.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTaskRepo_CreateNormalizesDueDate(t *testing.T) {
	ctx := context.Background()
	s, _ := newStorage()
	d := createDeal(t, s, "Sunset Villa")

	task := &models.Task{PropertyDealID: d.ID, Name: "Inspect",
		DueDate: time.Date(2024, 4, 1, 18, 45, 0, 0, time.UTC)}
	require.NoError(t, s.Tasks().Create(ctx, task))

	got, err := s.Tasks().GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), got.DueDate)
}

func TestTaskRepo_UpdateKeepsParent(t *testing.T) {
	ctx := context.Background()
	s, _ := newStorage()
	d := createDeal(t, s, "Sunset Villa")

	task := &models.Task{PropertyDealID: d.ID, Name: "Inspect"}
	require.NoError(t, s.Tasks().Create(ctx, task))

	task.PropertyDealID = 777
	task.Name = "Inspect roof"
	require.NoError(t, s.Tasks().Update(ctx, task))

	got, err := s.Tasks().GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.PropertyDealID)
	assert.Equal(t, "Inspect roof", got.Name)
}

func TestTaskRepo_Delete(t *testing.T) {
	ctx := context.Background()
	s, _ := newStorage()
	d := createDeal(t, s, "Sunset Villa")

	task := &models.Task{PropertyDealID: d.ID, Name: "Inspect"}
	require.NoError(t, s.Tasks().Create(ctx, task))

	tests := []struct {
		name string
		id   int64
		want bool
	}{
		{name: "existing task", id: task.ID, want: true},
		{name: "already deleted", id: task.ID, want: false},
		{name: "never existed", id: 500, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted, err := s.Tasks().Delete(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
		})
	}
}

func TestContactRepo_DeleteDetachesTasks(t *testing.T) {
	ctx := context.Background()
	s, clock := newStorage()
	d := createDeal(t, s, "Sunset Villa")

	contact := &models.Contact{PropertyDealID: d.ID, Name: "Jane", Role: "Agent"}
	require.NoError(t, s.Contacts().Create(ctx, contact))

	task := &models.Task{PropertyDealID: d.ID, ContactID: &contact.ID, Name: "Call Jane"}
	require.NoError(t, s.Tasks().Create(ctx, task))
	updatedAt := task.UpdatedAt

	clock.advance(time.Minute)
	deleted, err := s.Contacts().Delete(ctx, contact.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := s.Tasks().GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ContactID)
	assert.Equal(t, updatedAt, got.UpdatedAt)
}

func TestDocumentRepo_NullableFilePath(t *testing.T) {
	ctx := context.Background()
	s, _ := newStorage()
	d := createDeal(t, s, "Sunset Villa")

	path := "s3://bucket/contract.pdf"
	doc := &models.Document{PropertyDealID: d.ID, Name: "Contract", Type: "pdf", FilePath: &path}
	require.NoError(t, s.Documents().Create(ctx, doc))

	path = "changed"
	got, err := s.Documents().GetByID(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FilePath)

	got.FilePath = nil
	require.NoError(t, s.Documents().Update(ctx, got))

	again, err := s.Documents().GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, again.FilePath)
}

func TestCommunicationRepo_ListByDeal(t *testing.T) {
	ctx := context.Background()
	s, _ := newStorage()
	d := createDeal(t, s, "Sunset Villa")
	other := createDeal(t, s, "Harbor Loft")

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Communications().Create(ctx, &models.Communication{
			PropertyDealID: d.ID,
			Subject:        fmt.Sprintf("call %d", i),
		}))
	}
	require.NoError(t, s.Communications().Create(ctx, &models.Communication{PropertyDealID: other.ID}))

	comms, err := s.Communications().ListByDeal(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, comms, 3)
	assert.Equal(t, "call 0", comms[0].Subject)
	assert.Equal(t, "call 2", comms[2].Subject)

	empty, err := s.Communications().ListByDeal(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := inmemory.NewStorage()
	d := createDeal(t, s, "Sunset Villa")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.Tasks().Create(ctx, &models.Task{PropertyDealID: d.ID, Name: fmt.Sprintf("task %d", i)})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.Tasks().ListByDeal(ctx, d.ID)
		}()
	}
	wg.Wait()

	tasks, err := s.Tasks().ListByDeal(ctx, d.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 50)
}
