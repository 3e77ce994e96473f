package service_test

import (
	"context"
	"dealTracker/internal/models"
	repo "dealTracker/internal/repository"
	"dealTracker/internal/repository/inmemory"
	"dealTracker/internal/service"
	"dealTracker/internal/view"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) Create(ctx context.Context, d *models.Deal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDealRepository) GetAll(ctx context.Context) ([]*models.Deal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deal), args.Error(1)
}

func (m *MockDealRepository) GetByID(ctx context.Context, id int64) (*models.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deal), args.Error(1)
}

func (m *MockDealRepository) Update(ctx context.Context, d *models.Deal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDealRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, t *models.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) ListByDeal(ctx context.Context, dealID int64) ([]*models.Task, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *models.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *models.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) ListByDeal(ctx context.Context, dealID int64) ([]*models.Contact, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Contact), args.Error(1)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, c *models.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var (
	_ service.DealRepository    = (*MockDealRepository)(nil)
	_ service.TaskRepository    = (*MockTaskRepository)(nil)
	_ service.ContactRepository = (*MockContactRepository)(nil)
	_ service.HealthChecker     = (*MockHealthChecker)(nil)
)

var fixedNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func businessCode(t *testing.T, err error) string {
	t.Helper()
	var busErr *service.BusinessError
	require.True(t, errors.As(err, &busErr), "expected BusinessError, got %v", err)
	return busErr.Code
}

func TestServices_HealthCheck(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*MockHealthChecker)
		expectError bool
	}{
		{
			name: "success - storage is reachable",
			setupMock: func(m *MockHealthChecker) {
				m.On("HealthCheck", mock.Anything).Return(nil)
			},
			expectError: false,
		},
		{
			name: "error - storage is down",
			setupMock: func(m *MockHealthChecker) {
				m.On("HealthCheck", mock.Anything).Return(errors.New("db connection failed"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := new(MockHealthChecker)
			tt.setupMock(checker)

			svc := service.New(service.Repositories{Health: checker})
			err := svc.HealthCheck(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "service health check")
			} else {
				assert.NoError(t, err)
			}

			checker.AssertExpectations(t)
		})
	}
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	contactID := int64(7)
	due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     models.Task
		setupMock func(*MockDealRepository, *MockContactRepository, *MockTaskRepository)
		wantCode  string
		wantErr   bool
	}{
		{
			name:  "success - without contact",
			input: models.Task{PropertyDealID: 1, Name: "Inspect", DueDate: due, Status: models.TaskStatusToDo},
			setupMock: func(d *MockDealRepository, c *MockContactRepository, tr *MockTaskRepository) {
				d.On("GetByID", mock.Anything, int64(1)).Return(&models.Deal{ID: 1}, nil)
				tr.On("Create", mock.Anything, mock.MatchedBy(func(t *models.Task) bool {
					return t.Name == "Inspect" && t.ContactID == nil && t.DueDate.Equal(due)
				})).Return(nil)
			},
		},
		{
			name:  "success - contact of the same deal",
			input: models.Task{PropertyDealID: 1, ContactID: &contactID, Name: "Call"},
			setupMock: func(d *MockDealRepository, c *MockContactRepository, tr *MockTaskRepository) {
				d.On("GetByID", mock.Anything, int64(1)).Return(&models.Deal{ID: 1}, nil)
				c.On("GetByID", mock.Anything, contactID).Return(&models.Contact{ID: contactID, PropertyDealID: 1}, nil)
				tr.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:  "error - deal does not exist",
			input: models.Task{PropertyDealID: 9, Name: "Inspect"},
			setupMock: func(d *MockDealRepository, c *MockContactRepository, tr *MockTaskRepository) {
				d.On("GetByID", mock.Anything, int64(9)).Return(nil, repo.ErrNotFound)
			},
			wantErr:  true,
			wantCode: service.CodeParentNotFound,
		},
		{
			name:  "error - contact of another deal",
			input: models.Task{PropertyDealID: 1, ContactID: &contactID, Name: "Call"},
			setupMock: func(d *MockDealRepository, c *MockContactRepository, tr *MockTaskRepository) {
				d.On("GetByID", mock.Anything, int64(1)).Return(&models.Deal{ID: 1}, nil)
				c.On("GetByID", mock.Anything, contactID).Return(&models.Contact{ID: contactID, PropertyDealID: 2}, nil)
			},
			wantErr:  true,
			wantCode: service.CodeContactMismatch,
		},
		{
			name:  "error - contact does not exist",
			input: models.Task{PropertyDealID: 1, ContactID: &contactID, Name: "Call"},
			setupMock: func(d *MockDealRepository, c *MockContactRepository, tr *MockTaskRepository) {
				d.On("GetByID", mock.Anything, int64(1)).Return(&models.Deal{ID: 1}, nil)
				c.On("GetByID", mock.Anything, contactID).Return(nil, repo.ErrNotFound)
			},
			wantErr:  true,
			wantCode: service.CodeContactMismatch,
		},
		{
			name:  "error - storage failure is propagated",
			input: models.Task{PropertyDealID: 1, Name: "Inspect"},
			setupMock: func(d *MockDealRepository, c *MockContactRepository, tr *MockTaskRepository) {
				d.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deals := new(MockDealRepository)
			contacts := new(MockContactRepository)
			tasks := new(MockTaskRepository)
			tt.setupMock(deals, contacts, tasks)

			svc := service.New(service.Repositories{Deals: deals, Contacts: contacts, Tasks: tasks})
			result, err := svc.Tasks.Create(ctx, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				if tt.wantCode != "" {
					assert.Equal(t, tt.wantCode, businessCode(t, err))
				} else {
					var busErr *service.BusinessError
					assert.False(t, errors.As(err, &busErr))
				}
				tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, result)
			}

			deals.AssertExpectations(t)
			contacts.AssertExpectations(t)
			tasks.AssertExpectations(t)
		})
	}
}

func TestTaskService_UpdateRevalidatesContact(t *testing.T) {
	ctx := context.Background()
	other := int64(5)

	tasks := new(MockTaskRepository)
	contacts := new(MockContactRepository)
	tasks.On("GetByID", mock.Anything, int64(3)).Return(&models.Task{ID: 3, PropertyDealID: 1}, nil)
	contacts.On("GetByID", mock.Anything, other).Return(&models.Contact{ID: other, PropertyDealID: 2}, nil)

	svc := service.New(service.Repositories{Tasks: tasks, Contacts: contacts})
	result, err := svc.Tasks.Update(ctx, 3, models.TaskPatch{ContactID: models.Value(other)})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, service.CodeContactMismatch, businessCode(t, err))
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_UpdateClearsContact(t *testing.T) {
	ctx := context.Background()
	contactID := int64(5)

	tasks := new(MockTaskRepository)
	tasks.On("GetByID", mock.Anything, int64(3)).Return(&models.Task{ID: 3, PropertyDealID: 1, ContactID: &contactID}, nil)
	tasks.On("Update", mock.Anything, mock.MatchedBy(func(t *models.Task) bool {
		return t.ContactID == nil
	})).Return(nil)

	svc := service.New(service.Repositories{Tasks: tasks})
	result, err := svc.Tasks.Update(ctx, 3, models.TaskPatch{ContactID: models.Null[int64]()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.ContactID)
	tasks.AssertExpectations(t)
}

func TestDealService_UpdateNotFoundAndEmpty(t *testing.T) {
	ctx := context.Background()
	name := "Renamed"

	t.Run("missing deal returns nil", func(t *testing.T) {
		deals := new(MockDealRepository)
		deals.On("GetByID", mock.Anything, int64(4)).Return(nil, repo.ErrNotFound)

		svc := service.New(service.Repositories{Deals: deals})
		result, err := svc.Deals.Update(ctx, 4, models.DealPatch{Name: &name})

		assert.NoError(t, err)
		assert.Nil(t, result)
		deals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("empty patch touches nothing", func(t *testing.T) {
		deals := new(MockDealRepository)

		svc := service.New(service.Repositories{Deals: deals})
		result, err := svc.Deals.Update(ctx, 4, models.DealPatch{})

		assert.NoError(t, err)
		assert.Nil(t, result)
		deals.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		deals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDealService_DeleteError(t *testing.T) {
	deals := new(MockDealRepository)
	deals.On("Delete", mock.Anything, int64(1)).Return(false, errors.New("tx aborted"))

	svc := service.New(service.Repositories{Deals: deals})
	deleted, err := svc.Deals.Delete(context.Background(), 1)

	assert.Error(t, err)
	assert.False(t, deleted)
	assert.Contains(t, err.Error(), "tx aborted")
}

func newInMemoryServices(now func() time.Time) *service.Services {
	s := inmemory.NewStorage().WithClock(now)
	return service.New(service.Repositories{
		Health:         s,
		Deals:          s.Deals(),
		Tasks:          s.Tasks(),
		Documents:      s.Documents(),
		Communications: s.Communications(),
		Contacts:       s.Contacts(),
	}, service.WithClock(now))
}

func TestScenario_DealsByStatus(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryServices(fixedClock)

	_, err := svc.Deals.Create(ctx, models.Deal{Name: "Sunset Villa", Address: "123 Main St", Status: "active", Description: "..."})
	require.NoError(t, err)

	deals, err := svc.Deals.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "Sunset Villa", deals[0].Name)
	assert.Equal(t, "active", deals[0].Status)

	_, err = svc.Deals.Create(ctx, models.Deal{Name: "Harbor Loft", Address: "9 Pier Rd", Status: "pending"})
	require.NoError(t, err)

	deals, err = svc.Deals.GetAll(ctx)
	require.NoError(t, err)
	active := view.FilterDealsByStatus(deals, "ACTIVE")
	require.Len(t, active, 1)
	assert.Equal(t, "Sunset Villa", active[0].Name)

	stats, err := svc.Deals.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 2, stats.CreatedThisMonth)
}

func TestScenario_OverdueClearedByCompletion(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryServices(fixedClock)

	deal, err := svc.Deals.Create(ctx, models.Deal{Name: "Sunset Villa", Status: "active"})
	require.NoError(t, err)

	yesterday := models.DateOf(fixedNow).AddDate(0, 0, -1)
	task, err := svc.Tasks.Create(ctx, models.Task{
		PropertyDealID: deal.ID,
		Name:           "Sign disclosure",
		DueDate:        yesterday,
		Status:         "To Do",
	})
	require.NoError(t, err)
	assert.True(t, view.IsOverdue(task, svc.Now()))

	completed := "Completed"
	updated, err := svc.Tasks.Update(ctx, task.ID, models.TaskPatch{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, view.IsOverdue(updated, svc.Now()))
	assert.Equal(t, yesterday, updated.DueDate)
}

func TestScenario_ContactFromAnotherDeal(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryServices(fixedClock)

	deal1, err := svc.Deals.Create(ctx, models.Deal{Name: "Deal 1"})
	require.NoError(t, err)
	deal2, err := svc.Deals.Create(ctx, models.Deal{Name: "Deal 2"})
	require.NoError(t, err)

	contactA, err := svc.Contacts.Create(ctx, models.Contact{PropertyDealID: deal1.ID, Name: "A", Role: "Buyer"})
	require.NoError(t, err)

	_, err = svc.Tasks.Create(ctx, models.Task{PropertyDealID: deal2.ID, ContactID: &contactA.ID, Name: "Call A"})
	require.Error(t, err)
	assert.Equal(t, service.CodeContactMismatch, businessCode(t, err))

	tasks, err := svc.Tasks.ListByDeal(ctx, deal2.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestScenario_ChildOfMissingDeal(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryServices(fixedClock)

	_, err := svc.Documents.Create(ctx, models.Document{PropertyDealID: 42, Name: "Deed"})
	assert.Equal(t, service.CodeParentNotFound, businessCode(t, err))

	_, err = svc.Communications.Create(ctx, models.Communication{PropertyDealID: 42, Subject: "Hi"})
	assert.Equal(t, service.CodeParentNotFound, businessCode(t, err))

	_, err = svc.Contacts.Create(ctx, models.Contact{PropertyDealID: 42, Name: "Nobody"})
	assert.Equal(t, service.CodeParentNotFound, businessCode(t, err))
}

func TestScenario_CascadeDelete(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryServices(fixedClock)

	deal, err := svc.Deals.Create(ctx, models.Deal{Name: "Sunset Villa"})
	require.NoError(t, err)

	contact, err := svc.Contacts.Create(ctx, models.Contact{PropertyDealID: deal.ID, Name: "Jane"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = svc.Tasks.Create(ctx, models.Task{PropertyDealID: deal.ID, ContactID: &contact.ID})
		require.NoError(t, err)
		_, err = svc.Documents.Create(ctx, models.Document{PropertyDealID: deal.ID})
		require.NoError(t, err)
		_, err = svc.Communications.Create(ctx, models.Communication{PropertyDealID: deal.ID})
		require.NoError(t, err)
	}

	deleted, err := svc.Deals.Delete(ctx, deal.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	overview, err := svc.Overview.Deal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Nil(t, overview)

	tasks, _ := svc.Tasks.ListByDeal(ctx, deal.ID)
	docs, _ := svc.Documents.ListByDeal(ctx, deal.ID)
	comms, _ := svc.Communications.ListByDeal(ctx, deal.ID)
	contacts, _ := svc.Contacts.ListByDeal(ctx, deal.ID)
	assert.Empty(t, tasks)
	assert.Empty(t, docs)
	assert.Empty(t, comms)
	assert.Empty(t, contacts)

	deleted, err = svc.Deals.Delete(ctx, deal.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestScenario_EmptyUpdateKeepsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	svc := newInMemoryServices(func() time.Time { return now })

	deal, err := svc.Deals.Create(ctx, models.Deal{Name: "Sunset Villa"})
	require.NoError(t, err)
	task, err := svc.Tasks.Create(ctx, models.Task{PropertyDealID: deal.ID, Name: "Inspect"})
	require.NoError(t, err)

	now = now.Add(time.Hour)

	result, err := svc.Tasks.Update(ctx, task.ID, models.TaskPatch{})
	require.NoError(t, err)
	assert.Nil(t, result)

	stored, err := svc.Tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.UpdatedAt, stored.UpdatedAt)

	sameName := "Inspect"
	result, err = svc.Tasks.Update(ctx, task.ID, models.TaskPatch{Name: &sameName})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, now, result.UpdatedAt)
	assert.Equal(t, task.CreatedAt, result.CreatedAt)
}

func TestScenario_DocumentUploadDateStamped(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryServices(fixedClock)

	deal, err := svc.Deals.Create(ctx, models.Deal{Name: "Sunset Villa"})
	require.NoError(t, err)

	doc, err := svc.Documents.Create(ctx, models.Document{
		PropertyDealID: deal.ID,
		Name:           "Purchase agreement",
		UploadDate:     time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, models.DateOf(fixedNow), doc.UploadDate)

	later := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Documents.Update(ctx, doc.ID, models.DocumentPatch{UploadDate: &later, FilePath: models.Value("/deeds/1.pdf")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, later, updated.UploadDate)
	require.NotNil(t, updated.FilePath)
	assert.Equal(t, "/deeds/1.pdf", *updated.FilePath)
}

func TestScenario_ContactDeleteDetachesTasks(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryServices(fixedClock)

	deal, err := svc.Deals.Create(ctx, models.Deal{Name: "Sunset Villa"})
	require.NoError(t, err)
	contact, err := svc.Contacts.Create(ctx, models.Contact{PropertyDealID: deal.ID, Name: "Jane"})
	require.NoError(t, err)
	task, err := svc.Tasks.Create(ctx, models.Task{PropertyDealID: deal.ID, ContactID: &contact.ID})
	require.NoError(t, err)

	deleted, err := svc.Contacts.Delete(ctx, contact.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	stored, err := svc.Tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.ContactID)
}

func TestOverviewService_OverdueReport(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryServices(fixedClock)

	late, err := svc.Deals.Create(ctx, models.Deal{Name: "Late"})
	require.NoError(t, err)
	onTime, err := svc.Deals.Create(ctx, models.Deal{Name: "On time"})
	require.NoError(t, err)

	past := models.DateOf(fixedNow).AddDate(0, 0, -3)
	future := models.DateOf(fixedNow).AddDate(0, 0, 3)
	_, err = svc.Tasks.Create(ctx, models.Task{PropertyDealID: late.ID, DueDate: past, Status: "To Do"})
	require.NoError(t, err)
	_, err = svc.Tasks.Create(ctx, models.Task{PropertyDealID: late.ID, DueDate: past, Status: "completed"})
	require.NoError(t, err)
	_, err = svc.Tasks.Create(ctx, models.Task{PropertyDealID: onTime.ID, DueDate: future, Status: "To Do"})
	require.NoError(t, err)

	report, err := svc.Overview.OverdueReport(ctx)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, late.ID, report[0].Deal.ID)
	assert.Len(t, report[0].Tasks, 1)

	overview, err := svc.Overview.Deal(ctx, late.ID)
	require.NoError(t, err)
	require.NotNil(t, overview)
	assert.Equal(t, 2, overview.TaskSummary.Total)
	assert.Equal(t, 1, overview.TaskSummary.Overdue)
}
