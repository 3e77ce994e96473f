package worker

import (
	"context"
	"dealTracker/internal/models"
	"dealTracker/internal/service"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReporter struct {
	mock.Mock
	calls atomic.Int32
}

func (m *MockReporter) OverdueReport(ctx context.Context) ([]service.DealOverdue, error) {
	m.calls.Add(1)
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DealOverdue), args.Error(1)
}

func TestNewOverdueWorker_Interval(t *testing.T) {
	custom := time.Second
	zero := time.Duration(0)

	assert.Equal(t, defaultInterval, NewOverdueWorker(nil, nil).Interval())
	assert.Equal(t, defaultInterval, NewOverdueWorker(nil, &zero).Interval())
	assert.Equal(t, custom, NewOverdueWorker(nil, &custom).Interval())
}

func TestOverdueWorker_Check(t *testing.T) {
	reporter := new(MockReporter)
	reporter.On("OverdueReport", mock.Anything).Return([]service.DealOverdue{
		{Deal: &models.Deal{ID: 1, Name: "Sunset Villa"}, Tasks: []*models.Task{{ID: 1}, {ID: 2}}},
		{Deal: &models.Deal{ID: 3, Name: "Old Mill"}, Tasks: []*models.Task{{ID: 7}}},
	}, nil)

	total, err := NewOverdueWorker(reporter, nil).Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	reporter.AssertExpectations(t)
}

func TestOverdueWorker_CheckError(t *testing.T) {
	reporter := new(MockReporter)
	reporter.On("OverdueReport", mock.Anything).Return(nil, errors.New("db down"))

	total, err := NewOverdueWorker(reporter, nil).Check(context.Background())
	assert.Error(t, err)
	assert.Zero(t, total)
}

func TestOverdueWorker_StartStopsOnCancel(t *testing.T) {
	reporter := new(MockReporter)
	reporter.On("OverdueReport", mock.Anything).Return([]service.DealOverdue{}, nil)

	interval := 10 * time.Millisecond
	w := NewOverdueWorker(reporter, &interval)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return reporter.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
