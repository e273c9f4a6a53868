package flag_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/usecase/dto"
	flagworker "github.com/travelog-service/internal/worker/flag"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) Publish(ctx context.Context, stream string, payload interface{}) error {
	args := m.Called(ctx, stream, payload)
	return args.Error(0)
}

func (m *MockStreamRepository) Consume(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) Ack(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockFlagRefresher is a mock of FlagRefresher
type MockFlagRefresher struct {
	mock.Mock
}

func (m *MockFlagRefresher) Refresh(ctx context.Context, entityID int64, sourceURL string) (*dto.FlagDTO, error) {
	args := m.Called(ctx, entityID, sourceURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FlagDTO), args.Error(1)
}

func TestFlagRefreshWorker_Name(t *testing.T) {
	w := flagworker.NewFlagRefreshWorker(&MockStreamRepository{}, &MockFlagRefresher{}, "test-group", 3, zap.NewNop())
	assert.Equal(t, "flag-refresh", w.Name())
}

func TestFlagRefreshWorker_Stop(t *testing.T) {
	w := flagworker.NewFlagRefreshWorker(&MockStreamRepository{}, &MockFlagRefresher{}, "test-group", 3, zap.NewNop())

	assert.NoError(t, w.Stop())
	// Calling stop again is safe
	assert.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
}

func TestFlagRefreshWorker_ProcessesJob(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockRefresher := &MockFlagRefresher{}
	logger := zap.NewNop()

	w := flagworker.NewFlagRefreshWorker(mockStream, mockRefresher, "test-group", 3, logger)

	jobID := uuid.New()
	payload, _ := json.Marshal(domain.FlagRefreshEvent{
		JobID:     jobID,
		EntityID:  2,
		SourceURL: "https://flags.example/fr.svg",
	})

	messages := make(chan domain.StreamMessage, 1)
	messages <- domain.StreamMessage{ID: "1-0", Data: payload}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamFlagRefresh, "test-group").Return(nil)
	mockStream.On("Consume", mock.Anything, domain.StreamFlagRefresh, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(messages), nil)
	mockRefresher.On("Refresh", mock.Anything, int64(2), "https://flags.example/fr.svg").
		Return(&dto.FlagDTO{ID: 9}, nil)
	published := make(chan struct{})
	mockStream.On("Ack", mock.Anything, domain.StreamFlagRefresh, "test-group", "1-0").Return(nil)
	mockStream.On("Publish", mock.Anything, domain.StreamFlagDone, mock.MatchedBy(func(event domain.FlagDoneEvent) bool {
		return event.JobID == jobID && event.FlagID == int64(9) && event.Error == ""
	})).Run(func(mock.Arguments) {
		close(published)
	}).Return(nil)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("completion event was not published")
	}

	assert.NoError(t, w.Stop())
	assert.NoError(t, <-done)

	mockRefresher.AssertExpectations(t)
	mockStream.AssertExpectations(t)
}

func TestFlagRefreshWorker_RetriesThenReportsFailure(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockRefresher := &MockFlagRefresher{}
	logger := zap.NewNop()

	w := flagworker.NewFlagRefreshWorker(mockStream, mockRefresher, "test-group", 2, logger)

	jobID := uuid.New()
	payload, _ := json.Marshal(domain.FlagRefreshEvent{
		JobID:     jobID,
		EntityID:  999,
		SourceURL: "https://flags.example/x.svg",
	})

	messages := make(chan domain.StreamMessage, 1)
	messages <- domain.StreamMessage{ID: "1-0", Data: payload}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamFlagRefresh, "test-group").Return(nil)
	mockStream.On("Consume", mock.Anything, domain.StreamFlagRefresh, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(messages), nil)
	mockRefresher.On("Refresh", mock.Anything, int64(999), "https://flags.example/x.svg").
		Return(nil, assert.AnError).Times(2)
	published := make(chan struct{})
	mockStream.On("Ack", mock.Anything, domain.StreamFlagRefresh, "test-group", "1-0").Return(nil)
	mockStream.On("Publish", mock.Anything, domain.StreamFlagDone, mock.MatchedBy(func(event domain.FlagDoneEvent) bool {
		return event.JobID == jobID && event.Error != ""
	})).Run(func(mock.Arguments) {
		close(published)
	}).Return(nil)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("completion event was not published")
	}

	assert.NoError(t, w.Stop())
	assert.NoError(t, <-done)

	mockRefresher.AssertExpectations(t)
}
