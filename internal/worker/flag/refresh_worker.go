package flag

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/usecase/dto"
	"github.com/travelog-service/internal/worker"
)

// FlagRefresher applies a queued refresh job.
type FlagRefresher interface {
	Refresh(ctx context.Context, entityID int64, sourceURL string) (*dto.FlagDTO, error)
}

// FlagRefreshWorker consumes queued flag refresh jobs, applies them and
// publishes a completion event for interested services.
type FlagRefreshWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	flagUC       FlagRefresher
	consumerName string
	maxRetries   int
}

// NewFlagRefreshWorker creates a new FlagRefreshWorker.
func NewFlagRefreshWorker(
	streamRepo repository.StreamRepository,
	flagUC FlagRefresher,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *FlagRefreshWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &FlagRefreshWorker{
		BaseWorker:   worker.NewBaseWorker("flag-refresh", consumerGroup, logger),
		streamRepo:   streamRepo,
		flagUC:       flagUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start runs the consume loop until stopped.
func (w *FlagRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting FlagRefreshWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamFlagRefresh, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.Consume(ctx, domain.StreamFlagRefresh, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Message channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *FlagRefreshWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.FlagRefreshEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Ack the broken message so it does not stay pending forever.
		_ = w.streamRepo.Ack(ctx, domain.StreamFlagRefresh, w.ConsumerGroup(), msg.ID)
		return
	}

	var lastErr error
	var flag *dto.FlagDTO
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if flag, lastErr = w.flagUC.Refresh(ctx, event.EntityID, event.SourceURL); lastErr == nil {
			break
		}
		logger.Warn("Flag refresh attempt failed",
			zap.String("job_id", event.JobID.String()),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
	}

	if lastErr != nil {
		logger.Error("Flag refresh gave up",
			zap.String("job_id", event.JobID.String()),
			zap.Int64("entity_id", event.EntityID),
			zap.Error(lastErr))
	}

	if err := w.streamRepo.Ack(ctx, domain.StreamFlagRefresh, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}

	done := domain.FlagDoneEvent{
		JobID:    event.JobID,
		EntityID: event.EntityID,
	}
	if flag != nil {
		done.FlagID = flag.ID
	}
	if lastErr != nil {
		done.Error = lastErr.Error()
	}
	if err := w.streamRepo.Publish(ctx, domain.StreamFlagDone, done); err != nil {
		logger.Error("Failed to publish completion event",
			zap.String("job_id", event.JobID.String()),
			zap.Error(err))
	}

	logger.Info("Flag refresh processed",
		zap.String("job_id", event.JobID.String()),
		zap.Int64("entity_id", event.EntityID),
		zap.Bool("success", lastErr == nil))
}
