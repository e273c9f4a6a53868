package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/usecase/dto"
)

// FlagUseCase updates entity flags from upstream image URLs. Refreshes are
// queued on a stream and applied by the worker.
type FlagUseCase struct {
	flagRepo   repository.FlagRepository
	entityRepo repository.EntityRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewFlagUseCase(
	flagRepo repository.FlagRepository,
	entityRepo repository.EntityRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *FlagUseCase {
	return &FlagUseCase{
		flagRepo:   flagRepo,
		entityRepo: entityRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// EnqueueRefresh validates the entity and queues a refresh job.
func (uc *FlagUseCase) EnqueueRefresh(ctx context.Context, entityID int64, req dto.RefreshFlagRequest) (string, error) {
	if _, err := uc.entityRepo.GetByID(ctx, entityID); err != nil {
		return "", err
	}

	event := domain.FlagRefreshEvent{
		JobID:     uuid.New(),
		EntityID:  entityID,
		SourceURL: req.SourceURL,
	}
	if err := uc.streamRepo.Publish(ctx, domain.StreamFlagRefresh, event); err != nil {
		return "", err
	}

	uc.logger.Info("Flag refresh queued",
		zap.String("job_id", event.JobID.String()),
		zap.Int64("entity_id", entityID),
	)

	return event.JobID.String(), nil
}

// Refresh applies a new source URL to an entity's flag. A locked flag is
// never overwritten: the entity is repointed at a fresh row instead.
func (uc *FlagUseCase) Refresh(ctx context.Context, entityID int64, sourceURL string) (*dto.FlagDTO, error) {
	entity, err := uc.entityRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, err
	}

	current := entity.Flag
	if current != nil && !current.IsLocked {
		if err := uc.flagRepo.UpdateSource(ctx, current.ID, sourceURL); err != nil {
			return nil, err
		}
		current.Source = sourceURL
		return dto.ConvertFlag(current), nil
	}

	flag := &domain.Flag{Source: sourceURL}
	if err := uc.flagRepo.Create(ctx, flag); err != nil {
		return nil, err
	}
	if err := uc.entityRepo.SetFlag(ctx, entity.ID, flag.ID); err != nil {
		return nil, err
	}

	if current != nil {
		uc.logger.Info("Locked flag preserved, new flag attached",
			zap.Int64("entity_id", entity.ID),
			zap.Int64("old_flag_id", current.ID),
			zap.Int64("new_flag_id", flag.ID),
		)
	}

	return dto.ConvertFlag(flag), nil
}
