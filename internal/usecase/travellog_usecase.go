package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/pkg/errors"
	"github.com/travelog-service/internal/usecase/dto"
)

// TravelLogUseCase manages a user's visit records.
type TravelLogUseCase struct {
	logRepo    repository.TravelLogRepository
	entityRepo repository.EntityRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewTravelLogUseCase(
	logRepo repository.TravelLogRepository,
	entityRepo repository.EntityRepository,
	logger *zap.Logger,
) *TravelLogUseCase {
	return &TravelLogUseCase{
		logRepo:    logRepo,
		entityRepo: entityRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Create records a visit. A zero rating defaults; a nil arrival means now.
func (uc *TravelLogUseCase) Create(ctx context.Context, user domain.Identity, req dto.CreateTravelLogRequest) (*dto.TravelLogDTO, error) {
	if !user.Authenticated {
		return nil, errors.ErrUnauthenticated
	}

	rating := req.Rating
	if rating == 0 {
		rating = domain.DefaultRating
	}
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, errors.ErrInvalidRating.WithDetails(map[string]interface{}{
			"rating": rating,
		})
	}

	entity, err := uc.entityRepo.GetByID(ctx, req.EntityID)
	if err != nil {
		return nil, err
	}

	arrival := uc.now()
	if req.Arrival != nil {
		arrival = *req.Arrival
	}

	log := &domain.TravelLog{
		Arrival:  arrival,
		Rating:   rating,
		UserID:   user.ID,
		Notes:    req.Notes,
		EntityID: entity.ID,
		Entity:   entity,
	}
	if err := uc.logRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	uc.logger.Info("Travel log created",
		zap.Int64("user_id", user.ID),
		zap.Int64("entity_id", entity.ID),
	)

	return dto.ConvertTravelLog(log), nil
}

// UpdateNotes replaces the notes of the caller's own entry.
func (uc *TravelLogUseCase) UpdateNotes(ctx context.Context, user domain.Identity, id int64, req dto.UpdateNotesRequest) error {
	if !user.Authenticated {
		return errors.ErrUnauthenticated
	}

	log, err := uc.logRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if log.UserID != user.ID {
		return errors.ErrForbidden
	}

	return uc.logRepo.UpdateNotes(ctx, id, req.Notes)
}

// List returns the caller's visits newest-first, with entities stitched in.
func (uc *TravelLogUseCase) List(ctx context.Context, user domain.Identity, limit int) (*dto.TravelLogListResponse, error) {
	if !user.Authenticated {
		return nil, errors.ErrUnauthenticated
	}

	logs, err := uc.logRepo.ListForUser(ctx, user.ID, limit)
	if err != nil {
		return nil, err
	}

	if err := uc.attachEntities(ctx, logs); err != nil {
		return nil, err
	}

	out := make([]*dto.TravelLogDTO, 0, len(logs))
	for _, log := range logs {
		out = append(out, dto.ConvertTravelLog(log))
	}

	return &dto.TravelLogListResponse{Logs: out, Total: len(out)}, nil
}

// Checklist maps entity id to the caller's visit count.
func (uc *TravelLogUseCase) Checklist(ctx context.Context, user domain.Identity) (*dto.ChecklistResponse, error) {
	if !user.Authenticated {
		return nil, errors.ErrUnauthenticated
	}

	visited, err := uc.logRepo.Checklist(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ChecklistResponse{Visited: visited, Total: len(visited)}, nil
}

func (uc *TravelLogUseCase) attachEntities(ctx context.Context, logs []*domain.TravelLog) error {
	idSet := make(map[int64]bool)
	for _, log := range logs {
		idSet[log.EntityID] = true
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	entities, err := uc.entityRepo.ByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if err := uc.entityRepo.LoadRelated(ctx, entities, []string{domain.RelType, domain.RelFlag}); err != nil {
		return err
	}

	byID := make(map[int64]*domain.Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}
	for _, log := range logs {
		log.Entity = byID[log.EntityID]
	}
	return nil
}
