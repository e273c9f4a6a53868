package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/pkg/errors"
	"github.com/travelog-service/internal/pkg/traveljson"
	"github.com/travelog-service/internal/usecase/dto"
)

// ProfileUseCase manages profile visibility and the history export it gates.
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	logRepo     repository.TravelLogRepository
	entityRepo  repository.EntityRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	logRepo repository.TravelLogRepository,
	entityRepo repository.EntityRepository,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		logRepo:     logRepo,
		entityRepo:  entityRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Get returns the caller's profile, creating the protected default on first
// access.
func (uc *ProfileUseCase) Get(ctx context.Context, user domain.Identity) (*dto.ProfileDTO, error) {
	if !user.Authenticated {
		return nil, errors.ErrUnauthenticated
	}

	profile, err := uc.profileRepo.ForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return dto.ConvertProfile(profile), nil
}

// SetAccess changes the caller's visibility level.
func (uc *ProfileUseCase) SetAccess(ctx context.Context, user domain.Identity, req dto.SetAccessRequest) (*dto.ProfileDTO, error) {
	if !user.Authenticated {
		return nil, errors.ErrUnauthenticated
	}

	// Ensure the row exists before updating it.
	if _, err := uc.profileRepo.ForUser(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := uc.profileRepo.SetAccess(ctx, user.ID, domain.AccessLevel(req.Access)); err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.ForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Profile access changed",
		zap.Int64("user_id", user.ID),
		zap.String("access", req.Access),
	)

	return dto.ConvertProfile(profile), nil
}

// Public lists every public profile.
func (uc *ProfileUseCase) Public(ctx context.Context) (*dto.ProfilesResponse, error) {
	profiles, err := uc.profileRepo.Public(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.ConvertProfile(p))
	}

	return &dto.ProfilesResponse{Profiles: out, Total: len(out)}, nil
}

// History builds the typed-JSON export of a user's travels, subject to the
// profile's visibility rule.
func (uc *ProfileUseCase) History(ctx context.Context, viewer domain.Identity, userID int64) (*dto.HistoryResponse, error) {
	// Read-only lookup: viewing someone's history must not create their
	// profile row. An absent row carries the same protected default the
	// first self-access would create.
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if stderrors.Is(err, errors.ErrProfileNotFound) {
		profile = &domain.Profile{UserID: userID, Access: domain.AccessProtected}
	} else if err != nil {
		return nil, err
	}
	if !profile.VisibleTo(viewer) {
		return nil, errors.ErrForbidden
	}

	entities, logs, err := uc.logRepo.UserHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	related := []string{
		domain.RelType, domain.RelFlag, domain.RelCountry, domain.RelCountryFlag,
	}
	if err := uc.entityRepo.LoadRelated(ctx, entities, related); err != nil {
		return nil, err
	}

	visitsByEntity := make(map[int64][]dto.HistoryVisitDTO)
	for _, log := range logs {
		visitsByEntity[log.EntityID] = append(visitsByEntity[log.EntityID], dto.ConvertHistoryVisit(log))
	}

	out := make([]*dto.HistoryEntityDTO, 0, len(entities))
	for _, e := range entities {
		entry := dto.ConvertHistoryEntity(e)
		entry.Visits = visitsByEntity[e.ID]
		out = append(out, entry)
	}

	return &dto.HistoryResponse{
		UserID:    userID,
		Generated: traveljson.NewDateTime(uc.now()),
		Entities:  out,
		Visits:    len(logs),
	}, nil
}
