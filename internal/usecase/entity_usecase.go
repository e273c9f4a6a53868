package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/pkg/errors"
	"github.com/travelog-service/internal/usecase/dto"
)

// EntityUseCase resolves and lists geographic entities.
type EntityUseCase struct {
	entityRepo repository.EntityRepository
	typeRepo   repository.EntityTypeRepository
	infoRepo   repository.EntityInfoRepository
	logger     *zap.Logger
}

func NewEntityUseCase(
	entityRepo repository.EntityRepository,
	typeRepo repository.EntityTypeRepository,
	infoRepo repository.EntityInfoRepository,
	logger *zap.Logger,
) *EntityUseCase {
	return &EntityUseCase{
		entityRepo: entityRepo,
		typeRepo:   typeRepo,
		infoRepo:   infoRepo,
		logger:     logger,
	}
}

// Types returns the closed set of entity types.
func (uc *EntityUseCase) Types(ctx context.Context) ([]*domain.EntityType, error) {
	return uc.typeRepo.List(ctx)
}

// ListByType returns every entity of one type, ordered by name.
func (uc *EntityUseCase) ListByType(ctx context.Context, abbr string) (*dto.EntityListResponse, error) {
	t, err := uc.typeRepo.GetByAbbr(ctx, abbr)
	if err != nil {
		return nil, err
	}

	entities, err := uc.entityRepo.ByType(ctx, abbr)
	if err != nil {
		return nil, err
	}

	title := t.Title
	if display, ok := domain.RelatedTypeTitles[abbr]; ok {
		title = display
	}

	return &dto.EntityListResponse{
		Type:     abbr,
		Title:    title,
		Entities: dto.ConvertEntities(entities),
		Total:    len(entities),
	}, nil
}

// Resolve looks up a (type, code) pair. Zero hits is NotFound; exactly one
// hit returns the full detail; several hits return the candidate list for
// the caller to disambiguate.
func (uc *EntityUseCase) Resolve(ctx context.Context, req dto.ResolveRequest) (*dto.ResolveResponse, error) {
	req = splitAuxCode(req)

	if _, err := uc.typeRepo.GetByAbbr(ctx, req.Type); err != nil {
		return nil, err
	}

	found, err := uc.entityRepo.Find(ctx, req.Type, req.Code, req.Aux)
	if err != nil {
		return nil, err
	}

	switch len(found) {
	case 0:
		return nil, errors.ErrEntityNotFound.WithDetails(map[string]interface{}{
			"type": req.Type,
			"code": req.Code,
		})
	case 1:
		detail, err := uc.detail(ctx, found[0])
		if err != nil {
			return nil, err
		}
		return &dto.ResolveResponse{Entity: detail, Count: 1}, nil
	default:
		uc.logger.Debug("Ambiguous entity code",
			zap.String("type", req.Type),
			zap.String("code", req.Code),
			zap.Int("candidates", len(found)),
		)
		return &dto.ResolveResponse{
			Candidates: dto.ConvertEntities(found),
			Count:      len(found),
		}, nil
	}
}

// RelatedTypes groups the entities related to the resolved entity by type.
func (uc *EntityUseCase) RelatedTypes(ctx context.Context, req dto.ResolveRequest) (*dto.RelatedTypesResponse, error) {
	entity, err := uc.resolveOne(ctx, req)
	if err != nil {
		return nil, err
	}

	counts, err := uc.entityRepo.RelatedTypes(ctx, entity)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RelatedTypeDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.RelatedTypeDTO{
			Abbr:  c.Abbr,
			Title: domain.RelatedTypeTitles[c.Abbr],
			Count: c.Count,
		})
	}

	return &dto.RelatedTypesResponse{Counts: out}, nil
}

// RelatedByType lists the entities of targetAbbr related to the resolved
// entity.
func (uc *EntityUseCase) RelatedByType(ctx context.Context, req dto.ResolveRequest, targetAbbr string) (*dto.EntityListResponse, error) {
	entity, err := uc.resolveOne(ctx, req)
	if err != nil {
		return nil, err
	}

	target, err := uc.typeRepo.GetByAbbr(ctx, targetAbbr)
	if err != nil {
		return nil, err
	}

	related, err := uc.entityRepo.RelatedByType(ctx, entity, target)
	if err != nil {
		return nil, err
	}

	title := target.Title
	if display, ok := domain.RelatedTypeTitles[targetAbbr]; ok {
		title = display
	}

	return &dto.EntityListResponse{
		Type:     targetAbbr,
		Title:    title,
		Entities: dto.ConvertEntities(related),
		Total:    len(related),
	}, nil
}

func (uc *EntityUseCase) resolveOne(ctx context.Context, req dto.ResolveRequest) (*domain.Entity, error) {
	req = splitAuxCode(req)

	found, err := uc.entityRepo.Find(ctx, req.Type, req.Code, req.Aux)
	if err != nil {
		return nil, err
	}
	if len(found) != 1 {
		return nil, errors.ErrEntityNotFound.WithDetails(map[string]interface{}{
			"type":    req.Type,
			"code":    req.Code,
			"matches": len(found),
		})
	}
	return found[0], nil
}

func (uc *EntityUseCase) detail(ctx context.Context, entity *domain.Entity) (*dto.EntityDTO, error) {
	out := dto.ConvertEntity(entity)

	if entity.TypeAbbr() == domain.TypeCountry {
		info, err := uc.infoRepo.GetByEntityID(ctx, entity.ID)
		if err != nil {
			return nil, err
		}
		infoDTO, err := dto.ConvertEntityInfo(info)
		if err != nil {
			return nil, err
		}
		out.Info = infoDTO
	}

	return out, nil
}

// splitAuxCode rewrites a prefixed code ("FR-83") into its aux form, so both
// URL spellings of a sub-national entity resolve the same way.
func splitAuxCode(req dto.ResolveRequest) dto.ResolveRequest {
	if req.Aux != "" {
		return req
	}
	if req.Type != domain.TypeState && req.Type != domain.TypeHeritageSite {
		return req
	}
	if aux, code, found := strings.Cut(req.Code, "-"); found && aux != "" && code != "" {
		req.Aux = aux
		req.Code = code
	}
	return req
}
