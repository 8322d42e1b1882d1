package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/cache"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/repository"
)

type BlackoutServiceImpl struct {
	repo             repository.BlackoutRepository
	professionalRepo repository.ProfessionalRepository
	cache            cache.AgendaCache
	logger           *zap.Logger
}

func NewBlackoutService(
	repo repository.BlackoutRepository,
	professionalRepo repository.ProfessionalRepository,
	agendaCache cache.AgendaCache,
	logger *zap.Logger,
) *BlackoutServiceImpl {
	return &BlackoutServiceImpl{
		repo:             repo,
		professionalRepo: professionalRepo,
		cache:            agendaCache,
		logger:           logger,
	}
}

func (s *BlackoutServiceImpl) Create(ctx context.Context, dto domain.CreateBlackoutDTO) (int64, error) {
	professional, err := s.professionalRepo.GetByID(ctx, dto.ProfessionalID)
	if err != nil {
		s.logger.Error("error al obtener el profesional", zap.Error(err))
		return 0, err
	}
	if professional == nil {
		return 0, domain.NewNotFoundError("profesional no encontrado")
	}

	if !dto.StartDateTime.Before(dto.EndDateTime) {
		return 0, domain.NewValidationError("el inicio del bloqueo debe ser anterior al fin")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("error al crear el bloqueo", zap.Error(err))
		return 0, err
	}

	s.cache.InvalidateProfessional(ctx, dto.ProfessionalID)

	return id, nil
}

func (s *BlackoutServiceImpl) Delete(ctx context.Context, id int64) error {
	blackout, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error al obtener el bloqueo", zap.Error(err))
		return err
	}
	if blackout == nil {
		return domain.NewNotFoundError("bloqueo no encontrado")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar el bloqueo", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.cache.InvalidateProfessional(ctx, blackout.ProfessionalID)

	return nil
}

func (s *BlackoutServiceImpl) List(ctx context.Context, filter domain.BlackoutFilter) ([]domain.BlackoutPeriod, error) {
	blackouts, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al obtener los bloqueos", zap.Error(err))
		return nil, err
	}
	return blackouts, nil
}
