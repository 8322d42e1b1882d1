package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/repository"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/pkg/validator"
)

type CatalogServiceImpl struct {
	serviceRepo      repository.ServiceRepository
	professionalRepo repository.ProfessionalRepository
	placeRepo        repository.PlaceRepository
	logger           *zap.Logger
}

func NewCatalogService(
	serviceRepo repository.ServiceRepository,
	professionalRepo repository.ProfessionalRepository,
	placeRepo repository.PlaceRepository,
	logger *zap.Logger,
) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		placeRepo:        placeRepo,
		logger:           logger,
	}
}

func (s *CatalogServiceImpl) ListServices(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("error al obtener el catálogo de servicios", zap.Error(err))
		return nil, err
	}
	return services, nil
}

func (s *CatalogServiceImpl) ListProfessionals(ctx context.Context, search string) ([]domain.Professional, error) {
	professionals, err := s.professionalRepo.List(ctx, validator.SanitizeString(search))
	if err != nil {
		s.logger.Error("error al obtener los profesionales", zap.Error(err))
		return nil, err
	}
	return professionals, nil
}

func (s *CatalogServiceImpl) CreateProfessional(ctx context.Context, dto domain.CreateProfessionalDTO) (int64, error) {
	if !validator.ValidateNamePart(dto.FullName) {
		return 0, domain.NewValidationError("el nombre del profesional no es válido")
	}
	if dto.Phone != "" && !validator.ValidatePhone(dto.Phone) {
		return 0, domain.NewValidationError("el teléfono del profesional no es válido")
	}

	dto.FullName = validator.FormatName(dto.FullName)
	dto.Specialty = validator.SanitizeString(dto.Specialty)

	id, err := s.professionalRepo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("error al crear el profesional", zap.Error(err))
		return 0, err
	}

	s.logger.Info("profesional creado", zap.Int64("professional_id", id))
	return id, nil
}

func (s *CatalogServiceImpl) UpdateProfessional(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error {
	professional, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error al obtener el profesional", zap.Error(err))
		return err
	}
	if professional == nil {
		return domain.NewNotFoundError("profesional no encontrado")
	}

	if dto.FullName != nil {
		if !validator.ValidateNamePart(*dto.FullName) {
			return domain.NewValidationError("el nombre del profesional no es válido")
		}
		formatted := validator.FormatName(*dto.FullName)
		dto.FullName = &formatted
	}
	if dto.Phone != nil && *dto.Phone != "" && !validator.ValidatePhone(*dto.Phone) {
		return domain.NewValidationError("el teléfono del profesional no es válido")
	}

	if err := s.professionalRepo.Update(ctx, id, dto); err != nil {
		s.logger.Error("error al actualizar el profesional", zap.Error(err))
		return err
	}
	return nil
}

func (s *CatalogServiceImpl) GetProfessional(ctx context.Context, id int64) (*domain.Professional, error) {
	professional, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error al obtener el profesional", zap.Error(err))
		return nil, err
	}
	if professional == nil {
		return nil, domain.NewNotFoundError("profesional no encontrado")
	}
	return professional, nil
}

func (s *CatalogServiceImpl) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	places, err := s.placeRepo.List(ctx)
	if err != nil {
		s.logger.Error("error al obtener las sedes", zap.Error(err))
		return nil, err
	}
	return places, nil
}
