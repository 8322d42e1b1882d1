package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/agenda"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/cache"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/repository"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/pkg/metrics"
)

const dateLayout = "2006-01-02"

type TemplateServiceImpl struct {
	repo             repository.TemplateRepository
	professionalRepo repository.ProfessionalRepository
	placeRepo        repository.PlaceRepository
	cache            cache.AgendaCache
	logger           *zap.Logger
}

func NewTemplateService(
	repo repository.TemplateRepository,
	professionalRepo repository.ProfessionalRepository,
	placeRepo repository.PlaceRepository,
	agendaCache cache.AgendaCache,
	logger *zap.Logger,
) *TemplateServiceImpl {
	return &TemplateServiceImpl{
		repo:             repo,
		professionalRepo: professionalRepo,
		placeRepo:        placeRepo,
		cache:            agendaCache,
		logger:           logger,
	}
}

func (s *TemplateServiceImpl) Create(ctx context.Context, dto domain.CreateTemplateDTO) (int64, error) {
	professional, err := s.professionalRepo.GetByID(ctx, dto.ProfessionalID)
	if err != nil {
		s.logger.Error("error al obtener el profesional", zap.Error(err))
		return 0, err
	}
	if professional == nil {
		return 0, domain.NewNotFoundError("profesional no encontrado")
	}

	place, err := s.placeRepo.GetByID(ctx, dto.PlaceID)
	if err != nil {
		s.logger.Error("error al obtener la sede", zap.Error(err))
		return 0, err
	}
	if place == nil {
		return 0, domain.NewNotFoundError("sede no encontrada")
	}

	if !dto.Weekday.Valid() {
		return 0, domain.NewValidationError("día de la semana inválido, se espera 0 (lunes) a 6 (domingo)")
	}

	startMin, err := agenda.ParseClock(dto.StartTime)
	if err != nil {
		return 0, err
	}
	endMin, err := agenda.ParseClock(dto.EndTime)
	if err != nil {
		return 0, err
	}
	if startMin >= endMin {
		return 0, domain.NewValidationError("la hora de inicio debe ser anterior a la de fin")
	}

	validFrom, validUntil, err := parseValidity(dto.ValidFrom, dto.ValidUntil)
	if err != nil {
		return 0, err
	}

	template := domain.AvailabilityTemplate{
		ProfessionalID: dto.ProfessionalID,
		PlaceID:        dto.PlaceID,
		ServiceID:      dto.ServiceID,
		Weekday:        dto.Weekday,
		StartTime:      dto.StartTime,
		EndTime:        dto.EndTime,
		ValidFrom:      validFrom,
		ValidUntil:     validUntil,
	}

	// Validación de solape: dos plantillas del mismo ámbito de servicio no
	// pueden compartir horario el mismo día. Ámbitos distintos sí: son
	// pistas reservables en paralelo.
	existing, err := s.repo.List(ctx, domain.TemplateFilter{
		ProfessionalID: &dto.ProfessionalID,
		Weekday:        &dto.Weekday,
	})
	if err != nil {
		s.logger.Error("error al obtener las plantillas existentes", zap.Error(err))
		return 0, err
	}

	for _, other := range existing {
		if templatesConflict(template, other) {
			metrics.ConflictRejections.Inc()
			return 0, domain.NewConflictError("ya existe una plantilla en ese horario")
		}
	}

	id, err := s.repo.Create(ctx, template)
	if err != nil {
		s.logger.Error("error al crear la plantilla", zap.Error(err))
		return 0, err
	}

	s.cache.InvalidateProfessional(ctx, dto.ProfessionalID)

	return id, nil
}

func (s *TemplateServiceImpl) GetByID(ctx context.Context, id int64) (*domain.AvailabilityTemplate, error) {
	template, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error al obtener la plantilla", zap.Error(err))
		return nil, err
	}
	if template == nil {
		return nil, domain.NewNotFoundError("plantilla no encontrada")
	}
	return template, nil
}

func (s *TemplateServiceImpl) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.AvailabilityTemplate, error) {
	templates, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al obtener las plantillas", zap.Error(err))
		return nil, err
	}
	return templates, nil
}

func (s *TemplateServiceImpl) DeleteOccurrence(ctx context.Context, id int64, dateStr string) error {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return domain.NewValidationError("formato de fecha inválido, se espera YYYY-MM-DD")
	}

	template, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error al obtener la plantilla", zap.Error(err))
		return err
	}
	if template == nil {
		return domain.NewNotFoundError("plantilla no encontrada")
	}

	if !agenda.TemplateMatches(*template, 0, date) {
		return domain.NewValidationError("la plantilla no está activa en esa fecha")
	}

	if template.SingleDay() {
		err = s.repo.Delete(ctx, id)
	} else {
		err = s.repo.ExcludeDate(ctx, *template, date)
	}
	if err != nil {
		s.logger.Error("error al eliminar la ocurrencia", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.cache.InvalidateProfessional(ctx, template.ProfessionalID)

	return nil
}

func (s *TemplateServiceImpl) Delete(ctx context.Context, id int64) error {
	template, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error al obtener la plantilla", zap.Error(err))
		return err
	}
	if template == nil {
		return domain.NewNotFoundError("plantilla no encontrada")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar la plantilla", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.cache.InvalidateProfessional(ctx, template.ProfessionalID)

	return nil
}

func (s *TemplateServiceImpl) DeleteSeries(ctx context.Context, series domain.DeleteSeriesDTO) (int64, error) {
	if !series.Weekday.Valid() {
		return 0, domain.NewValidationError("día de la semana inválido, se espera 0 (lunes) a 6 (domingo)")
	}

	deleted, err := s.repo.DeleteSeries(ctx, series)
	if err != nil {
		s.logger.Error("error al eliminar la serie", zap.Error(err))
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.NewNotFoundError("no se encontró la serie")
	}

	s.cache.InvalidateProfessional(ctx, series.ProfessionalID)

	return deleted, nil
}

func parseValidity(from, until *string) (*time.Time, *time.Time, error) {
	var validFrom, validUntil *time.Time

	if from != nil && *from != "" {
		t, err := time.Parse(dateLayout, *from)
		if err != nil {
			return nil, nil, domain.NewValidationError("formato de fecha inválido en valid_from, se espera YYYY-MM-DD")
		}
		validFrom = &t
	}

	if until != nil && *until != "" {
		t, err := time.Parse(dateLayout, *until)
		if err != nil {
			return nil, nil, domain.NewValidationError("formato de fecha inválido en valid_until, se espera YYYY-MM-DD")
		}
		validUntil = &t
	}

	if validFrom != nil && validUntil != nil && validUntil.Before(*validFrom) {
		return nil, nil, domain.NewValidationError("valid_until no puede ser anterior a valid_from")
	}

	return validFrom, validUntil, nil
}

// templatesConflict detecta dos plantillas del mismo ámbito de servicio con
// horario solapado y ventanas de validez que se intersecan.
func templatesConflict(a, b domain.AvailabilityTemplate) bool {
	if a.Weekday != b.Weekday || a.PlaceID != b.PlaceID {
		return false
	}
	if !sameServiceScope(a.ServiceID, b.ServiceID) {
		return false
	}
	// HH:MM con cero a la izquierda compara bien como texto.
	if a.StartTime >= b.EndTime || b.StartTime >= a.EndTime {
		return false
	}
	return validityIntersects(a, b)
}

func sameServiceScope(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func validityIntersects(a, b domain.AvailabilityTemplate) bool {
	if a.ValidUntil != nil && b.ValidFrom != nil && a.ValidUntil.Before(*b.ValidFrom) {
		return false
	}
	if b.ValidUntil != nil && a.ValidFrom != nil && b.ValidUntil.Before(*a.ValidFrom) {
		return false
	}
	return true
}
