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

type AppointmentServiceImpl struct {
	repo             repository.AppointmentRepository
	blackoutRepo     repository.BlackoutRepository
	serviceRepo      repository.ServiceRepository
	professionalRepo repository.ProfessionalRepository
	placeRepo        repository.PlaceRepository
	cache            cache.AgendaCache
	logger           *zap.Logger
	now              func() time.Time
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	blackoutRepo repository.BlackoutRepository,
	serviceRepo repository.ServiceRepository,
	professionalRepo repository.ProfessionalRepository,
	placeRepo repository.PlaceRepository,
	agendaCache cache.AgendaCache,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:             repo,
		blackoutRepo:     blackoutRepo,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		placeRepo:        placeRepo,
		cache:            agendaCache,
		logger:           logger,
		now:              time.Now,
	}
}

// Create aplica el modelo optimista: no hay bloqueo distribuido, así que la
// escritura es la que rechaza el doble agendamiento. Quien reciba el CONFLICT
// debe refrescar su vista y elegir otro horario, no reintentar.
func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO, express bool) (int64, error) {
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

	if dto.ServiceID != nil {
		service, err := s.serviceRepo.GetByID(ctx, *dto.ServiceID)
		if err != nil {
			s.logger.Error("error al obtener el servicio", zap.Error(err))
			return 0, err
		}
		if service == nil {
			return 0, domain.NewNotFoundError("servicio no encontrado")
		}
		if dto.PatientTypeID != nil && !service.AllowsPatientType(*dto.PatientTypeID) {
			return 0, domain.NewValidationError("el servicio no admite ese tipo de paciente")
		}
	}

	date, err := time.Parse(dateLayout, dto.Date)
	if err != nil {
		return 0, domain.NewValidationError("formato de fecha inválido, se espera YYYY-MM-DD")
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

	start := agenda.ClockOn(date, startMin)
	end := agenda.ClockOn(date, endMin)

	// El alta exprés permite registrar horarios ya pasados (ingresos
	// retroactivos del mismo día); en modo estándar se rechazan.
	if !express && start.Before(s.now()) {
		return 0, domain.NewValidationError("no se puede registrar una cita en un horario pasado")
	}

	overlap, err := s.repo.HasOverlap(ctx, dto.ProfessionalID, date, dto.StartTime, dto.EndTime)
	if err != nil {
		s.logger.Error("error al comprobar solapamientos", zap.Error(err))
		return 0, err
	}
	if overlap {
		metrics.ConflictRejections.Inc()
		return 0, domain.NewConflictError("el horario ya está ocupado por otra cita")
	}

	blackouts, err := s.blackoutRepo.List(ctx, domain.BlackoutFilter{
		ProfessionalID: &dto.ProfessionalID,
		From:           &start,
		To:             &end,
	})
	if err != nil {
		s.logger.Error("error al obtener los bloqueos", zap.Error(err))
		return 0, err
	}
	if len(blackouts) > 0 {
		metrics.ConflictRejections.Inc()
		return 0, domain.NewConflictError("el horario está dentro de un periodo bloqueado")
	}

	id, err := s.repo.Create(ctx, dto, domain.AppointmentStatusPending)
	if err != nil {
		s.logger.Error("error al crear la cita", zap.Error(err))
		return 0, err
	}

	s.cache.InvalidateProfessional(ctx, dto.ProfessionalID)

	return id, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error al obtener la cita", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if appointment == nil {
		return nil, domain.NewNotFoundError("cita no encontrada")
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	if status == "" {
		return domain.NewValidationError("el estado no puede estar vacío")
	}

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error al obtener la cita", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if appointment == nil {
		return domain.NewNotFoundError("cita no encontrada")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("error al actualizar el estado", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.cache.InvalidateProfessional(ctx, appointment.ProfessionalID)

	return nil
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id int64) error {
	return s.UpdateStatus(ctx, id, domain.AppointmentStatusCancelled)
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al obtener las citas", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}
