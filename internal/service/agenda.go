package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/config"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/agenda"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/cache"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/repository"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/pkg/metrics"
)

type AgendaServiceImpl struct {
	templateRepo     repository.TemplateRepository
	blackoutRepo     repository.BlackoutRepository
	appointmentRepo  repository.AppointmentRepository
	serviceRepo      repository.ServiceRepository
	professionalRepo repository.ProfessionalRepository
	cache            cache.AgendaCache
	cfg              config.AgendaConfig
	logger           *zap.Logger
	now              func() time.Time
}

func NewAgendaService(
	repos *repository.Repositories,
	agendaCache cache.AgendaCache,
	cfg config.AgendaConfig,
	logger *zap.Logger,
) *AgendaServiceImpl {
	return &AgendaServiceImpl{
		templateRepo:     repos.Template,
		blackoutRepo:     repos.Blackout,
		appointmentRepo:  repos.Appointment,
		serviceRepo:      repos.Service,
		professionalRepo: repos.Professional,
		cache:            agendaCache,
		cfg:              cfg,
		logger:           logger,
		now:              time.Now,
	}
}

// agendaInputs reúne todas las entradas de un profesional para un rango de
// fechas. La grilla solo se calcula cuando las tres lecturas han resuelto,
// para no mostrar ocupación parcialmente obsoleta.
type agendaInputs struct {
	templates    []domain.AvailabilityTemplate
	blackouts    []domain.BlackoutPeriod
	appointments []domain.Appointment
}

func (s *AgendaServiceImpl) fetchInputs(ctx context.Context, professionalID, placeID int64, from, to time.Time) (*agendaInputs, error) {
	inputs := &agendaInputs{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		filter := domain.TemplateFilter{ProfessionalID: &professionalID}
		if placeID != 0 {
			filter.PlaceID = &placeID
		}
		templates, err := s.templateRepo.List(gctx, filter)
		if err != nil {
			return err
		}
		inputs.templates = templates
		return nil
	})

	g.Go(func() error {
		rangeEnd := to.AddDate(0, 0, 1)
		blackouts, err := s.blackoutRepo.List(gctx, domain.BlackoutFilter{
			ProfessionalID: &professionalID,
			From:           &from,
			To:             &rangeEnd,
		})
		if err != nil {
			return err
		}
		inputs.blackouts = blackouts
		return nil
	})

	g.Go(func() error {
		appointments, err := s.appointmentRepo.List(gctx, domain.AppointmentFilter{
			ProfessionalID: &professionalID,
			Date:           &from,
			DateTo:         &to,
		})
		if err != nil {
			return err
		}
		inputs.appointments = appointments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return inputs, nil
}

func (s *AgendaServiceImpl) serviceIndex(ctx context.Context) (map[int64]domain.Service, error) {
	services, err := s.serviceRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]domain.Service, len(services))
	for _, svc := range services {
		index[svc.ID] = svc
	}
	return index, nil
}

// computeDay resuelve, genera y clasifica los turnos de un día a partir de
// entradas ya cargadas.
func (s *AgendaServiceImpl) computeDay(
	inputs *agendaInputs,
	services map[int64]domain.Service,
	professionalID, placeID int64,
	date time.Time,
	express bool,
) (*domain.DayAgenda, error) {
	matched := agenda.ResolveTemplates(inputs.templates, placeID, date)

	var slots []domain.Slot
	for _, tmpl := range matched {
		var svc *domain.Service
		if tmpl.ServiceID != nil {
			if found, ok := services[*tmpl.ServiceID]; ok {
				svc = &found
			}
		}

		generated, err := agenda.GenerateSlots(tmpl, svc, s.cfg.DefaultSlotMinutes, date)
		if err != nil {
			return nil, err
		}
		slots = append(slots, generated...)
	}

	classified := agenda.ClassifyAll(slots, inputs.blackouts, inputs.appointments, s.now(), agenda.Policy{
		AllowPastBooking: express,
	})

	metrics.AgendaComputations.Inc()

	return &domain.DayAgenda{
		ProfessionalID: professionalID,
		PlaceID:        placeID,
		Date:           date,
		Slots:          classified,
	}, nil
}

func (s *AgendaServiceImpl) GetDaySlots(ctx context.Context, professionalID, placeID int64, dateStr string, express bool) (*domain.DayAgenda, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, domain.NewValidationError("formato de fecha inválido, se espera YYYY-MM-DD")
	}

	professional, err := s.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		s.logger.Error("error al obtener el profesional", zap.Error(err))
		return nil, err
	}
	if professional == nil {
		// Un profesional inexistente se trata como "sin disponibilidad"
		// para que la grilla siga renderizando.
		return &domain.DayAgenda{ProfessionalID: professionalID, PlaceID: placeID, Date: date}, nil
	}

	key := cache.DayKey(professionalID, placeID, date, express)
	if slots, ok := s.cache.GetDay(ctx, key); ok {
		metrics.AgendaCacheHits.Inc()
		return &domain.DayAgenda{ProfessionalID: professionalID, PlaceID: placeID, Date: date, Slots: slots}, nil
	}
	metrics.AgendaCacheMisses.Inc()

	inputs, err := s.fetchInputs(ctx, professionalID, placeID, date, date)
	if err != nil {
		s.logger.Error("error al cargar las entradas de la agenda", zap.Error(err))
		return nil, err
	}

	services, err := s.serviceIndex(ctx)
	if err != nil {
		s.logger.Error("error al obtener el catálogo de servicios", zap.Error(err))
		return nil, err
	}

	day, err := s.computeDay(inputs, services, professionalID, placeID, date, express)
	if err != nil {
		return nil, err
	}

	s.cache.SetDay(ctx, key, day.Slots)

	return day, nil
}

// GetWeekGrid calcula la grilla de la semana (lunes a domingo) que contiene
// la fecha dada, para un conjunto de profesionales. Las entradas de cada
// profesional se cargan en paralelo.
func (s *AgendaServiceImpl) GetWeekGrid(ctx context.Context, professionalIDs []int64, placeID int64, dateStr string, express bool) (*domain.WeekAgenda, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, domain.NewValidationError("formato de fecha inválido, se espera YYYY-MM-DD")
	}
	if len(professionalIDs) == 0 {
		return nil, domain.NewValidationError("se requiere al menos un profesional")
	}

	weekStart := date.AddDate(0, 0, -int(domain.WeekdayOf(date)))
	weekEnd := weekStart.AddDate(0, 0, 6)

	services, err := s.serviceIndex(ctx)
	if err != nil {
		s.logger.Error("error al obtener el catálogo de servicios", zap.Error(err))
		return nil, err
	}

	days := make([][]domain.DayAgenda, len(professionalIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, professionalID := range professionalIDs {
		i, professionalID := i, professionalID
		g.Go(func() error {
			professional, err := s.professionalRepo.GetByID(gctx, professionalID)
			if err != nil {
				return err
			}
			if professional == nil {
				// Sin disponibilidad, pero la grilla del resto se muestra.
				empty := make([]domain.DayAgenda, 7)
				for d := range empty {
					empty[d] = domain.DayAgenda{
						ProfessionalID: professionalID,
						PlaceID:        placeID,
						Date:           weekStart.AddDate(0, 0, d),
					}
				}
				days[i] = empty
				return nil
			}

			inputs, err := s.fetchInputs(gctx, professionalID, placeID, weekStart, weekEnd)
			if err != nil {
				return err
			}

			week := make([]domain.DayAgenda, 0, 7)
			for d := 0; d < 7; d++ {
				day, err := s.computeDay(inputs, services, professionalID, placeID, weekStart.AddDate(0, 0, d), express)
				if err != nil {
					return err
				}
				week = append(week, *day)
			}
			days[i] = week
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("error al calcular la grilla semanal", zap.Error(err))
		return nil, err
	}

	grid := &domain.WeekAgenda{
		WeekStart:     weekStart,
		Professionals: make(map[int64][]domain.DayAgenda, len(professionalIDs)),
	}
	for i, professionalID := range professionalIDs {
		grid.Professionals[professionalID] = days[i]
	}

	return grid, nil
}

// CloneDay copia todas las plantillas activas del día origen al día destino
// del mismo profesional. La copia es no destructiva y atómica: las filas
// origen no se tocan y las nuevas entran todas o ninguna.
func (s *AgendaServiceImpl) CloneDay(ctx context.Context, dto domain.CloneDayDTO) (int, error) {
	sourceDate, err := time.Parse(dateLayout, dto.SourceDate)
	if err != nil {
		return 0, domain.NewValidationError("formato de fecha inválido en source_date, se espera YYYY-MM-DD")
	}
	targetDate, err := time.Parse(dateLayout, dto.TargetDate)
	if err != nil {
		return 0, domain.NewValidationError("formato de fecha inválido en target_date, se espera YYYY-MM-DD")
	}
	if sourceDate.Equal(targetDate) {
		return 0, domain.NewValidationError("el día origen y el destino no pueden ser el mismo")
	}

	filter := domain.TemplateFilter{ProfessionalID: &dto.ProfessionalID}
	if dto.PlaceID != 0 {
		filter.PlaceID = &dto.PlaceID
	}
	templates, err := s.templateRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al obtener las plantillas", zap.Error(err))
		return 0, err
	}

	source := agenda.ResolveTemplates(templates, dto.PlaceID, sourceDate)
	if len(source) == 0 {
		return 0, domain.NewValidationError("el día origen no tiene plantillas activas")
	}

	existing := agenda.ResolveTemplates(templates, dto.PlaceID, targetDate)
	targetWeekday := domain.WeekdayOf(targetDate)

	var created []domain.AvailabilityTemplate
	for _, tmpl := range source {
		clone := domain.AvailabilityTemplate{
			ProfessionalID: tmpl.ProfessionalID,
			PlaceID:        tmpl.PlaceID,
			ServiceID:      tmpl.ServiceID,
			Weekday:        targetWeekday,
			StartTime:      tmpl.StartTime,
			EndTime:        tmpl.EndTime,
		}
		if dto.Recurring {
			validFrom := targetDate
			clone.ValidFrom = &validFrom
		} else {
			validFrom := targetDate
			validUntil := targetDate
			clone.ValidFrom = &validFrom
			clone.ValidUntil = &validUntil
		}

		for _, other := range existing {
			if slotRangesOverlap(clone, other) {
				metrics.ConflictRejections.Inc()
				return 0, domain.NewConflictError("el día destino ya tiene plantillas en ese horario")
			}
		}

		created = append(created, clone)
	}

	count, err := s.templateRepo.CreateMany(ctx, created)
	if err != nil {
		s.logger.Error("error al clonar el día", zap.Error(err))
		return 0, err
	}

	s.cache.InvalidateProfessional(ctx, dto.ProfessionalID)

	return count, nil
}

// slotRangesOverlap compara solo horarios y ámbito de servicio; ambas
// plantillas ya están resueltas para la misma fecha.
func slotRangesOverlap(a, b domain.AvailabilityTemplate) bool {
	if !sameServiceScope(a.ServiceID, b.ServiceID) {
		return false
	}
	return a.StartTime < b.EndTime && b.StartTime < a.EndTime
}
