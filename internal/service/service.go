package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/config"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/cache"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/repository"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
	Cache  cache.AgendaCache
}

type Services struct {
	Template    TemplateService
	Blackout    BlackoutService
	Appointment AppointmentService
	Agenda      AgendaService
	Catalog     CatalogService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Template:    NewTemplateService(deps.Repos.Template, deps.Repos.Professional, deps.Repos.Place, deps.Cache, deps.Logger),
		Blackout:    NewBlackoutService(deps.Repos.Blackout, deps.Repos.Professional, deps.Cache, deps.Logger),
		Appointment: NewAppointmentService(deps.Repos.Appointment, deps.Repos.Blackout, deps.Repos.Service, deps.Repos.Professional, deps.Repos.Place, deps.Cache, deps.Logger),
		Agenda:      NewAgendaService(deps.Repos, deps.Cache, deps.Config.Agenda, deps.Logger),
		Catalog:     NewCatalogService(deps.Repos.Service, deps.Repos.Professional, deps.Repos.Place, deps.Logger),
	}
}

type TemplateService interface {
	Create(ctx context.Context, dto domain.CreateTemplateDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityTemplate, error)
	List(ctx context.Context, filter domain.TemplateFilter) ([]domain.AvailabilityTemplate, error)
	// DeleteOccurrence elimina una única ocurrencia: borra la fila si está
	// acotada a un día, o estrecha su ventana de validez si es recurrente.
	DeleteOccurrence(ctx context.Context, id int64, dateStr string) error
	Delete(ctx context.Context, id int64) error
	DeleteSeries(ctx context.Context, series domain.DeleteSeriesDTO) (int64, error)
}

type BlackoutService interface {
	Create(ctx context.Context, dto domain.CreateBlackoutDTO) (int64, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.BlackoutFilter) ([]domain.BlackoutPeriod, error)
}

type AppointmentService interface {
	// Create rechaza con CONFLICT si el horario ya está ocupado o bloqueado.
	// express habilita el alta administrativa de horarios ya pasados.
	Create(ctx context.Context, dto domain.CreateAppointmentDTO, express bool) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
}

type AgendaService interface {
	GetDaySlots(ctx context.Context, professionalID, placeID int64, dateStr string, express bool) (*domain.DayAgenda, error)
	GetWeekGrid(ctx context.Context, professionalIDs []int64, placeID int64, dateStr string, express bool) (*domain.WeekAgenda, error)
	CloneDay(ctx context.Context, dto domain.CloneDayDTO) (int, error)
}

type CatalogService interface {
	ListServices(ctx context.Context, activeOnly bool) ([]domain.Service, error)
	ListProfessionals(ctx context.Context, search string) ([]domain.Professional, error)
	CreateProfessional(ctx context.Context, dto domain.CreateProfessionalDTO) (int64, error)
	UpdateProfessional(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error
	GetProfessional(ctx context.Context, id int64) (*domain.Professional, error)
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}
