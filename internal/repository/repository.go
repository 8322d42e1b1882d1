package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

type Repositories struct {
	Template     TemplateRepository
	Blackout     BlackoutRepository
	Appointment  AppointmentRepository
	Service      ServiceRepository
	Professional ProfessionalRepository
	Place        PlaceRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Template:     NewTemplateRepository(db),
		Blackout:     NewBlackoutRepository(db),
		Appointment:  NewAppointmentRepository(db),
		Service:      NewServiceRepository(db),
		Professional: NewProfessionalRepository(db),
		Place:        NewPlaceRepository(db),
	}
}

type TemplateRepository interface {
	Create(ctx context.Context, template domain.AvailabilityTemplate) (int64, error)
	// CreateMany inserta todas las plantillas en una única transacción:
	// o entran todas o no entra ninguna.
	CreateMany(ctx context.Context, templates []domain.AvailabilityTemplate) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityTemplate, error)
	List(ctx context.Context, filter domain.TemplateFilter) ([]domain.AvailabilityTemplate, error)
	Delete(ctx context.Context, id int64) error
	DeleteSeries(ctx context.Context, series domain.DeleteSeriesDTO) (int64, error)
	// ExcludeDate estrecha la validez de una plantilla recurrente para
	// excluir una única fecha, partiéndola en dos filas si hace falta.
	ExcludeDate(ctx context.Context, template domain.AvailabilityTemplate, date time.Time) error
}

type BlackoutRepository interface {
	Create(ctx context.Context, dto domain.CreateBlackoutDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.BlackoutPeriod, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.BlackoutFilter) ([]domain.BlackoutPeriod, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO, status domain.AppointmentStatus) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	// HasOverlap comprueba si alguna cita ocupante del profesional solapa el
	// rango [start, end) en la fecha dada.
	HasOverlap(ctx context.Context, professionalID int64, date time.Time, startTime, endTime string) (bool, error)
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Service, error)
}

type ProfessionalRepository interface {
	Create(ctx context.Context, dto domain.CreateProfessionalDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error
	List(ctx context.Context, search string) ([]domain.Professional, error)
}

type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	List(ctx context.Context) ([]domain.Place, error)
}
