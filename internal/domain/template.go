package domain

import (
	"time"
)

// AvailabilityTemplate es una regla semanal recurrente de disponibilidad de un
// profesional en una sede, opcionalmente ligada a un servicio. ServiceID nulo
// significa "cualquier servicio". Una plantilla con ValidFrom == ValidUntil
// está acotada a un único día.
type AvailabilityTemplate struct {
	ID             int64      `json:"id"`
	ProfessionalID int64      `json:"professional_id"`
	PlaceID        int64      `json:"place_id"`
	ServiceID      *int64     `json:"service_id"`
	Weekday        Weekday    `json:"weekday"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	ValidFrom      *time.Time `json:"valid_from"`
	ValidUntil     *time.Time `json:"valid_until"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SingleDay indica si la plantilla está acotada a un único día.
func (t AvailabilityTemplate) SingleDay() bool {
	return t.ValidFrom != nil && t.ValidUntil != nil && t.ValidFrom.Equal(*t.ValidUntil)
}

type CreateTemplateDTO struct {
	ProfessionalID int64   `json:"professional_id" binding:"required"`
	PlaceID        int64   `json:"place_id" binding:"required"`
	ServiceID      *int64  `json:"service_id"`
	Weekday        Weekday `json:"weekday"`
	StartTime      string  `json:"start_time" binding:"required"`
	EndTime        string  `json:"end_time" binding:"required"`
	ValidFrom      *string `json:"valid_from,omitempty"`
	ValidUntil     *string `json:"valid_until,omitempty"`
}

// DeleteSeriesDTO identifica una serie semanal completa: todas las filas del
// profesional que comparten día, rango horario y sede.
type DeleteSeriesDTO struct {
	ProfessionalID int64   `json:"professional_id" binding:"required"`
	PlaceID        int64   `json:"place_id" binding:"required"`
	Weekday        Weekday `json:"weekday"`
	StartTime      string  `json:"start_time" binding:"required"`
	EndTime        string  `json:"end_time" binding:"required"`
}

type TemplateFilter struct {
	ProfessionalID *int64
	PlaceID        *int64
	Weekday        *Weekday
	// ActiveOn restringe a plantillas cuya ventana de validez incluye la fecha.
	ActiveOn *time.Time
}

// CloneDayDTO describe la copia de todas las plantillas activas de un día a
// otro para el mismo profesional. Si Recurring es falso, las plantillas
// creadas quedan acotadas al día destino.
type CloneDayDTO struct {
	ProfessionalID int64  `json:"professional_id" binding:"required"`
	PlaceID        int64  `json:"place_id" binding:"required"`
	SourceDate     string `json:"source_date" binding:"required"`
	TargetDate     string `json:"target_date" binding:"required"`
	Recurring      bool   `json:"recurring"`
}
