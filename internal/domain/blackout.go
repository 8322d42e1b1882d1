package domain

import (
	"time"
)

// BlackoutPeriod es un intervalo absoluto en el que el profesional no está
// disponible, independientemente de sus plantillas.
type BlackoutPeriod struct {
	ID             int64     `json:"id"`
	ProfessionalID int64     `json:"professional_id"`
	StartDateTime  time.Time `json:"start_datetime"`
	EndDateTime    time.Time `json:"end_datetime"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateBlackoutDTO struct {
	ProfessionalID int64     `json:"professional_id" binding:"required"`
	StartDateTime  time.Time `json:"start_datetime" binding:"required"`
	EndDateTime    time.Time `json:"end_datetime" binding:"required"`
	Reason         string    `json:"reason"`
}

type BlackoutFilter struct {
	ProfessionalID *int64
	From           *time.Time
	To             *time.Time
}
