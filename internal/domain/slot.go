package domain

import (
	"time"
)

// SlotStatus es el estado calculado de un turno. Nunca se persiste.
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusBlocked   SlotStatus = "blocked"
	SlotStatusPast      SlotStatus = "past"
)

// Slot es un turno concreto derivado de una plantilla para una fecha.
// PatientEnd cierra la atención al paciente; RealEnd incluye además el buffer,
// que puede extenderse más allá del fin de la plantilla.
type Slot struct {
	TemplateID  int64      `json:"template_id"`
	ServiceID   *int64     `json:"service_id"`
	Start       time.Time  `json:"start"`
	PatientEnd  time.Time  `json:"patient_end"`
	RealEnd     time.Time  `json:"real_end"`
	Status      SlotStatus `json:"status"`
	Reason      string     `json:"reason,omitempty"`
	PatientName string     `json:"patient_name,omitempty"`
}

// DayAgenda agrupa los turnos calculados de un profesional para una fecha.
type DayAgenda struct {
	ProfessionalID int64     `json:"professional_id"`
	PlaceID        int64     `json:"place_id"`
	Date           time.Time `json:"date"`
	Slots          []Slot    `json:"slots"`
}

// WeekAgenda es la grilla semanal de un conjunto de profesionales.
type WeekAgenda struct {
	WeekStart     time.Time                 `json:"week_start"`
	Professionals map[int64][]DayAgenda     `json:"professionals"`
}
