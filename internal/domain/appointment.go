package domain

import (
	"time"
)

// AppointmentStatus es un conjunto abierto: el editor de flujos de trabajo
// puede definir estados propios. Solo los dos estados de exclusión tienen
// significado para el motor de ocupación.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusAttended  AppointmentStatus = "attended"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
)

// CountsAsOccupied indica si una cita con este estado bloquea su horario.
func (s AppointmentStatus) CountsAsOccupied() bool {
	return s != AppointmentStatusCancelled && s != AppointmentStatusRejected
}

type Appointment struct {
	ID             int64             `json:"id"`
	ProfessionalID int64             `json:"professional_id"`
	PlaceID        int64             `json:"place_id"`
	ServiceID      *int64            `json:"service_id"`
	PatientTypeID  *int64            `json:"patient_type_id"`
	Date           time.Time         `json:"date"`
	StartTime      string            `json:"start_time"`
	EndTime        string            `json:"end_time"`
	Status         AppointmentStatus `json:"status"`
	PatientName    string            `json:"patient_name"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type CreateAppointmentDTO struct {
	ProfessionalID int64  `json:"professional_id" binding:"required"`
	PlaceID        int64  `json:"place_id" binding:"required"`
	ServiceID      *int64 `json:"service_id"`
	PatientTypeID  *int64 `json:"patient_type_id"`
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	PatientName    string `json:"patient_name" binding:"required"`
}

type UpdateAppointmentStatusDTO struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}

type AppointmentFilter struct {
	ProfessionalID *int64
	PlaceID        *int64
	Date           *time.Time
	DateTo         *time.Time
	Status         *AppointmentStatus
	ExcludeStatus  *AppointmentStatus
	Limit          int
	Offset         int
}
