package domain

import (
	"time"
)

// Service es un elemento del catálogo de prestaciones. BufferMinutes es el
// tiempo no reservable que se añade después de la atención (limpieza, notas).
type Service struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	DurationMinutes        int       `json:"duration_minutes"`
	BufferMinutes          int       `json:"buffer_minutes"`
	EligiblePatientTypeIDs []int64   `json:"eligible_patient_type_ids"`
	Active                 bool      `json:"active"`
	CreatedAt              time.Time `json:"created_at"`
}

// AllowsPatientType devuelve si el servicio admite el tipo de paciente.
// Una lista vacía admite todos los tipos.
func (s Service) AllowsPatientType(patientTypeID int64) bool {
	if len(s.EligiblePatientTypeIDs) == 0 {
		return true
	}
	for _, id := range s.EligiblePatientTypeIDs {
		if id == patientTypeID {
			return true
		}
	}
	return false
}

type Professional struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateProfessionalDTO struct {
	FullName  string `json:"full_name" binding:"required"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
}

type UpdateProfessionalDTO struct {
	FullName  *string `json:"full_name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

type Place struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
