package agenda

import (
	"time"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

// GenerateSlots expande una plantilla en turnos discretos sobre una fecha,
// ordenados por hora de inicio. Si la plantilla está ligada a un servicio
// conocido, el paso es duración + buffer del servicio; si no, la duración por
// defecto con buffer cero. El último turno debe caber por su tramo de
// atención al paciente: el buffer puede sobresalir del fin de la plantilla.
//
// Función pura; se recalcula en cada llamada.
func GenerateSlots(t domain.AvailabilityTemplate, svc *domain.Service, defaultMinutes int, date time.Time) ([]domain.Slot, error) {
	startMin, err := ParseClock(t.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := ParseClock(t.EndTime)
	if err != nil {
		return nil, err
	}
	if startMin >= endMin {
		return nil, domain.NewValidationError("la hora de inicio debe ser anterior a la de fin")
	}

	duration := defaultMinutes
	buffer := 0
	if t.ServiceID != nil && svc != nil {
		duration = svc.DurationMinutes
		buffer = svc.BufferMinutes
	}

	// Una duración no positiva produciría un bucle infinito; se recurre a la
	// duración por defecto antes de rechazar.
	if duration <= 0 {
		duration = defaultMinutes
		buffer = 0
	}
	if duration <= 0 {
		return nil, domain.NewValidationError("la duración del turno debe ser positiva")
	}
	if buffer < 0 {
		buffer = 0
	}

	step := duration + buffer

	var slots []domain.Slot
	for cur := startMin; cur+duration <= endMin; cur += step {
		slots = append(slots, domain.Slot{
			TemplateID: t.ID,
			ServiceID:  t.ServiceID,
			Start:      ClockOn(date, cur),
			PatientEnd: ClockOn(date, cur+duration),
			RealEnd:    ClockOn(date, cur+step),
		})
	}

	return slots, nil
}
