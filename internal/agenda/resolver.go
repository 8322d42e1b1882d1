package agenda

import (
	"time"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

// TemplateMatches decide si una plantilla aplica en una fecha: misma sede
// (placeID 0 no filtra por sede), mismo día de la semana y fecha dentro de la
// ventana de validez, inclusiva en ambos extremos.
func TemplateMatches(t domain.AvailabilityTemplate, placeID int64, date time.Time) bool {
	if placeID != 0 && t.PlaceID != placeID {
		return false
	}
	if t.Weekday != domain.WeekdayOf(date) {
		return false
	}

	day := DateOnly(date)
	if t.ValidFrom != nil && day.Before(DateOnly(*t.ValidFrom)) {
		return false
	}
	if t.ValidUntil != nil && day.After(DateOnly(*t.ValidUntil)) {
		return false
	}

	return true
}

// ResolveTemplates filtra las plantillas activas en la fecha. Las plantillas
// que se solapan en horario se conservan todas: representan pistas reservables
// en paralelo (por ejemplo una general y otra ligada a un servicio); la
// ocupación se resuelve después a nivel de turno. Un resultado vacío no es un
// error.
func ResolveTemplates(templates []domain.AvailabilityTemplate, placeID int64, date time.Time) []domain.AvailabilityTemplate {
	var matched []domain.AvailabilityTemplate
	for _, t := range templates {
		if TemplateMatches(t, placeID, date) {
			matched = append(matched, t)
		}
	}
	return matched
}
