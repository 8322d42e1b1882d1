package agenda

import (
	"time"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

const clockLayout = "15:04"

// ParseClock valida una hora del día y la devuelve en minutos desde
// medianoche. Solo se acepta la forma canónica HH:MM con cero inicial: las
// horas almacenadas se comparan como cadenas en los chequeos de solape, y
// una variante sin relleno como "9:00" las ordenaría mal.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil || t.Format(clockLayout) != s {
		return 0, domain.NewValidationError("formato de hora inválido, se espera HH:MM")
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ClockOn ancla una hora del día sobre una fecha concreta, en la zona horaria
// de la fecha.
func ClockOn(date time.Time, minutes int) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, date.Location()).
		Add(time.Duration(minutes) * time.Minute)
}

// DateOnly descarta la componente horaria conservando la zona.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
