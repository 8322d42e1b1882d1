package domain

import "time"

// Weekday numera los días con 0=lunes. Es la única enumeración de días del
// sistema; time.Weekday (0=domingo) se convierte exclusivamente aquí, en el
// borde del modelo de datos.
type Weekday int

const (
	WeekdayMonday Weekday = iota
	WeekdayTuesday
	WeekdayWednesday
	WeekdayThursday
	WeekdayFriday
	WeekdaySaturday
	WeekdaySunday
)

func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (w Weekday) Valid() bool {
	return w >= WeekdayMonday && w <= WeekdaySunday
}

func (w Weekday) String() string {
	names := [...]string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}
	if !w.Valid() {
		return "desconocido"
	}
	return names[w]
}
