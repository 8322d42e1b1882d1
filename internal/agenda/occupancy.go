package agenda

import (
	"sort"
	"time"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

// Policy controla la clasificación de turnos. AllowPastBooking es el
// interruptor explícito del alta administrativa exprés: permite reservar
// turnos cuyo inicio ya pasó (altas retroactivas del mismo día).
type Policy struct {
	AllowPastBooking bool
}

// ClassifySlot determina el estado de un turno. Las reglas se evalúan en
// orden y gana la primera que aplique:
//
//  1. inicio anterior a now → past (salvo política exprés)
//  2. solape de [start, realEnd) con un bloqueo → blocked, con su motivo
//  3. solape de [start, patientEnd) con una cita no cancelada → booked
//  4. en otro caso → available
//
// Contra los bloqueos cuenta también el buffer: en ese tramo el profesional
// sigue ocupado. Contra las citas solo cuenta el tramo de atención.
// Sin efectos secundarios; con entradas iguales el resultado es idéntico.
func ClassifySlot(slot domain.Slot, blackouts []domain.BlackoutPeriod, appointments []domain.Appointment, now time.Time, p Policy) domain.Slot {
	slot.Status = domain.SlotStatusAvailable
	slot.Reason = ""
	slot.PatientName = ""

	if !p.AllowPastBooking && slot.Start.Before(now) {
		slot.Status = domain.SlotStatusPast
		return slot
	}

	for _, b := range blackouts {
		if overlaps(slot.Start, slot.RealEnd, b.StartDateTime, b.EndDateTime) {
			slot.Status = domain.SlotStatusBlocked
			slot.Reason = b.Reason
			return slot
		}
	}

	for _, a := range appointments {
		if !a.Status.CountsAsOccupied() {
			continue
		}
		apptStart, apptEnd, err := appointmentWindow(a)
		if err != nil {
			// Una cita con horas corruptas no puede bloquear la grilla.
			continue
		}
		if overlaps(slot.Start, slot.PatientEnd, apptStart, apptEnd) {
			slot.Status = domain.SlotStatusBooked
			slot.PatientName = a.PatientName
			return slot
		}
	}

	return slot
}

// ClassifyAll clasifica y ordena los turnos de un día por hora de inicio.
func ClassifyAll(slots []domain.Slot, blackouts []domain.BlackoutPeriod, appointments []domain.Appointment, now time.Time, p Policy) []domain.Slot {
	out := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, ClassifySlot(s, blackouts, appointments, now, p))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].TemplateID < out[j].TemplateID
	})

	return out
}

// overlaps aplica la comparación de intervalos semiabiertos [aStart, aEnd) y
// [bStart, bEnd).
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func appointmentWindow(a domain.Appointment) (time.Time, time.Time, error) {
	startMin, err := ParseClock(a.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMin, err := ParseClock(a.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return ClockOn(a.Date, startMin), ClockOn(a.Date, endMin), nil
}
