package agenda

import (
	"reflect"
	"testing"
	"time"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

func slotAt(day time.Time, startMin, durMin, bufMin int) domain.Slot {
	return domain.Slot{
		TemplateID: 1,
		Start:      ClockOn(day, startMin),
		PatientEnd: ClockOn(day, startMin+durMin),
		RealEnd:    ClockOn(day, startMin+durMin+bufMin),
	}
}

func TestClassifySlot_PastAndExpressPolicy(t *testing.T) {
	day := date(2024, 6, 10)
	now := day.Add(9*time.Hour + 15*time.Minute)

	past := slotAt(day, 9*60, 30, 0)      // 09:00–09:30
	future := slotAt(day, 9*60+30, 30, 0) // 09:30–10:00

	got := ClassifySlot(past, nil, nil, now, Policy{})
	if got.Status != domain.SlotStatusPast {
		t.Fatalf("expected past in standard mode, got %s", got.Status)
	}

	// Alta exprés: el mismo turno pasado vuelve a ser reservable.
	got = ClassifySlot(past, nil, nil, now, Policy{AllowPastBooking: true})
	if got.Status != domain.SlotStatusAvailable {
		t.Fatalf("expected available in express mode, got %s", got.Status)
	}

	for _, p := range []Policy{{}, {AllowPastBooking: true}} {
		got = ClassifySlot(future, nil, nil, now, p)
		if got.Status != domain.SlotStatusAvailable {
			t.Fatalf("future slot should classify normally in both modes, got %s", got.Status)
		}
	}
}

func TestClassifySlot_BlackoutTakesPrecedenceOverBooking(t *testing.T) {
	day := date(2024, 6, 10)
	slot := slotAt(day, 10*60, 30, 0)

	blackouts := []domain.BlackoutPeriod{{
		ID:            1,
		StartDateTime: day.Add(9 * time.Hour),
		EndDateTime:   day.Add(12 * time.Hour),
		Reason:        "vacaciones",
	}}
	appts := []domain.Appointment{{
		ID: 1, Date: day, StartTime: "10:00", EndTime: "10:30",
		Status: domain.AppointmentStatusConfirmed, PatientName: "Ana Ríos",
	}}

	got := ClassifySlot(slot, blackouts, nil, day, Policy{})
	if got.Status != domain.SlotStatusBlocked || got.Reason != "vacaciones" {
		t.Fatalf("expected blocked with reason, got %s (%q)", got.Status, got.Reason)
	}

	// Una cita dentro de un tramo ya bloqueado no cambia la clasificación.
	got = ClassifySlot(slot, blackouts, appts, day, Policy{})
	if got.Status != domain.SlotStatusBlocked {
		t.Fatalf("blocked should take precedence over booked, got %s", got.Status)
	}
}

func TestClassifySlot_BufferCollidesWithBlackout(t *testing.T) {
	day := date(2024, 6, 10)
	// 09:00–09:30 de atención, buffer hasta 09:40.
	slot := slotAt(day, 9*60, 30, 10)

	// El bloqueo empieza a las 09:35: solo choca con el buffer.
	blackouts := []domain.BlackoutPeriod{{
		StartDateTime: day.Add(9*time.Hour + 35*time.Minute),
		EndDateTime:   day.Add(10 * time.Hour),
		Reason:        "reunión de equipo",
	}}

	got := ClassifySlot(slot, blackouts, nil, day, Policy{})
	if got.Status != domain.SlotStatusBlocked {
		t.Fatalf("buffer tail must collide with blackouts, got %s", got.Status)
	}

	// Contra citas el buffer no cuenta: una cita a las 09:35 no marca el
	// turno como reservado.
	appts := []domain.Appointment{{
		Date: day, StartTime: "09:35", EndTime: "10:00",
		Status: domain.AppointmentStatusConfirmed, PatientName: "Luis Vega",
	}}
	got = ClassifySlot(slot, nil, appts, day, Policy{})
	if got.Status != domain.SlotStatusAvailable {
		t.Fatalf("appointments must only collide with the patient window, got %s", got.Status)
	}
}

func TestClassifySlot_CancelledAndRejectedDoNotOccupy(t *testing.T) {
	day := date(2024, 6, 10)
	slot := slotAt(day, 9*60, 30, 0)

	for _, status := range []domain.AppointmentStatus{
		domain.AppointmentStatusCancelled,
		domain.AppointmentStatusRejected,
	} {
		appts := []domain.Appointment{{
			Date: day, StartTime: "09:00", EndTime: "09:30", Status: status,
		}}
		got := ClassifySlot(slot, nil, appts, day, Policy{})
		if got.Status != domain.SlotStatusAvailable {
			t.Fatalf("status %s must not occupy, got %s", status, got.Status)
		}
	}

	// Cualquier otro estado del flujo de trabajo sí ocupa, incluso uno
	// definido por el editor.
	appts := []domain.Appointment{{
		Date: day, StartTime: "09:00", EndTime: "09:30",
		Status: domain.AppointmentStatus("en_sala_de_espera"), PatientName: "Marta Solís",
	}}
	got := ClassifySlot(slot, nil, appts, day, Policy{})
	if got.Status != domain.SlotStatusBooked || got.PatientName != "Marta Solís" {
		t.Fatalf("open-set status must occupy, got %s (%q)", got.Status, got.PatientName)
	}
}

func TestClassifyAll_NoDoubleBookingAcrossOverlappingTracks(t *testing.T) {
	day := date(2024, 6, 10)
	svcID := int64(4)

	// Dos pistas paralelas que comparten las 09:00: la general de 30m y la
	// del servicio de 45m.
	general := slotAt(day, 9*60, 30, 0)
	scoped := domain.Slot{
		TemplateID: 2,
		ServiceID:  &svcID,
		Start:      ClockOn(day, 9*60),
		PatientEnd: ClockOn(day, 9*60+45),
		RealEnd:    ClockOn(day, 9*60+45),
	}

	appts := []domain.Appointment{{
		Date: day, StartTime: "09:00", EndTime: "09:30",
		Status: domain.AppointmentStatusConfirmed, PatientName: "Pedro Lima",
	}}

	classified := ClassifyAll([]domain.Slot{general, scoped}, nil, appts, day, Policy{})
	available := 0
	for _, s := range classified {
		if s.Status == domain.SlotStatusAvailable {
			available++
		}
		if s.Status == domain.SlotStatusBooked && s.PatientName != "Pedro Lima" {
			t.Fatalf("booked slot must carry the patient name, got %q", s.PatientName)
		}
	}
	// Tras registrar la cita, ningún turno que solape su ventana puede seguir
	// reservable de forma independiente.
	if available != 0 {
		t.Fatalf("expected no overlapping slot to remain available, got %d", available)
	}
}

func TestClassifyAll_IsIdempotentAndSorted(t *testing.T) {
	day := date(2024, 6, 10)
	slots := []domain.Slot{
		slotAt(day, 10*60, 30, 0),
		slotAt(day, 9*60, 30, 0),
	}
	blackouts := []domain.BlackoutPeriod{{
		StartDateTime: day.Add(10 * time.Hour),
		EndDateTime:   day.Add(11 * time.Hour),
		Reason:        "ausencia",
	}}

	now := day.Add(8 * time.Hour)
	first := ClassifyAll(slots, blackouts, nil, now, Policy{})
	second := ClassifyAll(slots, blackouts, nil, now, Policy{})

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("classification must be idempotent for identical inputs")
	}
	if !first[0].Start.Before(first[1].Start) {
		t.Fatalf("slots must be ordered by start time")
	}
	if first[0].Status != domain.SlotStatusAvailable || first[1].Status != domain.SlotStatusBlocked {
		t.Fatalf("unexpected statuses: %s, %s", first[0].Status, first[1].Status)
	}
}
