package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/cache"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

type appointmentFixture struct {
	svc          *AppointmentServiceImpl
	appointments *fakeAppointmentRepo
	blackouts    *fakeBlackoutRepo
	services     *fakeServiceRepo
}

func newAppointmentFixture() *appointmentFixture {
	appointments := &fakeAppointmentRepo{}
	blackouts := &fakeBlackoutRepo{}
	services := &fakeServiceRepo{}
	professionals := &fakeProfessionalRepo{
		professionals: []domain.Professional{{ID: 1, FullName: "Ana Pérez", Active: true}},
	}

	svc := NewAppointmentService(appointments, blackouts, services, professionals, fakePlaceRepo{}, cache.NoopCache{}, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 6, 10, 9, 15, 0, 0, time.UTC) }

	return &appointmentFixture{
		svc:          svc,
		appointments: appointments,
		blackouts:    blackouts,
		services:     services,
	}
}

func newCita(start, end string) domain.CreateAppointmentDTO {
	return domain.CreateAppointmentDTO{
		ProfessionalID: 1,
		PlaceID:        2,
		Date:           "2024-06-10",
		StartTime:      start,
		EndTime:        end,
		PatientName:    "Luis Gómez",
	}
}

func TestCreateAppointment_StoresPendingAppointment(t *testing.T) {
	fx := newAppointmentFixture()

	id, err := fx.svc.Create(context.Background(), newCita("10:00", "10:30"), false)
	if err != nil {
		t.Fatalf("Create devolvió error: %v", err)
	}
	if id != 1 {
		t.Fatalf("id inesperado: %d", id)
	}
	if len(fx.appointments.created) != 1 {
		t.Fatalf("se esperaba 1 cita almacenada, hay %d", len(fx.appointments.created))
	}
	if fx.appointments.created[0].StartTime != "10:00" {
		t.Fatalf("la cita almacenada no conserva el horario: %q", fx.appointments.created[0].StartTime)
	}
}

func TestCreateAppointment_OverlapRejectedWithConflict(t *testing.T) {
	fx := newAppointmentFixture()
	fx.appointments.overlap = true

	_, err := fx.svc.Create(context.Background(), newCita("10:00", "10:30"), false)
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("un solape debe rechazarse con conflicto, no %v", err)
	}
	if len(fx.appointments.created) != 0 {
		t.Fatalf("un rechazo no debe almacenar citas, hay %d", len(fx.appointments.created))
	}
}

func TestCreateAppointment_BlackoutRejectedWithConflict(t *testing.T) {
	fx := newAppointmentFixture()
	fx.blackouts.blackouts = []domain.BlackoutPeriod{
		{
			ProfessionalID: 1,
			StartDateTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			EndDateTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
			Reason:         "congreso",
		},
	}

	_, err := fx.svc.Create(context.Background(), newCita("10:00", "10:30"), false)
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("un periodo bloqueado debe rechazarse con conflicto, no %v", err)
	}
	if len(fx.appointments.created) != 0 {
		t.Fatalf("un rechazo no debe almacenar citas, hay %d", len(fx.appointments.created))
	}
}

func TestCreateAppointment_PastAllowedOnlyInExpressMode(t *testing.T) {
	fx := newAppointmentFixture()

	// now es 09:15; una cita de 09:00 ya empezó.
	_, err := fx.svc.Create(context.Background(), newCita("09:00", "09:30"), false)
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("un horario pasado en modo estándar debe rechazarse con validación, no %v", err)
	}
	if len(fx.appointments.created) != 0 {
		t.Fatalf("un rechazo no debe almacenar citas, hay %d", len(fx.appointments.created))
	}

	id, err := fx.svc.Create(context.Background(), newCita("09:00", "09:30"), true)
	if err != nil {
		t.Fatalf("el alta exprés debe admitir horarios pasados: %v", err)
	}
	if id != 1 || len(fx.appointments.created) != 1 {
		t.Fatalf("el alta exprés no almacenó la cita")
	}
}

func TestCreateAppointment_UnknownProfessionalNotFound(t *testing.T) {
	fx := newAppointmentFixture()

	dto := newCita("10:00", "10:30")
	dto.ProfessionalID = 99

	_, err := fx.svc.Create(context.Background(), dto, false)
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("un profesional inexistente debe rechazarse como no encontrado, no %v", err)
	}
}

func TestCreateAppointment_ServicePatientTypeEligibility(t *testing.T) {
	fx := newAppointmentFixture()
	serviceID := int64(7)
	fx.services.services = []domain.Service{
		{ID: serviceID, Name: "Control prenatal", DurationMinutes: 30, EligiblePatientTypeIDs: []int64{3}, Active: true},
	}

	dto := newCita("10:00", "10:30")
	dto.ServiceID = &serviceID
	rejected := int64(9)
	dto.PatientTypeID = &rejected

	_, err := fx.svc.Create(context.Background(), dto, false)
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("un tipo de paciente no admitido debe rechazarse con validación, no %v", err)
	}
	if len(fx.appointments.created) != 0 {
		t.Fatalf("un rechazo no debe almacenar citas, hay %d", len(fx.appointments.created))
	}

	eligible := int64(3)
	dto.PatientTypeID = &eligible
	if _, err := fx.svc.Create(context.Background(), dto, false); err != nil {
		t.Fatalf("un tipo de paciente admitido debe aceptarse: %v", err)
	}

	unknown := int64(99)
	dto.ServiceID = &unknown
	_, err = fx.svc.Create(context.Background(), dto, false)
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("un servicio inexistente debe rechazarse como no encontrado, no %v", err)
	}
}
