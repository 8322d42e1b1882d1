package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/config"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/cache"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/repository"
)

type fakeTemplateRepo struct {
	templates []domain.AvailabilityTemplate
	nextID    int64
}

func (f *fakeTemplateRepo) Create(_ context.Context, template domain.AvailabilityTemplate) (int64, error) {
	f.nextID++
	template.ID = f.nextID
	f.templates = append(f.templates, template)
	return template.ID, nil
}

func (f *fakeTemplateRepo) CreateMany(ctx context.Context, templates []domain.AvailabilityTemplate) (int, error) {
	for _, t := range templates {
		if _, err := f.Create(ctx, t); err != nil {
			return 0, err
		}
	}
	return len(templates), nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilityTemplate, error) {
	for _, t := range f.templates {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepo) List(_ context.Context, filter domain.TemplateFilter) ([]domain.AvailabilityTemplate, error) {
	var out []domain.AvailabilityTemplate
	for _, t := range f.templates {
		if filter.ProfessionalID != nil && t.ProfessionalID != *filter.ProfessionalID {
			continue
		}
		if filter.PlaceID != nil && t.PlaceID != *filter.PlaceID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, id int64) error {
	for i, t := range f.templates {
		if t.ID == id {
			f.templates = append(f.templates[:i], f.templates[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTemplateRepo) DeleteSeries(_ context.Context, series domain.DeleteSeriesDTO) (int64, error) {
	var kept []domain.AvailabilityTemplate
	var deleted int64
	for _, t := range f.templates {
		if t.ProfessionalID == series.ProfessionalID && t.PlaceID == series.PlaceID &&
			t.Weekday == series.Weekday && t.StartTime == series.StartTime && t.EndTime == series.EndTime {
			deleted++
			continue
		}
		kept = append(kept, t)
	}
	f.templates = kept
	return deleted, nil
}

func (f *fakeTemplateRepo) ExcludeDate(_ context.Context, _ domain.AvailabilityTemplate, _ time.Time) error {
	return nil
}

type fakeBlackoutRepo struct {
	blackouts []domain.BlackoutPeriod
}

func (f *fakeBlackoutRepo) Create(_ context.Context, _ domain.CreateBlackoutDTO) (int64, error) {
	return 0, nil
}

func (f *fakeBlackoutRepo) GetByID(_ context.Context, _ int64) (*domain.BlackoutPeriod, error) {
	return nil, nil
}

func (f *fakeBlackoutRepo) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakeBlackoutRepo) List(_ context.Context, _ domain.BlackoutFilter) ([]domain.BlackoutPeriod, error) {
	return f.blackouts, nil
}

type fakeAppointmentRepo struct {
	appointments []domain.Appointment
	overlap      bool
	created      []domain.CreateAppointmentDTO
}

func (f *fakeAppointmentRepo) Create(_ context.Context, dto domain.CreateAppointmentDTO, _ domain.AppointmentStatus) (int64, error) {
	f.created = append(f.created, dto)
	return int64(len(f.created)), nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ int64, _ domain.AppointmentStatus) error {
	return nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ domain.AppointmentFilter) ([]domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) HasOverlap(_ context.Context, _ int64, _ time.Time, _, _ string) (bool, error) {
	return f.overlap, nil
}

type fakeServiceRepo struct {
	services []domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) List(_ context.Context, _ bool) ([]domain.Service, error) {
	return f.services, nil
}

type fakeProfessionalRepo struct {
	professionals []domain.Professional
}

func (f *fakeProfessionalRepo) Create(_ context.Context, _ domain.CreateProfessionalDTO) (int64, error) {
	return 0, nil
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, id int64) (*domain.Professional, error) {
	for _, p := range f.professionals {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfessionalRepo) Update(_ context.Context, _ int64, _ domain.UpdateProfessionalDTO) error {
	return nil
}

func (f *fakeProfessionalRepo) List(_ context.Context, _ string) ([]domain.Professional, error) {
	return f.professionals, nil
}

type fakePlaceRepo struct{}

func (fakePlaceRepo) GetByID(_ context.Context, id int64) (*domain.Place, error) {
	return &domain.Place{ID: id, Name: "Sede Central"}, nil
}

func (fakePlaceRepo) List(_ context.Context) ([]domain.Place, error) { return nil, nil }

type agendaFixture struct {
	svc          *AgendaServiceImpl
	templates    *fakeTemplateRepo
	blackouts    *fakeBlackoutRepo
	appointments *fakeAppointmentRepo
	services     *fakeServiceRepo
}

func newAgendaFixture() *agendaFixture {
	templates := &fakeTemplateRepo{}
	blackouts := &fakeBlackoutRepo{}
	appointments := &fakeAppointmentRepo{}
	services := &fakeServiceRepo{}
	professionals := &fakeProfessionalRepo{
		professionals: []domain.Professional{{ID: 1, FullName: "Ana Pérez", Active: true}},
	}

	repos := &repository.Repositories{
		Template:     templates,
		Blackout:     blackouts,
		Appointment:  appointments,
		Service:      services,
		Professional: professionals,
		Place:        fakePlaceRepo{},
	}

	svc := NewAgendaService(repos, cache.NoopCache{}, config.AgendaConfig{DefaultSlotMinutes: 30}, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }

	return &agendaFixture{
		svc:          svc,
		templates:    templates,
		blackouts:    blackouts,
		appointments: appointments,
		services:     services,
	}
}

func TestGetDaySlots_AssemblesClassifiedDay(t *testing.T) {
	fx := newAgendaFixture()
	fx.templates.templates = []domain.AvailabilityTemplate{
		{ID: 1, ProfessionalID: 1, PlaceID: 2, Weekday: domain.WeekdayMonday, StartTime: "09:00", EndTime: "11:00"},
	}
	fx.appointments.appointments = []domain.Appointment{
		{
			ProfessionalID: 1,
			PlaceID:        2,
			Date:           time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			StartTime:      "09:30",
			EndTime:        "10:00",
			Status:         domain.AppointmentStatusConfirmed,
			PatientName:    "Luis Gómez",
		},
	}
	fx.blackouts.blackouts = []domain.BlackoutPeriod{
		{
			ProfessionalID: 1,
			StartDateTime:  time.Date(2024, 6, 10, 10, 30, 0, 0, time.UTC),
			EndDateTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
			Reason:         "reunión clínica",
		},
	}

	day, err := fx.svc.GetDaySlots(context.Background(), 1, 2, "2024-06-10", false)
	if err != nil {
		t.Fatalf("GetDaySlots devolvió error: %v", err)
	}
	if len(day.Slots) != 4 {
		t.Fatalf("se esperaban 4 turnos, hay %d", len(day.Slots))
	}

	want := []domain.SlotStatus{
		domain.SlotStatusAvailable,
		domain.SlotStatusBooked,
		domain.SlotStatusAvailable,
		domain.SlotStatusBlocked,
	}
	for i, status := range want {
		if day.Slots[i].Status != status {
			t.Fatalf("turno %d: estado %q, se esperaba %q", i, day.Slots[i].Status, status)
		}
	}
	if day.Slots[1].PatientName != "Luis Gómez" {
		t.Fatalf("el turno reservado no conserva el paciente: %q", day.Slots[1].PatientName)
	}
	if day.Slots[3].Reason != "reunión clínica" {
		t.Fatalf("el turno bloqueado no conserva el motivo: %q", day.Slots[3].Reason)
	}
}

func TestGetDaySlots_UnknownProfessionalIsEmptyNotError(t *testing.T) {
	fx := newAgendaFixture()

	day, err := fx.svc.GetDaySlots(context.Background(), 99, 2, "2024-06-10", false)
	if err != nil {
		t.Fatalf("un profesional inexistente no debe ser error: %v", err)
	}
	if len(day.Slots) != 0 {
		t.Fatalf("se esperaba un día sin turnos, hay %d", len(day.Slots))
	}
}

func TestGetWeekGrid_StartsOnMonday(t *testing.T) {
	fx := newAgendaFixture()
	fx.templates.templates = []domain.AvailabilityTemplate{
		{ID: 1, ProfessionalID: 1, PlaceID: 2, Weekday: domain.WeekdayWednesday, StartTime: "08:00", EndTime: "09:00"},
	}

	// 2024-06-13 es jueves; la semana debe empezar el lunes 10.
	grid, err := fx.svc.GetWeekGrid(context.Background(), []int64{1}, 2, "2024-06-13", false)
	if err != nil {
		t.Fatalf("GetWeekGrid devolvió error: %v", err)
	}
	if !grid.WeekStart.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("inicio de semana incorrecto: %v", grid.WeekStart)
	}

	days := grid.Professionals[1]
	if len(days) != 7 {
		t.Fatalf("se esperaban 7 días, hay %d", len(days))
	}
	for i, day := range days {
		if i == 2 {
			if len(day.Slots) != 2 {
				t.Fatalf("el miércoles debería tener 2 turnos, tiene %d", len(day.Slots))
			}
			continue
		}
		if len(day.Slots) != 0 {
			t.Fatalf("el día %d debería estar vacío, tiene %d turnos", i, len(day.Slots))
		}
	}
}

func TestCloneDay_ProducesIdenticalSlotSequence(t *testing.T) {
	fx := newAgendaFixture()
	serviceID := int64(7)
	fx.services.services = []domain.Service{
		{ID: serviceID, Name: "Consulta general", DurationMinutes: 20, BufferMinutes: 5, Active: true},
	}
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fx.templates.templates = []domain.AvailabilityTemplate{
		{ID: 1, ProfessionalID: 1, PlaceID: 2, ServiceID: &serviceID, Weekday: domain.WeekdayMonday, StartTime: "09:00", EndTime: "10:00", ValidFrom: &monday, ValidUntil: &monday},
		{ID: 2, ProfessionalID: 1, PlaceID: 2, Weekday: domain.WeekdayMonday, StartTime: "14:00", EndTime: "15:00", ValidFrom: &monday, ValidUntil: &monday},
	}
	fx.templates.nextID = 2

	count, err := fx.svc.CloneDay(context.Background(), domain.CloneDayDTO{
		ProfessionalID: 1,
		PlaceID:        2,
		SourceDate:     "2024-01-01",
		TargetDate:     "2024-01-08",
	})
	if err != nil {
		t.Fatalf("CloneDay devolvió error: %v", err)
	}
	if count != 2 {
		t.Fatalf("se esperaban 2 plantillas clonadas, hay %d", count)
	}

	source, err := fx.svc.GetDaySlots(context.Background(), 1, 2, "2024-01-01", false)
	if err != nil {
		t.Fatalf("GetDaySlots del origen devolvió error: %v", err)
	}
	target, err := fx.svc.GetDaySlots(context.Background(), 1, 2, "2024-01-08", false)
	if err != nil {
		t.Fatalf("GetDaySlots del destino devolvió error: %v", err)
	}

	if len(source.Slots) == 0 || len(source.Slots) != len(target.Slots) {
		t.Fatalf("el destino debe tener los mismos turnos que el origen: %d vs %d",
			len(source.Slots), len(target.Slots))
	}
	for i := range source.Slots {
		wantStart := source.Slots[i].Start.AddDate(0, 0, 7)
		if !target.Slots[i].Start.Equal(wantStart) {
			t.Fatalf("turno %d: inicio %v, se esperaba %v", i, target.Slots[i].Start, wantStart)
		}
		if target.Slots[i].Status != source.Slots[i].Status {
			t.Fatalf("turno %d: estado %q difiere del origen %q", i, target.Slots[i].Status, source.Slots[i].Status)
		}
	}

	// Las filas origen no se tocan.
	for _, id := range []int64{1, 2} {
		tmpl, _ := fx.templates.GetByID(context.Background(), id)
		if tmpl == nil || tmpl.ValidFrom == nil || !tmpl.ValidFrom.Equal(monday) ||
			tmpl.ValidUntil == nil || !tmpl.ValidUntil.Equal(monday) {
			t.Fatalf("la plantilla origen %d fue modificada", id)
		}
	}

	// Las copias quedan acotadas al día destino.
	targetDate := monday.AddDate(0, 0, 7)
	for _, id := range []int64{3, 4} {
		tmpl, _ := fx.templates.GetByID(context.Background(), id)
		if tmpl == nil {
			t.Fatalf("falta la plantilla clonada %d", id)
		}
		if tmpl.ValidFrom == nil || tmpl.ValidUntil == nil ||
			!tmpl.ValidFrom.Equal(targetDate) || !tmpl.ValidUntil.Equal(targetDate) {
			t.Fatalf("la plantilla clonada %d no está acotada al día destino", id)
		}
	}
}

func TestCloneDay_EmptySourceRejected(t *testing.T) {
	fx := newAgendaFixture()

	_, err := fx.svc.CloneDay(context.Background(), domain.CloneDayDTO{
		ProfessionalID: 1,
		PlaceID:        2,
		SourceDate:     "2024-01-01",
		TargetDate:     "2024-01-08",
	})
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("un origen vacío debe rechazarse con validación, no %v", err)
	}
}

func TestCloneDay_ConflictingTargetRejected(t *testing.T) {
	fx := newAgendaFixture()
	fx.templates.templates = []domain.AvailabilityTemplate{
		{ID: 1, ProfessionalID: 1, PlaceID: 2, Weekday: domain.WeekdayMonday, StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, ProfessionalID: 1, PlaceID: 2, Weekday: domain.WeekdayTuesday, StartTime: "09:30", EndTime: "10:30"},
	}
	fx.templates.nextID = 2

	_, err := fx.svc.CloneDay(context.Background(), domain.CloneDayDTO{
		ProfessionalID: 1,
		PlaceID:        2,
		SourceDate:     "2024-01-01",
		TargetDate:     "2024-01-02",
	})
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("un destino solapado debe rechazarse con conflicto, no %v", err)
	}
	if len(fx.templates.templates) != 2 {
		t.Fatalf("un clonado rechazado no debe crear plantillas, hay %d", len(fx.templates.templates))
	}
}
