package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/cache"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

func newTemplateFixture() (*TemplateServiceImpl, *fakeTemplateRepo) {
	templates := &fakeTemplateRepo{}
	professionals := &fakeProfessionalRepo{
		professionals: []domain.Professional{{ID: 1, FullName: "Ana Pérez", Active: true}},
	}
	svc := NewTemplateService(templates, professionals, fakePlaceRepo{}, cache.NoopCache{}, zap.NewNop())
	return svc, templates
}

func newPlantilla(start, end string) domain.CreateTemplateDTO {
	return domain.CreateTemplateDTO{
		ProfessionalID: 1,
		PlaceID:        2,
		Weekday:        domain.WeekdayMonday,
		StartTime:      start,
		EndTime:        end,
	}
}

func TestCreateTemplate_OverlappingScopeRejected(t *testing.T) {
	svc, repo := newTemplateFixture()

	if _, err := svc.Create(context.Background(), newPlantilla("09:00", "10:00")); err != nil {
		t.Fatalf("la primera plantilla debe aceptarse: %v", err)
	}

	_, err := svc.Create(context.Background(), newPlantilla("09:30", "10:30"))
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("un horario solapado debe rechazarse con conflicto, no %v", err)
	}
	if len(repo.templates) != 1 {
		t.Fatalf("un rechazo no debe almacenar plantillas, hay %d", len(repo.templates))
	}
}

func TestCreateTemplate_NonCanonicalClockRejected(t *testing.T) {
	svc, repo := newTemplateFixture()

	if _, err := svc.Create(context.Background(), newPlantilla("09:00", "09:30")); err != nil {
		t.Fatalf("la primera plantilla debe aceptarse: %v", err)
	}

	// "9:00" ordenaría mal frente a "09:00" al comparar como cadenas, así que
	// la variante sin cero inicial no llega a la validación de solape.
	_, err := svc.Create(context.Background(), newPlantilla("9:00", "9:30"))
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("una hora sin cero inicial debe rechazarse con validación, no %v", err)
	}
	if len(repo.templates) != 1 {
		t.Fatalf("la variante rechazada no debe almacenarse, hay %d plantillas", len(repo.templates))
	}
}
