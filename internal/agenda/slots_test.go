package agenda

import (
	"errors"
	"testing"
	"time"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

func TestGenerateSlots_BufferTailMayCrossEndBoundary(t *testing.T) {
	svcID := int64(3)
	tmpl := domain.AvailabilityTemplate{
		ID:        1,
		ServiceID: &svcID,
		Weekday:   domain.WeekdayMonday,
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	svc := &domain.Service{ID: svcID, DurationMinutes: 30, BufferMinutes: 10}

	day := date(2024, 6, 10)
	slots, err := GenerateSlots(tmpl, svc, 30, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 09:00 cabe (09:30 <= 10:00). El siguiente arranca en 09:40 y su tramo
	// de atención terminaría 10:10 > 10:00, así que no se emite.
	if len(slots) != 1 {
		t.Fatalf("expected exactly 1 slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(day.Add(9 * time.Hour)) {
		t.Fatalf("expected start 09:00, got %s", slots[0].Start.Format(time.RFC3339))
	}
	if !slots[0].PatientEnd.Equal(day.Add(9*time.Hour + 30*time.Minute)) {
		t.Fatalf("expected patient end 09:30, got %s", slots[0].PatientEnd.Format(time.RFC3339))
	}
	if !slots[0].RealEnd.Equal(day.Add(9*time.Hour + 40*time.Minute)) {
		t.Fatalf("expected real end 09:40, got %s", slots[0].RealEnd.Format(time.RFC3339))
	}
}

func TestGenerateSlots_DefaultDurationWithoutService(t *testing.T) {
	tmpl := domain.AvailabilityTemplate{
		ID:        1,
		Weekday:   domain.WeekdayMonday,
		StartTime: "08:00",
		EndTime:   "12:00",
	}

	slots, err := GenerateSlots(tmpl, nil, 60, date(2024, 1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 4 {
		t.Fatalf("expected 4 hourly slots, got %d", len(slots))
	}
	for _, s := range slots {
		// Sin servicio no hay buffer: patient_end == real_end.
		if !s.PatientEnd.Equal(s.RealEnd) {
			t.Fatalf("expected no buffer, got patient_end %s real_end %s",
				s.PatientEnd.Format("15:04"), s.RealEnd.Format("15:04"))
		}
	}
}

func TestGenerateSlots_NonPositiveDurationFallsBack(t *testing.T) {
	svcID := int64(9)
	tmpl := domain.AvailabilityTemplate{
		ID:        1,
		ServiceID: &svcID,
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	svc := &domain.Service{ID: svcID, DurationMinutes: 0}

	slots, err := GenerateSlots(tmpl, svc, 30, date(2024, 1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected fallback to 30m slots, got %d", len(slots))
	}
}

func TestGenerateSlots_NonPositiveDefaultIsRejected(t *testing.T) {
	tmpl := domain.AvailabilityTemplate{ID: 1, StartTime: "09:00", EndTime: "10:00"}

	_, err := GenerateSlots(tmpl, nil, 0, date(2024, 1, 1))
	if err == nil {
		t.Fatalf("expected validation error for non-positive duration")
	}
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) || domainErr.Code != domain.CodeValidation {
		t.Fatalf("expected VALIDATION error, got %v", err)
	}
}

func TestGenerateSlots_StartAfterEndIsRejected(t *testing.T) {
	tmpl := domain.AvailabilityTemplate{ID: 1, StartTime: "12:00", EndTime: "09:00"}

	if _, err := GenerateSlots(tmpl, nil, 30, date(2024, 1, 1)); err == nil {
		t.Fatalf("expected validation error for inverted time range")
	}
}

func TestGenerateSlots_BadClockFormat(t *testing.T) {
	tmpl := domain.AvailabilityTemplate{ID: 1, StartTime: "9am", EndTime: "10:00"}

	if _, err := GenerateSlots(tmpl, nil, 30, date(2024, 1, 1)); err == nil {
		t.Fatalf("expected validation error for malformed clock time")
	}
}
