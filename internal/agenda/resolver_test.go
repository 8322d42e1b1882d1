package agenda

import (
	"testing"
	"time"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestWeekdayOf(t *testing.T) {
	// 2024-06-10 es lunes.
	if got := domain.WeekdayOf(date(2024, 6, 10)); got != domain.WeekdayMonday {
		t.Fatalf("expected monday (0), got %d", got)
	}
	// 2024-06-16 es domingo.
	if got := domain.WeekdayOf(date(2024, 6, 16)); got != domain.WeekdaySunday {
		t.Fatalf("expected sunday (6), got %d", got)
	}
}

func TestTemplateMatches_ValidityBoundaries(t *testing.T) {
	// Lunes recurrente con validez hasta el 2024-06-10 inclusive.
	tmpl := domain.AvailabilityTemplate{
		ID:             1,
		ProfessionalID: 7,
		PlaceID:        1,
		Weekday:        domain.WeekdayMonday,
		StartTime:      "09:00",
		EndTime:        "12:00",
		ValidUntil:     datePtr(2024, 6, 10),
	}

	if !TemplateMatches(tmpl, 1, date(2024, 6, 10)) {
		t.Fatalf("template should match its valid_until date")
	}
	if TemplateMatches(tmpl, 1, date(2024, 6, 17)) {
		t.Fatalf("template should not match the monday after valid_until")
	}

	tmpl.ValidUntil = nil
	tmpl.ValidFrom = datePtr(2024, 6, 10)

	if !TemplateMatches(tmpl, 1, date(2024, 6, 10)) {
		t.Fatalf("template should match its valid_from date")
	}
	if TemplateMatches(tmpl, 1, date(2024, 6, 3)) {
		t.Fatalf("template should not match the monday before valid_from")
	}
}

func TestTemplateMatches_WeekdayAndPlace(t *testing.T) {
	tmpl := domain.AvailabilityTemplate{
		ID:        1,
		PlaceID:   2,
		Weekday:   domain.WeekdayTuesday,
		StartTime: "09:00",
		EndTime:   "12:00",
	}

	if TemplateMatches(tmpl, 2, date(2024, 6, 10)) {
		t.Fatalf("monday should not match a tuesday template")
	}
	if !TemplateMatches(tmpl, 2, date(2024, 6, 11)) {
		t.Fatalf("tuesday should match a tuesday template")
	}
	if TemplateMatches(tmpl, 1, date(2024, 6, 11)) {
		t.Fatalf("place 1 should not match a template for place 2")
	}
	// placeID 0 no filtra por sede.
	if !TemplateMatches(tmpl, 0, date(2024, 6, 11)) {
		t.Fatalf("place 0 should match any place")
	}
}

func TestResolveTemplates_KeepsParallelTracks(t *testing.T) {
	svcID := int64(5)
	templates := []domain.AvailabilityTemplate{
		{ID: 1, PlaceID: 1, Weekday: domain.WeekdayMonday, StartTime: "09:00", EndTime: "12:00"},
		{ID: 2, PlaceID: 1, Weekday: domain.WeekdayMonday, StartTime: "09:00", EndTime: "12:00", ServiceID: &svcID},
		{ID: 3, PlaceID: 1, Weekday: domain.WeekdayFriday, StartTime: "09:00", EndTime: "12:00"},
	}

	matched := ResolveTemplates(templates, 1, date(2024, 6, 10))
	if len(matched) != 2 {
		t.Fatalf("expected both overlapping monday templates, got %d", len(matched))
	}
}

func TestResolveTemplates_NoMatchesIsEmptyNotError(t *testing.T) {
	matched := ResolveTemplates(nil, 1, date(2024, 6, 10))
	if len(matched) != 0 {
		t.Fatalf("expected empty result, got %d", len(matched))
	}
}
