package agenda

import (
	"testing"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

func TestParseClock_AcceptsCanonicalForm(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:00": 9 * 60,
		"09:30": 9*60 + 30,
		"23:59": 23*60 + 59,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q) devolvió error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %d, se esperaba %d", in, got, want)
		}
	}
}

func TestParseClock_RejectsNonCanonicalForm(t *testing.T) {
	// Las horas se comparan como cadenas al validar solapes; una variante
	// sin cero inicial rompería ese orden ("9:00" >= "09:30").
	cases := []string{"9:00", "9:5", "09:5", " 09:00", "09:00 ", "24:00", "09:60", "0900", ""}
	for _, in := range cases {
		_, err := ParseClock(in)
		if !domain.IsCode(err, domain.CodeValidation) {
			t.Fatalf("ParseClock(%q) debería rechazarse con validación, no %v", in, err)
		}
	}
}
