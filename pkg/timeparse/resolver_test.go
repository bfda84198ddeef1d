package timeparse_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/timeparse"
)

// Friday, September 26, 2025, 14:00 in Melbourne (AEST, +10:00).
func melbourneNow(t *testing.T) (time.Time, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		t.Fatalf("load Australia/Melbourne: %v", err)
	}
	return time.Date(2025, 9, 26, 14, 0, 0, 0, loc), loc
}

func TestNewResolver(t *testing.T) {
	if _, err := timeparse.NewResolver("Australia/Melbourne"); err != nil {
		t.Fatalf("unexpected error for valid zone: %v", err)
	}

	_, err := timeparse.NewResolver("Mars/Phobos")
	if err == nil {
		t.Fatal("expected error for unknown zone")
	}
	var tzErr *timeparse.UnknownTimeZoneError
	if !errors.As(err, &tzErr) {
		t.Fatalf("expected UnknownTimeZoneError, got %T", err)
	}
	if tzErr.Zone != "Mars/Phobos" {
		t.Errorf("error zone = %q, want %q", tzErr.Zone, "Mars/Phobos")
	}
}

func TestResolveInstant(t *testing.T) {
	now, loc := melbourneNow(t)
	r, err := timeparse.NewResolver("Australia/Melbourne")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "Tomorrow with clock time",
			input: "tomorrow 3pm",
			want:  time.Date(2025, 9, 27, 15, 0, 0, 0, loc),
		},
		{
			name:  "Relative hours anchor to now",
			input: "in 2 hours",
			want:  time.Date(2025, 9, 26, 16, 0, 0, 0, loc),
		},
		{
			name:  "Bare weekday resolves forward",
			input: "monday 2pm",
			want:  time.Date(2025, 9, 29, 14, 0, 0, 0, loc),
		},
		{
			name:  "Next weekday does not double-advance",
			input: "next monday 2pm",
			want:  time.Date(2025, 9, 29, 14, 0, 0, 0, loc),
		},
		{
			name:  "Month name later today",
			input: "3pm september 26",
			want:  time.Date(2025, 9, 26, 15, 0, 0, 0, loc),
		},
		{
			name:  "Bare clock still ahead stays today",
			input: "10pm",
			want:  time.Date(2025, 9, 26, 22, 0, 0, 0, loc),
		},
		{
			name:  "Bare clock barely ahead stays today",
			input: "3pm",
			want:  time.Date(2025, 9, 26, 15, 0, 0, 0, loc),
		},
		{
			name:  "Bare clock already past moves to tomorrow",
			input: "1pm",
			want:  time.Date(2025, 9, 27, 13, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveInstant(tt.input, now)
			if err != nil {
				t.Fatalf("ResolveInstant(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ResolveInstant(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.Location() != r.Location() {
				t.Errorf("ResolveInstant(%q) zone = %v, want %v", tt.input, got.Location(), r.Location())
			}
		})
	}
}

func TestResolveInstantSameWeekday(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		t.Fatalf("load Australia/Melbourne: %v", err)
	}
	r, _ := timeparse.NewResolver("Australia/Melbourne")

	t.Run("Named time still ahead means later today", func(t *testing.T) {
		// Friday morning, one minute before the named time.
		now := time.Date(2025, 10, 3, 9, 59, 0, 0, loc)
		got, err := r.ResolveInstant("friday 10am", now)
		if err != nil {
			t.Fatalf("ResolveInstant: %v", err)
		}
		want := time.Date(2025, 10, 3, 10, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("ResolveInstant(friday 10am) = %v, want %v", got, want)
		}
	})

	t.Run("Named time just past means next week", func(t *testing.T) {
		now := time.Date(2025, 10, 3, 10, 1, 0, 0, loc)
		got, err := r.ResolveInstant("friday 10am", now)
		if err != nil {
			t.Fatalf("ResolveInstant: %v", err)
		}
		want := time.Date(2025, 10, 10, 10, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("ResolveInstant(friday 10am) = %v, want %v", got, want)
		}
	})
}

func TestResolveInstantUnparseable(t *testing.T) {
	now, _ := melbourneNow(t)
	r, _ := timeparse.NewResolver("Australia/Melbourne")

	for _, input := range []string{"", "   ", "the heat death of the universe"} {
		_, err := r.ResolveInstant(input, now)
		if err == nil {
			t.Errorf("ResolveInstant(%q): expected error", input)
			continue
		}
		var parseErr *timeparse.UnparseableExpressionError
		if !errors.As(err, &parseErr) {
			t.Errorf("ResolveInstant(%q): expected UnparseableExpressionError, got %T", input, err)
		}
	}
}

func TestResolveInstantZoneOffset(t *testing.T) {
	now, _ := melbourneNow(t)
	r, _ := timeparse.NewResolver("Australia/Melbourne")

	got, err := r.ResolveInstant("tomorrow 3pm", now)
	if err != nil {
		t.Fatalf("ResolveInstant: %v", err)
	}
	if offset := got.Format("-07:00"); offset != "+10:00" {
		t.Errorf("offset = %s, want +10:00 (AEST before October DST switch)", offset)
	}
}
