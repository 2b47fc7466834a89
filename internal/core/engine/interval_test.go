package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		want    int
		wantErr bool
	}{
		{
			name:  "ten full days",
			start: date(2024, time.January, 10),
			end:   date(2024, time.January, 20),
			want:  10,
		},
		{
			name:  "partial day rounds up",
			start: date(2024, time.January, 10),
			end:   time.Date(2024, time.January, 10, 6, 0, 0, 0, time.UTC),
			want:  1,
		},
		{
			name:  "zero span",
			start: date(2024, time.March, 1),
			end:   date(2024, time.March, 1),
			want:  0,
		},
		{
			name:  "across leap day",
			start: date(2024, time.February, 28),
			end:   date(2024, time.March, 1),
			want:  2,
		},
		{
			name:    "reversed range clamps to zero",
			start:   date(2024, time.January, 20),
			end:     date(2024, time.January, 10),
			want:    0,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DurationDays(tc.start, tc.end)
			if got != tc.want {
				t.Errorf("DurationDays = %d, want %d", got, tc.want)
			}
			if tc.wantErr && !errors.Is(err, domain.ErrReversedRange) {
				t.Errorf("expected ErrReversedRange, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestContainsInstant(t *testing.T) {
	start := date(2024, time.January, 10)
	end := date(2024, time.January, 20)

	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"before start", date(2024, time.January, 9), false},
		{"on start", start, true},
		{"inside", date(2024, time.January, 15), true},
		{"on end", end, true},
		{"after end", date(2024, time.January, 21), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsInstant(start, end, tc.instant); got != tc.want {
				t.Errorf("ContainsInstant(%v) = %v, want %v", tc.instant, got, tc.want)
			}
		})
	}
}

func TestProgressFraction(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.January, 11)

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"before start clamps to zero", date(2023, time.December, 25), 0},
		{"at start", start, 0},
		{"midway", date(2024, time.January, 6), 0.5},
		{"at end", end, 1},
		{"after end clamps to one", date(2024, time.February, 1), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ProgressFraction(start, end, tc.now); got != tc.want {
				t.Errorf("ProgressFraction(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestProgressFractionZeroLengthRange(t *testing.T) {
	d := date(2024, time.June, 1)
	if got := ProgressFraction(d, d, d); got != 1.0 {
		t.Errorf("zero-length range should report 1.0, got %v", got)
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, time.May, 7, 17, 45, 3, 12, time.FixedZone("CST", -6*3600))
	got := DateOnly(in)
	want := date(2024, time.May, 7)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}
}
