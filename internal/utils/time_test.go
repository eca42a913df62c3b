package utils

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	got := DateKey(time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC))
	if got != "2024-03-07" {
		t.Errorf("DateKey() = %q, want %q", got, "2024-03-07")
	}
}

func TestNextMidnight(t *testing.T) {
	now := time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC)
	got := NextMidnight(now)
	want := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextMidnight() = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same day different times",
			a:    time.Date(2024, 3, 7, 0, 0, 1, 0, time.UTC),
			b:    time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC),
			b:    time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same day-of-month different months",
			a:    time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 4, 7, 12, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2024, 3, 7, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 7, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "next day ignores time of day",
			a:    time.Date(2024, 3, 7, 23, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 8, 1, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "backwards is negative",
			a:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
			want: -3,
		},
		{
			name: "across month boundary",
			a:    time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateClockFormat(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:70", false},
		{"9:30am", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateClockFormat(tt.value); got != tt.want {
			t.Errorf("ValidateClockFormat(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-07", time.UTC)
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	want := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}

	if _, err := ParseDate("07/03/2024", time.UTC); err == nil {
		t.Error("ParseDate() accepted an invalid format")
	}
}
