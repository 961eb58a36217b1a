package model

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusConfirmed, StatusCheckedIn, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCheckedOut, false},
		{StatusCheckedIn, StatusCheckedOut, true},
		{StatusCheckedIn, StatusCancelled, true},
		{StatusCheckedIn, StatusConfirmed, false},
		{StatusCheckedOut, StatusConfirmed, false},
		{StatusCheckedOut, StatusCheckedIn, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCheckedIn, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []string{StatusCheckedOut, StatusCancelled} {
		if !IsTerminal(status) {
			t.Errorf("IsTerminal(%q) = false, want true", status)
		}
	}

	for _, status := range []string{StatusConfirmed, StatusCheckedIn} {
		if IsTerminal(status) {
			t.Errorf("IsTerminal(%q) = true, want false", status)
		}
	}

	if IsTerminal("Unknown") {
		t.Error("IsTerminal accepted an unknown status")
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two full nights", date("2025-10-26"), date("2025-10-28"), 2},
		{"single night", date("2025-10-26"), date("2025-10-27"), 1},
		{"partial day rounds up", date("2025-10-26"), date("2025-10-26").Add(30 * time.Hour), 2},
		{"sub-day stay charges one night", date("2025-10-26"), date("2025-10-26").Add(6 * time.Hour), 1},
		{"zero duration", date("2025-10-26"), date("2025-10-26"), 0},
		{"inverted range", date("2025-10-28"), date("2025-10-26"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nights(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("Nights(%v, %v) = %d, want %d", tt.checkIn, tt.checkOut, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]time.Time
		b    [2]time.Time
		want bool
	}{
		{
			name: "same range",
			a:    [2]time.Time{date("2025-10-26"), date("2025-10-28")},
			b:    [2]time.Time{date("2025-10-26"), date("2025-10-28")},
			want: true,
		},
		{
			name: "partial overlap",
			a:    [2]time.Time{date("2025-10-26"), date("2025-10-28")},
			b:    [2]time.Time{date("2025-10-27"), date("2025-10-30")},
			want: true,
		},
		{
			name: "contained range",
			a:    [2]time.Time{date("2025-10-26"), date("2025-10-30")},
			b:    [2]time.Time{date("2025-10-27"), date("2025-10-28")},
			want: true,
		},
		{
			name: "back to back is allowed",
			a:    [2]time.Time{date("2025-10-26"), date("2025-10-28")},
			b:    [2]time.Time{date("2025-10-28"), date("2025-10-30")},
			want: false,
		},
		{
			name: "disjoint ranges",
			a:    [2]time.Time{date("2025-10-26"), date("2025-10-28")},
			b:    [2]time.Time{date("2025-11-01"), date("2025-11-03")},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a[0], tt.a[1], tt.b[0], tt.b[1]); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}

			// Overlap is symmetric.
			if got := Overlaps(tt.b[0], tt.b[1], tt.a[0], tt.a[1]); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBooking_TotalAmount(t *testing.T) {
	booking := Booking{
		CheckIn:       date("2025-10-26"),
		CheckOut:      date("2025-10-28"),
		PricePerNight: 12000,
	}

	if got := booking.TotalAmount(); got != 24000 {
		t.Errorf("TotalAmount = %d, want 24000", got)
	}
}
