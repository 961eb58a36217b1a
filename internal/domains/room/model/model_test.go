package model

import "testing"

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{StatusAvailable, StatusOccupied},
		{StatusOccupied, StatusCleaning},
		{StatusCleaning, StatusMaintenance},
		{StatusMaintenance, StatusAvailable},
	}

	for _, tt := range tests {
		got, ok := NextStatus(tt.current)
		if !ok {
			t.Fatalf("NextStatus(%q) reported unknown status", tt.current)
		}

		if got != tt.want {
			t.Errorf("NextStatus(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestNextStatus_FullCycleReturnsToStart(t *testing.T) {
	status := StatusAvailable

	for range 4 {
		next, ok := NextStatus(status)
		if !ok {
			t.Fatalf("NextStatus(%q) reported unknown status", status)
		}

		status = next
	}

	if status != StatusAvailable {
		t.Errorf("four advances from %q ended at %q, want %q", StatusAvailable, status, StatusAvailable)
	}
}

func TestNextStatus_Unknown(t *testing.T) {
	if _, ok := NextStatus("Demolished"); ok {
		t.Error("NextStatus accepted an unknown status")
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance} {
		if !IsValidStatus(status) {
			t.Errorf("IsValidStatus(%q) = false, want true", status)
		}
	}

	if IsValidStatus("Demolished") {
		t.Error("IsValidStatus accepted an unknown status")
	}
}
