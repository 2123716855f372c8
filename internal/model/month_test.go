package model

import (
	"testing"
	"time"
)

func TestIsMonth(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"january", true},
		{"december", true},
		{"February", false}, // canonical keys are lowercase
		{"all", false},
		{"", false},
		{"jan", false},
	}
	for _, tt := range tests {
		if got := IsMonth(tt.in); got != tt.want {
			t.Errorf("IsMonth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"january", 31},
		{"february", 28}, // fixed table, never leap-adjusted
		{"april", 30},
		{"december", 31},
		{"notamonth", 30},
	}
	for _, tt := range tests {
		if got := MonthDays(tt.month); got != tt.want {
			t.Errorf("MonthDays(%q) = %d, want %d", tt.month, got, tt.want)
		}
	}
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	if got := CurrentMonth(now); got != "august" {
		t.Errorf("CurrentMonth = %q, want august", got)
	}
}

func TestDisplayMonth(t *testing.T) {
	if got := DisplayMonth("january"); got != "January" {
		t.Errorf("DisplayMonth(january) = %q", got)
	}
}
