package cli

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		v        float64
		currency string
		want     string
	}{
		{0, "₹", "₹0.00"},
		{30, "₹", "₹30.00"},
		{1234.5, "₹", "₹1,234.50"},
		{1234567.891, "$", "$1,234,567.89"},
		{-45.5, "₹", "-₹45.50"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.v, tt.currency); got != tt.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", tt.v, tt.currency, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-12345, "-12,345"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("zero date = %q, want -", got)
	}
	d := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-01-05" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"hello world", 8, "hello w…"},
		{"चाय का खर्च", 6, "चाय क…"},
		{"ab", 1, "a"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
