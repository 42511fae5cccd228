package ui

import (
	"testing"
	"time"
)

func TestFormatDurationShort(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"seconds", 45 * time.Second, "45s"},
		{"minutes", 5 * time.Minute, "5m"},
		{"hours", 3 * time.Hour, "3h"},
		{"days", 49 * time.Hour, "2d"},
		{"negative clamps", -time.Minute, "0s"},
		{"subsecond truncates", 300 * time.Millisecond, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDurationShort(tt.duration); got != tt.want {
				t.Errorf("FormatDurationShort(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{"recent", now.Add(-90 * time.Second), "1m ago"},
		{"days", now.Add(-72 * time.Hour), "3d ago"},
		{"zero time", time.Time{}, "-"},
		{"future", now.Add(time.Hour), "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimeAgo(tt.then, now); got != tt.want {
				t.Errorf("FormatTimeAgo() = %q, want %q", got, tt.want)
			}
		})
	}
}
