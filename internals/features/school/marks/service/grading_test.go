// file: internals/features/school/marks/service/grading_test.go
package service

import (
	"testing"
	"time"
)

func TestGradeBand(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{name: "sempurna", score: 100, want: "A"},
		{name: "batas bawah A", score: 85, want: "A"},
		{name: "tepat di bawah A", score: 84.99, want: "B"},
		{name: "batas bawah B", score: 70, want: "B"},
		{name: "batas bawah C", score: 55, want: "C"},
		{name: "batas bawah D", score: 40, want: "D"},
		{name: "tepat di bawah D", score: 39.99, want: "E"},
		{name: "nol", score: 0, want: "E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradeBand(tt.score); got != tt.want {
				t.Fatalf("GradeBand(%.2f) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestTermLocked(t *testing.T) {
	lock := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		lockAt *time.Time
		now    time.Time
		want   bool
	}{
		{name: "tanpa lock date", lockAt: nil, now: lock.Add(24 * time.Hour), want: false},
		{name: "sebelum lock", lockAt: &lock, now: lock.Add(-time.Second), want: false},
		{name: "tepat di lock", lockAt: &lock, now: lock, want: true},
		{name: "setelah lock", lockAt: &lock, now: lock.Add(24 * time.Hour), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TermLocked(tt.lockAt, tt.now); got != tt.want {
				t.Fatalf("TermLocked = %v, want %v", got, tt.want)
			}
		})
	}
}
