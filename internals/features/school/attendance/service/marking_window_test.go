// file: internals/features/school/attendance/service/marking_window_test.go
package service

import (
	"testing"
	"time"
)

func TestWithinMarkingWindow(t *testing.T) {
	opened := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	window := 30 * time.Minute

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "tepat saat dibuka", at: opened, want: true},
		{name: "di tengah jendela", at: opened.Add(15 * time.Minute), want: true},
		{name: "sedetik sebelum tutup", at: opened.Add(window - time.Second), want: true},
		{name: "tepat di batas tutup", at: opened.Add(window), want: false},
		{name: "setelah tutup", at: opened.Add(45 * time.Minute), want: false},
		{name: "sebelum dibuka", at: opened.Add(-time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinMarkingWindow(opened, window, tt.at); got != tt.want {
				t.Fatalf("WithinMarkingWindow(at=%s) = %v, want %v",
					tt.at.Format("15:04:05"), got, tt.want)
			}
		})
	}
}

func TestWithinMarkingWindowDefaultWindow(t *testing.T) {
	opened := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	// window <= 0 pakai default 30 menit
	if !WithinMarkingWindow(opened, 0, opened.Add(29*time.Minute)) {
		t.Fatal("29 menit setelah buka harus masih di jendela default")
	}
	if WithinMarkingWindow(opened, 0, opened.Add(30*time.Minute)) {
		t.Fatal("30 menit setelah buka harus sudah di luar jendela default")
	}
}
