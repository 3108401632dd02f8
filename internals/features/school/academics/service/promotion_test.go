// file: internals/features/school/academics/service/promotion_test.go
package service

import "testing"

func TestNextLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		final     int
		wantNext  int
		wantGrad  bool
	}{
		{name: "naik satu tingkat", level: 7, final: 12, wantNext: 8, wantGrad: false},
		{name: "tingkat awal", level: 1, final: 12, wantNext: 2, wantGrad: false},
		{name: "satu sebelum akhir", level: 11, final: 12, wantNext: 12, wantGrad: false},
		{name: "tingkat akhir lulus", level: 12, final: 12, wantNext: 0, wantGrad: true},
		{name: "di atas akhir tetap lulus", level: 13, final: 12, wantNext: 0, wantGrad: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, grad := NextLevel(tt.level, tt.final)
			if next != tt.wantNext || grad != tt.wantGrad {
				t.Fatalf("NextLevel(%d, %d) = (%d, %v), want (%d, %v)",
					tt.level, tt.final, next, grad, tt.wantNext, tt.wantGrad)
			}
		})
	}
}

func TestNextClassName(t *testing.T) {
	tests := []struct {
		name     string
		oldName  string
		oldLevel int
		newLevel int
		want     string
	}{
		{name: "prefix angka diganti", oldName: "7A", oldLevel: 7, newLevel: 8, want: "8A"},
		{name: "dua digit", oldName: "10 IPA 1", oldLevel: 10, newLevel: 11, want: "11 IPA 1"},
		{name: "nama tanpa prefix tingkat", oldName: "Unggulan", oldLevel: 7, newLevel: 8, want: "8 Unggulan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextClassName(tt.oldName, tt.oldLevel, tt.newLevel)
			if got != tt.want {
				t.Fatalf("NextClassName(%q, %d, %d) = %q, want %q",
					tt.oldName, tt.oldLevel, tt.newLevel, got, tt.want)
			}
		})
	}
}
