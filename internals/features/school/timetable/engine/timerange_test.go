package engine

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "midnight", in: "00:00", want: 0},
		{name: "morning", in: "08:45", want: 525},
		{name: "last minute", in: "23:59", want: 1439},
		{name: "spaces trimmed", in: " 09:15 ", want: 555},
		{name: "hour out of range", in: "25:99", wantErr: true},
		{name: "minute out of range", in: "10:60", wantErr: true},
		{name: "negative hour", in: "-1:30", wantErr: true},
		{name: "one field", in: "0830", wantErr: true},
		{name: "three fields", in: "08:30:00", wantErr: true},
		{name: "non numeric", in: "ab:cd", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) = %d, want error", tt.in, got)
				}
				var mErr *MalformedTimeError
				if !errors.As(err, &mErr) {
					t.Errorf("ParseClock(%q) error type = %T, want *MalformedTimeError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{525, "08:45"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd int
		want                           bool
	}{
		{name: "partial overlap", aStart: 540, aEnd: 585, bStart: 555, bEnd: 600, want: true},
		{name: "b inside a", aStart: 540, aEnd: 600, bStart: 550, bEnd: 560, want: true},
		{name: "identical", aStart: 540, aEnd: 585, bStart: 540, bEnd: 585, want: true},
		{name: "back to back not overlap", aStart: 480, aEnd: 525, bStart: 525, bEnd: 570, want: false},
		{name: "back to back reversed", aStart: 525, aEnd: 570, bStart: 480, bEnd: 525, want: false},
		{name: "disjoint", aStart: 480, aEnd: 500, bStart: 600, bEnd: 660, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// simetris
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps swapped = %v, want %v", got, tt.want)
			}
		})
	}
}
