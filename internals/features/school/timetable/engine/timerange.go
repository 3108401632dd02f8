// file: internals/features/school/timetable/engine/timerange.go
//
// Engine konsistensi jadwal. Semua fungsi di package ini pure: tidak
// menyentuh DB, tidak baca clock sendiri. Waktu dinyatakan sebagai offset
// menit sejak 00:00, interval selalu half-open [start, end).
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedTimeError: string jam tidak berbentuk "HH:MM" atau di luar
// rentang 00:00..23:59.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("waktu %q tidak valid (format HH:MM, 00:00..23:59)", e.Value)
}

// ParseClock mengubah "HH:MM" menjadi offset menit. Validasi ketat:
// harus tepat dua field numerik, jam 0..23, menit 0..59.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, &MalformedTimeError{Value: s}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &MalformedTimeError{Value: s}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &MalformedTimeError{Value: s}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, &MalformedTimeError{Value: s}
	}
	return h*60 + m, nil
}

// FormatClock kebalikan ParseClock, untuk pesan error & descriptor konflik.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps: true jika [aStart,aEnd) dan [bStart,bEnd) beririsan.
// Periode back-to-back (aEnd == bStart) TIDAK dianggap bentrok.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
