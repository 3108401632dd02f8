// file: internals/features/school/attendance/service/marking_window.go
package service

import "time"

// DefaultMarkingWindowMinutes dipakai bila sesi dibuka tanpa window eksplisit.
const DefaultMarkingWindowMinutes = 30

// WithinMarkingWindow menentukan apakah waktu `at` masih di dalam jendela
// pengisian absensi [openedAt, openedAt+window). Batas kiri inklusif,
// batas kanan eksklusif: tepat di akhir jendela sudah terlambat.
func WithinMarkingWindow(openedAt time.Time, window time.Duration, at time.Time) bool {
	if window <= 0 {
		window = DefaultMarkingWindowMinutes * time.Minute
	}
	return !at.Before(openedAt) && at.Before(openedAt.Add(window))
}
