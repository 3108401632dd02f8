// file: internals/features/school/marks/service/grading.go
package service

import "time"

/* =========================
   Grade band (pure)
   ========================= */

// GradeBand memetakan skor 0..100 ke band huruf. Batas bawah inklusif.
func GradeBand(score float64) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "E"
	}
}

/* =========================
   Entry locking (pure)
   ========================= */

// TermLocked: entri nilai terkunci mulai tepat di lock date (inklusif).
// lockAt nil berarti term tidak pernah terkunci.
func TermLocked(lockAt *time.Time, now time.Time) bool {
	if lockAt == nil {
		return false
	}
	return !now.Before(*lockAt)
}
