// file: internals/features/school/timetable/engine/conflicts.go
package engine

import (
	"fmt"

	"github.com/google/uuid"
)

/* =========================
   Tipe periode
   ========================= */

type PeriodType string

const (
	PeriodClass    PeriodType = "class"
	PeriodBreak    PeriodType = "break"
	PeriodAssembly PeriodType = "assembly"
	PeriodOther    PeriodType = "other"
)

func ValidPeriodType(t PeriodType) bool {
	switch t {
	case PeriodClass, PeriodBreak, PeriodAssembly, PeriodOther:
		return true
	}
	return false
}

// Period: satu slot dalam jadwal harian, sudah dalam offset menit.
// SubjectID/TeacherID hanya terisi untuk tipe class.
type Period struct {
	Number    int
	Start     int
	End       int
	Type      PeriodType
	SubjectID uuid.UUID
	TeacherID uuid.UUID
}

// Teaching: hanya periode class yang ikut cek bentrok guru lintas kelas.
func (p Period) Teaching() bool { return p.Type == PeriodClass }

/* =========================
   Error konflik
   ========================= */

// IntraDayConflictError: dua periode dalam satu hari saling beririsan.
type IntraDayConflictError struct {
	PeriodA int
	PeriodB int
	Start   int // awal irisan jendela yang bentrok (periode A)
	End     int
}

func (e *IntraDayConflictError) Error() string {
	return fmt.Sprintf("periode %d dan %d bentrok dalam satu hari (%s-%s)",
		e.PeriodA, e.PeriodB, FormatClock(e.Start), FormatClock(e.End))
}

// CrossClassConflictError: guru sudah mengajar di kelas lain pada jendela
// waktu yang beririsan.
type CrossClassConflictError struct {
	TeacherID uuid.UUID
	ClassID   uuid.UUID // kelas rival yang sudah pegang gurunya
	Start     int       // jendela periode rival
	End       int
}

func (e *CrossClassConflictError) Error() string {
	return fmt.Sprintf("guru %s sudah mengajar di kelas %s pada %s-%s",
		e.TeacherID, e.ClassID, FormatClock(e.Start), FormatClock(e.End))
}

/* =========================
   Intra-day checker
   ========================= */

// CheckIntraDay menolak daftar periode yang saling beririsan dalam satu
// hari. Scan pairwise O(n²) — input tidak diasumsikan terurut, jumlah
// periode per hari kecil.
func CheckIntraDay(periods []Period) error {
	for i := 0; i < len(periods); i++ {
		for j := i + 1; j < len(periods); j++ {
			a, b := periods[i], periods[j]
			if Overlaps(a.Start, a.End, b.Start, b.End) {
				return &IntraDayConflictError{
					PeriodA: a.Number,
					PeriodB: b.Number,
					Start:   a.Start,
					End:     a.End,
				}
			}
		}
	}
	return nil
}

/* =========================
   Cross-class checker
   ========================= */

// Sibling: jadwal hari yang sama milik kelas lain (hasil fetch store).
type Sibling struct {
	ClassID uuid.UUID
	Periods []Period
}

// CheckCrossClass menolak bila ada guru yang double-booked terhadap jadwal
// kelas lain di (hari, tahun ajaran) yang sama. Periode non-class dilewati
// (tidak membawa guru). Berhenti di konflik pertama.
func CheckCrossClass(proposed []Period, siblings []Sibling) error {
	for _, p := range proposed {
		if !p.Teaching() {
			continue
		}
		for _, sib := range siblings {
			for _, sp := range sib.Periods {
				if !sp.Teaching() || sp.TeacherID != p.TeacherID {
					continue
				}
				if Overlaps(p.Start, p.End, sp.Start, sp.End) {
					return &CrossClassConflictError{
						TeacherID: p.TeacherID,
						ClassID:   sib.ClassID,
						Start:     sp.Start,
						End:       sp.End,
					}
				}
			}
		}
	}
	return nil
}
