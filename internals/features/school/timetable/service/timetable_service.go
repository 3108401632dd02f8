// file: internals/features/school/timetable/service/timetable_service.go
package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	d "schoolku_backend/internals/features/school/timetable/dto"
	"schoolku_backend/internals/features/school/timetable/engine"
	m "schoolku_backend/internals/features/school/timetable/model"
)

// ErrConcurrentModification: store mendeteksi unique/serialization conflict
// saat commit. Retryable — retry milik caller, bukan service ini.
var ErrConcurrentModification = errors.New("jadwal sedang dimodifikasi bersamaan, silakan ulangi")

/* =========================
   Kontrak store
   ========================= */

// ScheduleStore: kolaborator persistence untuk engine. Semua read
// bersifat read-only; UpsertSchedule replace-or-insert atomik per dokumen.
type ScheduleStore interface {
	// FindSiblingSchedules: semua jadwal (hari, tahun ajaran) yang sama
	// milik kelas lain.
	FindSiblingSchedules(ctx context.Context, day, academicYear string, excludeClassID uuid.UUID) ([]m.DayScheduleModel, error)

	// FindOwnSchedule: jadwal satu kelas; nil kalau belum ada.
	FindOwnSchedule(ctx context.Context, classID uuid.UUID, day, academicYear string) (*m.DayScheduleModel, error)

	// FindSchedulesForDay: semua jadwal (hari, tahun ajaran) — dipakai
	// view gabungan per guru.
	FindSchedulesForDay(ctx context.Context, day, academicYear string) ([]m.DayScheduleModel, error)

	// UpsertSchedule: replace-or-insert keyed (class, day, year).
	// Wajib mengembalikan ErrConcurrentModification saat unique/
	// serialization conflict.
	UpsertSchedule(ctx context.Context, row *m.DayScheduleModel) error
}

/* =========================
   Service
   ========================= */

type TimetableService struct {
	Store ScheduleStore
}

func New(store ScheduleStore) *TimetableService {
	return &TimetableService{Store: store}
}

// SaveDaySchedule: alur lengkap save satu hari —
// cek intra-day → fetch siblings → cek cross-class → upsert atomik.
// Error konflik engine dikembalikan apa adanya (caller yang menerjemahkan
// ke 409); tidak ada partial write sebelum commit.
func (s *TimetableService) SaveDaySchedule(
	ctx context.Context,
	classID uuid.UUID,
	day, academicYear string,
	periods []engine.Period,
	docs []m.PeriodDoc,
) (*m.DayScheduleModel, error) {
	// 1) Validasi internal satu hari (tanpa I/O)
	if err := engine.CheckIntraDay(periods); err != nil {
		return nil, err
	}

	// 2) Ambil jadwal kelas lain (hari, tahun ajaran) yang sama
	rows, err := s.Store.FindSiblingSchedules(ctx, day, academicYear, classID)
	if err != nil {
		return nil, err
	}
	siblings := make([]engine.Sibling, 0, len(rows))
	for i := range rows {
		sibDocs, err := rows[i].Periods()
		if err != nil {
			return nil, err
		}
		sibPeriods, err := d.DocsToEngine(sibDocs)
		if err != nil {
			return nil, err
		}
		siblings = append(siblings, engine.Sibling{
			ClassID: rows[i].DayScheduleClassID,
			Periods: sibPeriods,
		})
	}

	// 3) Cek guru double-booked lintas kelas
	if err := engine.CheckCrossClass(periods, siblings); err != nil {
		return nil, err
	}

	// 4) Commit: satu upsert atomik, dokumen periode diganti utuh
	row := &m.DayScheduleModel{
		DayScheduleClassID:      classID,
		DayScheduleDayOfWeek:    day,
		DayScheduleAcademicYear: academicYear,
	}
	if err := row.SetPeriods(docs); err != nil {
		return nil, err
	}
	if err := s.Store.UpsertSchedule(ctx, row); err != nil {
		return nil, err
	}

	// Ambil ulang supaya caller dapat ID + timestamps hasil store
	stored, err := s.Store.FindOwnSchedule(ctx, classID, day, academicYear)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return row, nil
	}
	return stored, nil
}

// LiveStatus memproyeksikan periode berjalan & berikutnya untuk satu kelas
// pada offset menit nowMinutes. found=false kalau jadwalnya belum ada.
func (s *TimetableService) LiveStatus(
	ctx context.Context,
	classID uuid.UUID,
	day, academicYear string,
	nowMinutes int,
) (current, next *m.PeriodDoc, found bool, err error) {
	row, err := s.Store.FindOwnSchedule(ctx, classID, day, academicYear)
	if err != nil {
		return nil, nil, false, err
	}
	if row == nil {
		return nil, nil, false, nil
	}
	docs, err := row.Periods()
	if err != nil {
		return nil, nil, false, err
	}
	periods, err := d.DocsToEngine(docs)
	if err != nil {
		return nil, nil, false, err
	}

	status := engine.ProjectLive(periods, nowMinutes)
	byNumber := make(map[int]*m.PeriodDoc, len(docs))
	for i := range docs {
		byNumber[docs[i].PeriodNumber] = &docs[i]
	}
	if status.Current != nil {
		current = byNumber[status.Current.Number]
	}
	if status.Next != nil {
		next = byNumber[status.Next.Number]
	}
	return current, next, true, nil
}

/* =========================
   View gabungan per guru
   ========================= */

// TeacherPeriod: satu slot mengajar guru, plus kelasnya (hasil merge
// lintas kelas, urut waktu).
type TeacherPeriod struct {
	ClassID uuid.UUID   `json:"class_id"`
	Period  m.PeriodDoc `json:"period"`
}

// TeacherDaySchedule menggabungkan semua slot mengajar seorang guru pada
// (hari, tahun ajaran), diurutkan by start time. Merge dilakukan di sini
// supaya proyeksi live per guru tinggal memakai hasilnya.
func (s *TimetableService) TeacherDaySchedule(
	ctx context.Context,
	teacherID uuid.UUID,
	day, academicYear string,
) ([]TeacherPeriod, error) {
	rows, err := s.Store.FindSchedulesForDay(ctx, day, academicYear)
	if err != nil {
		return nil, err
	}

	var merged []TeacherPeriod
	for i := range rows {
		docs, err := rows[i].Periods()
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if doc.TeacherID == nil || *doc.TeacherID != teacherID {
				continue
			}
			merged = append(merged, TeacherPeriod{
				ClassID: rows[i].DayScheduleClassID,
				Period:  doc,
			})
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		a, _ := engine.ParseClock(merged[i].Period.StartTime)
		b, _ := engine.ParseClock(merged[j].Period.StartTime)
		return a < b
	})
	return merged, nil
}
