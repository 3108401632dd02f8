package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/timetable/engine"
	m "schoolku_backend/internals/features/school/timetable/model"
)

/* =========================
   Fake store in-memory
   ========================= */

type scheduleKey struct {
	classID uuid.UUID
	day     string
	year    string
}

type fakeStore struct {
	rows    map[scheduleKey]*m.DayScheduleModel
	upserts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[scheduleKey]*m.DayScheduleModel{}}
}

func (f *fakeStore) FindSiblingSchedules(_ context.Context, day, year string, exclude uuid.UUID) ([]m.DayScheduleModel, error) {
	var out []m.DayScheduleModel
	for k, v := range f.rows {
		if k.day == day && k.year == year && k.classID != exclude {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeStore) FindOwnSchedule(_ context.Context, classID uuid.UUID, day, year string) (*m.DayScheduleModel, error) {
	if v, ok := f.rows[scheduleKey{classID, day, year}]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStore) FindSchedulesForDay(_ context.Context, day, year string) ([]m.DayScheduleModel, error) {
	var out []m.DayScheduleModel
	for k, v := range f.rows {
		if k.day == day && k.year == year {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeStore) UpsertSchedule(_ context.Context, row *m.DayScheduleModel) error {
	f.upserts++
	key := scheduleKey{row.DayScheduleClassID, row.DayScheduleDayOfWeek, row.DayScheduleAcademicYear}
	if existing, ok := f.rows[key]; ok {
		// replace-or-insert: dokumen periode diganti utuh, ID tetap
		existing.DaySchedulePeriods = row.DaySchedulePeriods
		return nil
	}
	row.DayScheduleID = uuid.New()
	cp := *row
	f.rows[key] = &cp
	return nil
}

/* =========================
   Helpers fixture
   ========================= */

const year = "2024-2025"

func buildPeriods(t *testing.T, teacher uuid.UUID, windows [][2]string) ([]engine.Period, []m.PeriodDoc) {
	t.Helper()
	subject := uuid.New()
	var eng []engine.Period
	var docs []m.PeriodDoc
	for i, w := range windows {
		start, err := engine.ParseClock(w[0])
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", w[0], err)
		}
		end, err := engine.ParseClock(w[1])
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", w[1], err)
		}
		eng = append(eng, engine.Period{
			Number: i + 1, Start: start, End: end,
			Type: engine.PeriodClass, SubjectID: subject, TeacherID: teacher,
		})
		tcopy := teacher
		scopy := subject
		docs = append(docs, m.PeriodDoc{
			PeriodNumber: i + 1, StartTime: w[0], EndTime: w[1],
			PeriodType: "class", SubjectID: &scopy, TeacherID: &tcopy,
		})
	}
	return eng, docs
}

/* =========================
   Tests
   ========================= */

func TestSaveDaySchedule_CrossClass(t *testing.T) {
	ctx := context.Background()
	teacherT := uuid.New()
	classA := uuid.New()
	classB := uuid.New()

	store := newFakeStore()
	svc := New(store)

	// Kelas A pegang guru T di 09:00-09:45 Senin
	engA, docsA := buildPeriods(t, teacherT, [][2]string{{"09:00", "09:45"}})
	if _, err := svc.SaveDaySchedule(ctx, classA, "monday", year, engA, docsA); err != nil {
		t.Fatalf("save kelas A: %v", err)
	}

	t.Run("overlapping teacher rejected naming rival class", func(t *testing.T) {
		engB, docsB := buildPeriods(t, teacherT, [][2]string{{"09:15", "10:00"}})
		_, err := svc.SaveDaySchedule(ctx, classB, "monday", year, engB, docsB)
		var conflict *engine.CrossClassConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("err = %v, want *CrossClassConflictError", err)
		}
		if conflict.TeacherID != teacherT || conflict.ClassID != classA {
			t.Errorf("conflict = teacher %s class %s, want teacher %s class %s",
				conflict.TeacherID, conflict.ClassID, teacherT, classA)
		}
		// tidak ada partial write
		if row, _ := store.FindOwnSchedule(ctx, classB, "monday", year); row != nil {
			t.Error("jadwal kelas B ikut tersimpan padahal konflik")
		}
	})

	t.Run("back to back teacher accepted", func(t *testing.T) {
		engB, docsB := buildPeriods(t, teacherT, [][2]string{{"09:45", "10:30"}})
		if _, err := svc.SaveDaySchedule(ctx, classB, "monday", year, engB, docsB); err != nil {
			t.Fatalf("save kelas B: %v", err)
		}
	})

	t.Run("same teacher other day accepted", func(t *testing.T) {
		engC, docsC := buildPeriods(t, teacherT, [][2]string{{"09:00", "09:45"}})
		if _, err := svc.SaveDaySchedule(ctx, uuid.New(), "tuesday", year, engC, docsC); err != nil {
			t.Fatalf("save hari lain: %v", err)
		}
	})
}

func TestSaveDaySchedule_IntraDayRejectedBeforeFetch(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := New(store)

	teacher := uuid.New()
	eng, docs := buildPeriods(t, teacher, [][2]string{{"08:00", "08:45"}, {"08:30", "09:15"}})
	_, err := svc.SaveDaySchedule(ctx, uuid.New(), "monday", year, eng, docs)
	var conflict *engine.IntraDayConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want *IntraDayConflictError", err)
	}
	if store.upserts != 0 {
		t.Errorf("upserts = %d, want 0 (tidak boleh ada write)", store.upserts)
	}
}

func TestSaveDaySchedule_UpsertSemantics(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := New(store)

	classID := uuid.New()
	teacher := uuid.New()

	eng1, docs1 := buildPeriods(t, teacher, [][2]string{{"08:00", "08:45"}, {"08:45", "09:30"}})
	first, err := svc.SaveDaySchedule(ctx, classID, "monday", year, eng1, docs1)
	if err != nil {
		t.Fatalf("save pertama: %v", err)
	}

	t.Run("idempotent under identical input", func(t *testing.T) {
		again, err := svc.SaveDaySchedule(ctx, classID, "monday", year, eng1, docs1)
		if err != nil {
			t.Fatalf("save ulang: %v", err)
		}
		if again.DayScheduleID != first.DayScheduleID {
			t.Errorf("ID berubah setelah save ulang: %s → %s", first.DayScheduleID, again.DayScheduleID)
		}
		if len(store.rows) != 1 {
			t.Errorf("rows = %d, want 1 (bukan duplikat dokumen)", len(store.rows))
		}
	})

	t.Run("resave fully replaces periods", func(t *testing.T) {
		eng2, docs2 := buildPeriods(t, teacher, [][2]string{{"10:00", "10:45"}})
		stored, err := svc.SaveDaySchedule(ctx, classID, "monday", year, eng2, docs2)
		if err != nil {
			t.Fatalf("save pengganti: %v", err)
		}
		got, err := stored.Periods()
		if err != nil {
			t.Fatalf("decode periods: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("periods = %d, want 1 (replace utuh, tanpa sisa lama)", len(got))
		}
		if got[0].StartTime != "10:00" || got[0].EndTime != "10:45" {
			t.Errorf("period = %s-%s, want 10:00-10:45", got[0].StartTime, got[0].EndTime)
		}
	})
}

func TestLiveStatus(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := New(store)

	classID := uuid.New()
	teacher := uuid.New()
	eng, docs := buildPeriods(t, teacher, [][2]string{
		{"08:00", "08:45"}, {"08:45", "09:30"}, {"09:30", "10:15"},
	})
	if _, err := svc.SaveDaySchedule(ctx, classID, "monday", year, eng, docs); err != nil {
		t.Fatalf("save: %v", err)
	}

	at := func(s string) int {
		v, err := engine.ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		return v
	}

	t.Run("mid second period", func(t *testing.T) {
		current, next, found, err := svc.LiveStatus(ctx, classID, "monday", year, at("09:00"))
		if err != nil || !found {
			t.Fatalf("LiveStatus: found=%v err=%v", found, err)
		}
		if current == nil || current.PeriodNumber != 2 {
			t.Errorf("current = %+v, want periode 2", current)
		}
		if next == nil || next.PeriodNumber != 3 {
			t.Errorf("next = %+v, want periode 3", next)
		}
	})

	t.Run("schedule absent", func(t *testing.T) {
		_, _, found, err := svc.LiveStatus(ctx, uuid.New(), "monday", year, at("09:00"))
		if err != nil {
			t.Fatalf("LiveStatus: %v", err)
		}
		if found {
			t.Error("found = true untuk kelas tanpa jadwal")
		}
	})
}

func TestTeacherDaySchedule(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := New(store)

	teacher := uuid.New()
	classA := uuid.New()
	classB := uuid.New()

	engA, docsA := buildPeriods(t, teacher, [][2]string{{"10:00", "10:45"}})
	if _, err := svc.SaveDaySchedule(ctx, classA, "monday", year, engA, docsA); err != nil {
		t.Fatalf("save A: %v", err)
	}
	engB, docsB := buildPeriods(t, teacher, [][2]string{{"08:00", "08:45"}})
	if _, err := svc.SaveDaySchedule(ctx, classB, "monday", year, engB, docsB); err != nil {
		t.Fatalf("save B: %v", err)
	}

	merged, err := svc.TeacherDaySchedule(ctx, teacher, "monday", year)
	if err != nil {
		t.Fatalf("TeacherDaySchedule: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("merged = %d slot, want 2", len(merged))
	}
	// urut by start time
	if merged[0].Period.StartTime != "08:00" || merged[1].Period.StartTime != "10:00" {
		t.Errorf("urutan salah: %s lalu %s", merged[0].Period.StartTime, merged[1].Period.StartTime)
	}
	if merged[0].ClassID != classB {
		t.Errorf("slot pertama kelas %s, want %s", merged[0].ClassID, classB)
	}
}
