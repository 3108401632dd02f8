package engine

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func mustClock(t *testing.T, s string) int {
	t.Helper()
	m, err := ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return m
}

func teachingPeriod(t *testing.T, num int, start, end string, teacher uuid.UUID) Period {
	t.Helper()
	return Period{
		Number:    num,
		Start:     mustClock(t, start),
		End:       mustClock(t, end),
		Type:      PeriodClass,
		SubjectID: uuid.New(),
		TeacherID: teacher,
	}
}

func breakPeriod(t *testing.T, num int, start, end string) Period {
	t.Helper()
	return Period{
		Number: num,
		Start:  mustClock(t, start),
		End:    mustClock(t, end),
		Type:   PeriodBreak,
	}
}

func TestCheckIntraDay(t *testing.T) {
	tr := uuid.New()

	t.Run("no overlap passes", func(t *testing.T) {
		periods := []Period{
			teachingPeriod(t, 1, "08:00", "08:45", tr),
			breakPeriod(t, 2, "08:45", "09:00"),
			teachingPeriod(t, 3, "09:00", "09:45", tr),
		}
		if err := CheckIntraDay(periods); err != nil {
			t.Fatalf("CheckIntraDay() = %v, want nil", err)
		}
	})

	t.Run("back to back is not a conflict", func(t *testing.T) {
		periods := []Period{
			teachingPeriod(t, 1, "08:00", "08:45", tr),
			teachingPeriod(t, 2, "08:45", "09:30", tr),
		}
		if err := CheckIntraDay(periods); err != nil {
			t.Fatalf("CheckIntraDay() = %v, want nil", err)
		}
	})

	t.Run("overlapping pair rejected with both numbers", func(t *testing.T) {
		periods := []Period{
			teachingPeriod(t, 1, "08:00", "08:45", tr),
			teachingPeriod(t, 4, "08:30", "09:15", tr),
		}
		err := CheckIntraDay(periods)
		var conflict *IntraDayConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("CheckIntraDay() = %v, want *IntraDayConflictError", err)
		}
		if conflict.PeriodA != 1 || conflict.PeriodB != 4 {
			t.Errorf("conflict pair = (%d,%d), want (1,4)", conflict.PeriodA, conflict.PeriodB)
		}
	})

	t.Run("unsorted input still detected", func(t *testing.T) {
		periods := []Period{
			teachingPeriod(t, 3, "10:00", "10:45", tr),
			teachingPeriod(t, 1, "08:00", "08:45", tr),
			teachingPeriod(t, 2, "10:30", "11:15", tr),
		}
		err := CheckIntraDay(periods)
		var conflict *IntraDayConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("CheckIntraDay() = %v, want *IntraDayConflictError", err)
		}
	})

	t.Run("empty and single period pass", func(t *testing.T) {
		if err := CheckIntraDay(nil); err != nil {
			t.Errorf("CheckIntraDay(nil) = %v", err)
		}
		if err := CheckIntraDay([]Period{teachingPeriod(t, 1, "08:00", "08:45", tr)}); err != nil {
			t.Errorf("CheckIntraDay(single) = %v", err)
		}
	})
}

func TestCheckCrossClass(t *testing.T) {
	teacherT := uuid.New()
	otherTeacher := uuid.New()
	classA := uuid.New()

	siblings := []Sibling{
		{
			ClassID: classA,
			Periods: []Period{
				teachingPeriod(t, 1, "09:00", "09:45", teacherT),
			},
		},
	}

	t.Run("same teacher overlapping window rejected", func(t *testing.T) {
		proposed := []Period{teachingPeriod(t, 1, "09:15", "10:00", teacherT)}
		err := CheckCrossClass(proposed, siblings)
		var conflict *CrossClassConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("CheckCrossClass() = %v, want *CrossClassConflictError", err)
		}
		if conflict.TeacherID != teacherT {
			t.Errorf("conflict.TeacherID = %s, want %s", conflict.TeacherID, teacherT)
		}
		if conflict.ClassID != classA {
			t.Errorf("conflict.ClassID = %s, want %s", conflict.ClassID, classA)
		}
		if FormatClock(conflict.Start) != "09:00" || FormatClock(conflict.End) != "09:45" {
			t.Errorf("conflict window = %s-%s, want 09:00-09:45",
				FormatClock(conflict.Start), FormatClock(conflict.End))
		}
	})

	t.Run("same teacher back to back accepted", func(t *testing.T) {
		proposed := []Period{teachingPeriod(t, 1, "09:45", "10:30", teacherT)}
		if err := CheckCrossClass(proposed, siblings); err != nil {
			t.Fatalf("CheckCrossClass() = %v, want nil", err)
		}
	})

	t.Run("different teacher same window accepted", func(t *testing.T) {
		proposed := []Period{teachingPeriod(t, 1, "09:00", "09:45", otherTeacher)}
		if err := CheckCrossClass(proposed, siblings); err != nil {
			t.Fatalf("CheckCrossClass() = %v, want nil", err)
		}
	})

	t.Run("non teaching periods never conflict", func(t *testing.T) {
		sibs := []Sibling{
			{
				ClassID: classA,
				Periods: []Period{breakPeriod(t, 2, "10:00", "10:15")},
			},
		}
		proposed := []Period{breakPeriod(t, 2, "10:00", "10:15")}
		if err := CheckCrossClass(proposed, sibs); err != nil {
			t.Fatalf("CheckCrossClass() = %v, want nil", err)
		}
	})

	t.Run("no siblings accepted", func(t *testing.T) {
		proposed := []Period{teachingPeriod(t, 1, "09:00", "09:45", teacherT)}
		if err := CheckCrossClass(proposed, nil); err != nil {
			t.Fatalf("CheckCrossClass() = %v, want nil", err)
		}
	})
}
