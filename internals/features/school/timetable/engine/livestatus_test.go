package engine

import "testing"

func TestProjectLive(t *testing.T) {
	day := []Period{
		{Number: 1, Start: 480, End: 525, Type: PeriodClass},  // 08:00-08:45
		{Number: 2, Start: 525, End: 570, Type: PeriodClass},  // 08:45-09:30
		{Number: 3, Start: 570, End: 615, Type: PeriodClass},  // 09:30-10:15
	}

	tests := []struct {
		name        string
		at          string
		wantCurrent int // 0 = absent
		wantNext    int
	}{
		{name: "mid second period", at: "09:00", wantCurrent: 2, wantNext: 3},
		{name: "before school", at: "07:00", wantCurrent: 0, wantNext: 1},
		{name: "after school", at: "23:00", wantCurrent: 0, wantNext: 0},
		{name: "boundary start is current", at: "08:00", wantCurrent: 1, wantNext: 2},
		{name: "boundary end rolls to next", at: "08:45", wantCurrent: 2, wantNext: 3},
		{name: "last period has no next", at: "10:00", wantCurrent: 3, wantNext: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectLive(day, mustClock(t, tt.at))
			checkPeriod(t, "current", got.Current, tt.wantCurrent)
			checkPeriod(t, "next", got.Next, tt.wantNext)
		})
	}

	t.Run("unsorted input", func(t *testing.T) {
		shuffled := []Period{day[2], day[0], day[1]}
		got := ProjectLive(shuffled, mustClock(t, "09:00"))
		checkPeriod(t, "current", got.Current, 2)
		checkPeriod(t, "next", got.Next, 3)
	})

	t.Run("gap between periods", func(t *testing.T) {
		gapped := []Period{
			{Number: 1, Start: 480, End: 525, Type: PeriodClass},
			{Number: 2, Start: 600, End: 645, Type: PeriodClass},
		}
		got := ProjectLive(gapped, mustClock(t, "09:00"))
		checkPeriod(t, "current", got.Current, 0)
		checkPeriod(t, "next", got.Next, 2)
	})

	t.Run("empty list", func(t *testing.T) {
		got := ProjectLive(nil, 540)
		checkPeriod(t, "current", got.Current, 0)
		checkPeriod(t, "next", got.Next, 0)
	})
}

func checkPeriod(t *testing.T, label string, got *Period, wantNumber int) {
	t.Helper()
	if wantNumber == 0 {
		if got != nil {
			t.Errorf("%s = periode %d, want absent", label, got.Number)
		}
		return
	}
	if got == nil {
		t.Errorf("%s = absent, want periode %d", label, wantNumber)
		return
	}
	if got.Number != wantNumber {
		t.Errorf("%s = periode %d, want %d", label, got.Number, wantNumber)
	}
}
