package constants

import (
	"strings"
	"time"
)

// Hari sekolah: Senin s/d Sabtu (tanpa Minggu)
const (
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
)

var SchoolDays = []string{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
}

func IsSchoolDay(day string) bool {
	d := strings.ToLower(strings.TrimSpace(day))
	for _, v := range SchoolDays {
		if v == d {
			return true
		}
	}
	return false
}

// SchoolDayToday mengembalikan nama hari sekolah untuk waktu t,
// kosong kalau hari Minggu.
func SchoolDayToday(t time.Time) string {
	if t.Weekday() == time.Sunday {
		return ""
	}
	return strings.ToLower(t.Weekday().String())
}
