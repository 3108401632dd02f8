// file: internals/features/school/timetable/engine/livestatus.go
package engine

import "sort"

// LiveStatus: hasil proyeksi "sedang berlangsung" / "berikutnya".
// Nil berarti tidak ada.
type LiveStatus struct {
	Current *Period
	Next    *Period
}

// ProjectLive menentukan periode berjalan & berikutnya untuk offset menit
// nowMinutes. Input di-sort ulang by start (defensif — jangan percaya urutan
// caller), lalu satu kali scan:
//   - now di dalam [start,end) → periode itu current, periode sesudahnya next
//   - kalau tidak, periode pertama dengan start > now jadi next tanpa current
//   - lewat semua periode → dua-duanya kosong
func ProjectLive(periods []Period, nowMinutes int) LiveStatus {
	if len(periods) == 0 {
		return LiveStatus{}
	}

	sorted := make([]Period, len(periods))
	copy(sorted, periods)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for i := range sorted {
		p := sorted[i]
		if nowMinutes >= p.Start && nowMinutes < p.End {
			st := LiveStatus{Current: &sorted[i]}
			if i+1 < len(sorted) {
				st.Next = &sorted[i+1]
			}
			return st
		}
		if p.Start > nowMinutes {
			return LiveStatus{Next: &sorted[i]}
		}
	}
	return LiveStatus{}
}
