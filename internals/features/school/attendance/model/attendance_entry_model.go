// file: internals/features/school/attendance/model/attendance_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status kehadiran
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusSick    = "sick"
	AttendanceStatusExcused = "excused"
	AttendanceStatusAbsent  = "absent"
)

func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusSick,
		AttendanceStatusExcused, AttendanceStatusAbsent:
		return true
	}
	return false
}

// AttendanceEntryModel — map ke tabel attendance_entries.
// Satu baris per (sesi, siswa); menulis ulang = ganti status.
type AttendanceEntryModel struct {
	AttendanceEntryID uuid.UUID `json:"attendance_entry_id" gorm:"type:uuid;primaryKey;column:attendance_entry_id;default:gen_random_uuid()"`

	AttendanceEntrySessionID uuid.UUID `json:"attendance_entry_session_id" gorm:"type:uuid;not null;column:attendance_entry_session_id;uniqueIndex:uq_attendance_entries_key"`
	AttendanceEntryStudentID uuid.UUID `json:"attendance_entry_student_id" gorm:"type:uuid;not null;column:attendance_entry_student_id;uniqueIndex:uq_attendance_entries_key"`

	AttendanceEntryStatus string  `json:"attendance_entry_status" gorm:"type:varchar(10);not null;column:attendance_entry_status"`
	AttendanceEntryNote   *string `json:"attendance_entry_note,omitempty" gorm:"type:varchar(255);column:attendance_entry_note"`

	AttendanceEntryMarkedAt time.Time `json:"attendance_entry_marked_at" gorm:"column:attendance_entry_marked_at;not null"`

	AttendanceEntryCreatedAt time.Time `json:"attendance_entry_created_at" gorm:"column:attendance_entry_created_at;not null;autoCreateTime"`
	AttendanceEntryUpdatedAt time.Time `json:"attendance_entry_updated_at" gorm:"column:attendance_entry_updated_at;not null;autoUpdateTime"`
}

func (AttendanceEntryModel) TableName() string {
	return "attendance_entries"
}
