// file: internals/features/school/attendance/model/attendance_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   AttendanceSessionModel — map ke tabel attendance_sessions
   Satu sesi absensi per (kelas, tanggal). Guru membuka sesi,
   lalu entri hanya boleh ditulis selama jendela pengisian
   [opened_at, opened_at + window_minutes).
   ======================================================= */

type AttendanceSessionModel struct {
	AttendanceSessionID uuid.UUID `json:"attendance_session_id" gorm:"type:uuid;primaryKey;column:attendance_session_id;default:gen_random_uuid()"`

	AttendanceSessionClassID uuid.UUID `json:"attendance_session_class_id" gorm:"type:uuid;not null;column:attendance_session_class_id;uniqueIndex:uq_attendance_sessions_key"`
	AttendanceSessionDate    time.Time `json:"attendance_session_date" gorm:"type:date;not null;column:attendance_session_date;uniqueIndex:uq_attendance_sessions_key"`

	AttendanceSessionTeacherID uuid.UUID `json:"attendance_session_teacher_id" gorm:"type:uuid;not null;column:attendance_session_teacher_id"`

	AttendanceSessionOpenedAt      time.Time `json:"attendance_session_opened_at" gorm:"column:attendance_session_opened_at;not null"`
	AttendanceSessionWindowMinutes int       `json:"attendance_session_window_minutes" gorm:"not null;default:30;column:attendance_session_window_minutes"`

	AttendanceSessionCreatedAt time.Time `json:"attendance_session_created_at" gorm:"column:attendance_session_created_at;not null;autoCreateTime"`
	AttendanceSessionUpdatedAt time.Time `json:"attendance_session_updated_at" gorm:"column:attendance_session_updated_at;not null;autoUpdateTime"`
}

func (AttendanceSessionModel) TableName() string {
	return "attendance_sessions"
}
