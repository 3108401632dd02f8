// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/attendance/model"
)

/* =========================
   Requests
   ========================= */

type OpenSessionRequest struct {
	ClassID       uuid.UUID `json:"class_id" validate:"required"`
	Date          string    `json:"date" validate:"required,datetime=2006-01-02"`
	WindowMinutes int       `json:"window_minutes" validate:"omitempty,min=5,max=240"`
}

type MarkEntryRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present sick excused absent"`
	Note      *string   `json:"note,omitempty" validate:"omitempty,max=255"`
}

// MarkAttendanceRequest menulis banyak entri sekaligus untuk satu sesi.
type MarkAttendanceRequest struct {
	Entries []MarkEntryRequest `json:"entries" validate:"required,min=1,max=60,dive"`
}

/* =========================
   Responses
   ========================= */

type SessionResponse struct {
	SessionID     uuid.UUID `json:"session_id"`
	ClassID       uuid.UUID `json:"class_id"`
	Date          string    `json:"date"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	OpenedAt      time.Time `json:"opened_at"`
	WindowMinutes int       `json:"window_minutes"`
	ClosesAt      time.Time `json:"closes_at"`
}

func NewSessionResponse(s *m.AttendanceSessionModel) SessionResponse {
	return SessionResponse{
		SessionID:     s.AttendanceSessionID,
		ClassID:       s.AttendanceSessionClassID,
		Date:          s.AttendanceSessionDate.Format("2006-01-02"),
		TeacherID:     s.AttendanceSessionTeacherID,
		OpenedAt:      s.AttendanceSessionOpenedAt,
		WindowMinutes: s.AttendanceSessionWindowMinutes,
		ClosesAt: s.AttendanceSessionOpenedAt.Add(
			time.Duration(s.AttendanceSessionWindowMinutes) * time.Minute),
	}
}

type EntryResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
	MarkedAt  time.Time `json:"marked_at"`
}

func NewEntryResponse(e *m.AttendanceEntryModel) EntryResponse {
	return EntryResponse{
		StudentID: e.AttendanceEntryStudentID,
		Status:    e.AttendanceEntryStatus,
		Note:      e.AttendanceEntryNote,
		MarkedAt:  e.AttendanceEntryMarkedAt,
	}
}

type SessionDetailResponse struct {
	Session SessionResponse `json:"session"`
	Entries []EntryResponse `json:"entries"`
}
