// file: internals/features/school/marks/dto/marks_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/marks/model"
)

/* =========================
   Requests
   ========================= */

type CreateTermRequest struct {
	TermCode string     `json:"term_code" validate:"required,min=3,max=30"`
	LockAt   *time.Time `json:"lock_at,omitempty"`
}

type LockTermRequest struct {
	LockAt time.Time `json:"lock_at" validate:"required"`
}

type UpsertMarkRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	TermID    uuid.UUID `json:"term_id" validate:"required"`
	Score     float64   `json:"score" validate:"min=0,max=100"`
}

/* =========================
   Responses
   ========================= */

type TermResponse struct {
	TermID   uuid.UUID  `json:"term_id"`
	TermCode string     `json:"term_code"`
	LockAt   *time.Time `json:"lock_at,omitempty"`
	Locked   bool       `json:"locked"`
}

func NewTermResponse(t *m.TermModel, locked bool) TermResponse {
	return TermResponse{
		TermID:   t.TermID,
		TermCode: t.TermCode,
		LockAt:   t.TermLockAt,
		Locked:   locked,
	}
}

type MarkResponse struct {
	MarkID    uuid.UUID `json:"mark_id"`
	StudentID uuid.UUID `json:"student_id"`
	SubjectID uuid.UUID `json:"subject_id"`
	TermID    uuid.UUID `json:"term_id"`
	Score     float64   `json:"score"`
	Band      string    `json:"band"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMarkResponse(mk *m.MarkModel) MarkResponse {
	return MarkResponse{
		MarkID:    mk.MarkID,
		StudentID: mk.MarkStudentID,
		SubjectID: mk.MarkSubjectID,
		TermID:    mk.MarkTermID,
		Score:     mk.MarkScore,
		Band:      mk.MarkBand,
		UpdatedAt: mk.MarkUpdatedAt,
	}
}
