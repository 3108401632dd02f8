// file: internals/features/school/marks/model/mark_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MarkModel — map ke tabel marks. Satu nilai per (siswa, mapel, term);
// tulis ulang mengganti skor dan band (upsert).
type MarkModel struct {
	MarkID uuid.UUID `json:"mark_id" gorm:"type:uuid;primaryKey;column:mark_id;default:gen_random_uuid()"`

	MarkStudentID uuid.UUID `json:"mark_student_id" gorm:"type:uuid;not null;column:mark_student_id;uniqueIndex:uq_marks_key"`
	MarkSubjectID uuid.UUID `json:"mark_subject_id" gorm:"type:uuid;not null;column:mark_subject_id;uniqueIndex:uq_marks_key"`
	MarkTermID    uuid.UUID `json:"mark_term_id" gorm:"type:uuid;not null;column:mark_term_id;uniqueIndex:uq_marks_key"`

	MarkScore float64 `json:"mark_score" gorm:"type:decimal(5,2);not null;column:mark_score"`
	MarkBand  string  `json:"mark_band" gorm:"type:varchar(2);not null;column:mark_band"`

	MarkTeacherID uuid.UUID `json:"mark_teacher_id" gorm:"type:uuid;not null;column:mark_teacher_id"`

	MarkCreatedAt time.Time `json:"mark_created_at" gorm:"column:mark_created_at;not null;autoCreateTime"`
	MarkUpdatedAt time.Time `json:"mark_updated_at" gorm:"column:mark_updated_at;not null;autoUpdateTime"`
}

func (MarkModel) TableName() string {
	return "marks"
}
