// file: internals/features/school/academics/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status siswa
const (
	StudentStatusActive = "active"
	StudentStatusAlumni = "alumni"
)

/* =======================================================
   StudentModel — map ke tabel students
   Dibuat lewat admissions. Foto disimpan sebagai thumbnail
   webp (bytea) hasil konversi saat upload, bukan file asli.
   student_class_id NULL untuk alumni.
   ======================================================= */

type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`

	StudentUserID *uuid.UUID `json:"student_user_id,omitempty" gorm:"type:uuid;column:student_user_id;uniqueIndex:uq_students_user_id"`

	StudentFullName string `json:"student_full_name" gorm:"type:varchar(100);not null;column:student_full_name"`
	// Nomor induk siswa
	StudentNIS string `json:"student_nis" gorm:"type:varchar(30);not null;column:student_nis;uniqueIndex:uq_students_nis"`

	StudentClassID      *uuid.UUID `json:"student_class_id,omitempty" gorm:"type:uuid;column:student_class_id;index"`
	StudentAcademicYear string     `json:"student_academic_year" gorm:"type:varchar(20);not null;column:student_academic_year"`
	StudentStatus       string     `json:"student_status" gorm:"type:varchar(10);not null;default:'active';column:student_status"`

	StudentPhotoWebP []byte `json:"-" gorm:"type:bytea;column:student_photo_webp"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
