// file: internals/features/school/academics/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TeacherModel — map ke tabel teachers
   Data kepegawaian guru. Akun login ada di tabel users;
   teacher_user_id menghubungkan keduanya (opsional agar
   guru bisa dicatat sebelum akunnya dibuat).
   ======================================================= */

type TeacherModel struct {
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	TeacherUserID *uuid.UUID `json:"teacher_user_id,omitempty" gorm:"type:uuid;column:teacher_user_id;uniqueIndex:uq_teachers_user_id"`

	TeacherFullName string `json:"teacher_full_name" gorm:"type:varchar(100);not null;column:teacher_full_name"`
	// Nomor induk pegawai
	TeacherNIP       string  `json:"teacher_nip" gorm:"type:varchar(30);not null;column:teacher_nip;uniqueIndex:uq_teachers_nip"`
	TeacherSpecialty *string `json:"teacher_specialty,omitempty" gorm:"type:varchar(100);column:teacher_specialty"`
	TeacherPhone     *string `json:"teacher_phone,omitempty" gorm:"type:varchar(25);column:teacher_phone"`

	TeacherIsActive bool `json:"teacher_is_active" gorm:"default:true;column:teacher_is_active"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
