// file: internals/features/school/academics/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ClassModel — map ke tabel classes
   Satu rombongan belajar pada satu tahun ajaran.
   Level dipakai rumus kenaikan kelas (level+1, level
   terakhir → alumni).
   ======================================================= */

type ClassModel struct {
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id;default:gen_random_uuid()"`

	ClassName         string `json:"class_name" gorm:"type:varchar(50);not null;column:class_name;uniqueIndex:uq_classes_name_year"`
	ClassLevel        int    `json:"class_level" gorm:"not null;column:class_level"`
	ClassAcademicYear string `json:"class_academic_year" gorm:"type:varchar(20);not null;column:class_academic_year;uniqueIndex:uq_classes_name_year"`

	// Wali kelas (opsional)
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id,omitempty" gorm:"type:uuid;column:class_homeroom_teacher_id"`

	ClassIsActive bool `json:"class_is_active" gorm:"default:true;column:class_is_active"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;not null;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
