// file: internals/features/school/academics/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel — map ke tabel subjects (mata pelajaran).
type SubjectModel struct {
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`

	SubjectName string `json:"subject_name" gorm:"type:varchar(100);not null;column:subject_name"`
	SubjectCode string `json:"subject_code" gorm:"type:varchar(20);not null;column:subject_code;uniqueIndex:uq_subjects_code"`

	SubjectIsActive bool `json:"subject_is_active" gorm:"default:true;column:subject_is_active"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at,omitempty" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
