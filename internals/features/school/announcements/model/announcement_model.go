// file: internals/features/school/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audiens pengumuman
const (
	AudienceAll      = "all"
	AudienceTeachers = "teachers"
	AudienceStudents = "students"
)

func ValidAudience(s string) bool {
	switch s {
	case AudienceAll, AudienceTeachers, AudienceStudents:
		return true
	}
	return false
}

/* =======================================================
   AnnouncementModel — map ke tabel announcements
   Saat dibuat, baris notifikasi di-fan-out per user sesuai
   audiens, jadi feed tiap user tinggal baca tabelnya sendiri.
   ======================================================= */

type AnnouncementModel struct {
	AnnouncementID uuid.UUID `json:"announcement_id" gorm:"type:uuid;primaryKey;column:announcement_id;default:gen_random_uuid()"`

	AnnouncementTitle    string `json:"announcement_title" gorm:"type:varchar(150);not null;column:announcement_title"`
	AnnouncementBody     string `json:"announcement_body" gorm:"type:text;not null;column:announcement_body"`
	AnnouncementAudience string `json:"announcement_audience" gorm:"type:varchar(10);not null;default:'all';column:announcement_audience"`

	AnnouncementCreatedBy uuid.UUID `json:"announcement_created_by" gorm:"type:uuid;not null;column:announcement_created_by"`

	AnnouncementCreatedAt time.Time      `json:"announcement_created_at" gorm:"column:announcement_created_at;not null;autoCreateTime"`
	AnnouncementUpdatedAt time.Time      `json:"announcement_updated_at" gorm:"column:announcement_updated_at;not null;autoUpdateTime"`
	AnnouncementDeletedAt gorm.DeletedAt `json:"announcement_deleted_at,omitempty" gorm:"column:announcement_deleted_at;index"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
