// file: internals/features/school/announcements/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel — map ke tabel notifications. Satu baris per
// (user, pengumuman), hasil fan-out saat pengumuman dibuat.
// read_at NULL = belum dibaca.
type NotificationModel struct {
	NotificationID uuid.UUID `json:"notification_id" gorm:"type:uuid;primaryKey;column:notification_id;default:gen_random_uuid()"`

	NotificationUserID         uuid.UUID `json:"notification_user_id" gorm:"type:uuid;not null;column:notification_user_id;uniqueIndex:uq_notifications_key;index"`
	NotificationAnnouncementID uuid.UUID `json:"notification_announcement_id" gorm:"type:uuid;not null;column:notification_announcement_id;uniqueIndex:uq_notifications_key"`

	NotificationReadAt *time.Time `json:"notification_read_at,omitempty" gorm:"column:notification_read_at"`

	NotificationCreatedAt time.Time `json:"notification_created_at" gorm:"column:notification_created_at;not null;autoCreateTime"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
