// file: internals/features/school/announcements/dto/announcements_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/announcements/model"
)

type CreateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=150"`
	Body     string `json:"body" validate:"required,min=1"`
	Audience string `json:"audience" validate:"required,oneof=all teachers students"`
}

type AnnouncementResponse struct {
	AnnouncementID uuid.UUID `json:"announcement_id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Audience       string    `json:"audience"`
	CreatedBy      uuid.UUID `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewAnnouncementResponse(a *m.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementID: a.AnnouncementID,
		Title:          a.AnnouncementTitle,
		Body:           a.AnnouncementBody,
		Audience:       a.AnnouncementAudience,
		CreatedBy:      a.AnnouncementCreatedBy,
		CreatedAt:      a.AnnouncementCreatedAt,
	}
}

// CreateAnnouncementResponse menyertakan jumlah notifikasi hasil fan-out.
type CreateAnnouncementResponse struct {
	Announcement  AnnouncementResponse `json:"announcement"`
	NotifiedUsers int64                `json:"notified_users"`
}

// FeedItemResponse: satu baris feed user (notifikasi + isi pengumuman).
type FeedItemResponse struct {
	NotificationID uuid.UUID  `json:"notification_id"`
	AnnouncementID uuid.UUID  `json:"announcement_id"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
