// file: internals/features/school/announcements/controller/announcement_controller.go
package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	d "schoolku_backend/internals/features/school/announcements/dto"
	m "schoolku_backend/internals/features/school/announcements/model"
	userModel "schoolku_backend/internals/features/users/auth/model"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// audienceRoles memetakan audiens → role user penerima fan-out.
func audienceRoles(audience string) []string {
	switch audience {
	case m.AudienceTeachers:
		return []string{constants.RoleTeacher}
	case m.AudienceStudents:
		return []string{constants.RoleStudent}
	default:
		return constants.AllRoles
	}
}

/* =========================
   Create + fan-out (admin)
   ========================= */

// Create menyimpan pengumuman lalu fan-out baris notifikasi untuk tiap
// user aktif di audiens, dalam satu transaksi.
func (ctl *AnnouncementController) Create(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("pengumuman"))
	}

	var req d.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	createdBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	ann := m.AnnouncementModel{
		AnnouncementTitle:     strings.TrimSpace(req.Title),
		AnnouncementBody:      req.Body,
		AnnouncementAudience:  req.Audience,
		AnnouncementCreatedBy: createdBy,
	}

	var notified int64
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ann).Error; err != nil {
			return err
		}

		var userIDs []uuid.UUID
		if err := tx.Model(&userModel.UserModel{}).
			Where("role IN ? AND is_active = ?", audienceRoles(req.Audience), true).
			Pluck("id", &userIDs).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}

		rows := make([]m.NotificationModel, 0, len(userIDs))
		for _, uid := range userIDs {
			rows = append(rows, m.NotificationModel{
				NotificationUserID:         uid,
				NotificationAnnouncementID: ann.AnnouncementID,
			})
		}
		if err := tx.CreateInBatches(&rows, 500).Error; err != nil {
			return err
		}
		notified = int64(len(rows))
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Pengumuman terkirim", d.CreateAnnouncementResponse{
		Announcement:  d.NewAnnouncementResponse(&ann),
		NotifiedUsers: notified,
	})
}

/* =========================
   Read
   ========================= */

func (ctl *AnnouncementController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.AnnouncementModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.AnnouncementModel
	if err := tx.Order("announcement_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewAnnouncementResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar pengumuman", out, &pg)
}

// MyFeed: feed notifikasi milik user login; ?unread=true hanya yang belum dibaca.
func (ctl *AnnouncementController) MyFeed(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := ctl.DB.WithContext(c.UserContext()).
		Table("notifications").
		Joins("JOIN announcements ON announcements.announcement_id = notifications.notification_announcement_id").
		Where("notifications.notification_user_id = ?", userID).
		Where("announcements.announcement_deleted_at IS NULL")
	if strings.EqualFold(strings.TrimSpace(c.Query("unread")), "true") {
		base = base.Where("notifications.notification_read_at IS NULL")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var items []d.FeedItemResponse
	err = base.
		Select(`notifications.notification_id,
			announcements.announcement_id,
			announcements.announcement_title AS title,
			announcements.announcement_body AS body,
			notifications.notification_read_at AS read_at,
			notifications.notification_created_at AS created_at`).
		Order("notifications.notification_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Scan(&items).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Feed notifikasi", items, &pg)
}

// MarkRead menandai satu notifikasi milik user login sebagai terbaca.
func (ctl *AnnouncementController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	notifID, err := parseUUIDParam(c, "notification_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "notification_id tidak valid")
	}

	now := time.Now()
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&m.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Where("notification_read_at IS NULL").
		Update("notification_read_at", now)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		// sudah terbaca atau bukan milik user ini
		return helper.JsonError(c, http.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai terbaca", fiber.Map{
		"notification_id": notifID,
		"read_at":         now,
	})
}
