// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	d "schoolku_backend/internals/features/users/auth/dto"
	m "schoolku_backend/internals/features/users/auth/model"
	svc "schoolku_backend/internals/features/users/auth/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

/* =========================
   Register (admin)
   ========================= */

// Register membuat akun baru. Hanya admin — pendaftaran siswa masuk lewat
// modul admissions, akun dibuat di sini oleh tata usaha.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	// 🔐 Guard role
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("register"))
	}

	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// 🔹 Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hash password")
	}

	user := m.UserModel{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     req.Role,
	}
	user.SetDefaultValues()

	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Akun berhasil dibuat", d.NewUserResponse(&user))
}

/* =========================
   Login
   ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user m.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// pesan sengaja sama dengan password salah
		return helper.JsonError(c, http.StatusUnauthorized, "Email atau password salah")
	}
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if !user.IsActive {
		return helper.JsonError(c, http.StatusForbidden, "Akun dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Email atau password salah")
	}

	access, err := svc.IssueAccessToken(&user)
	if err != nil {
		log.Printf("[Auth.Login] issue access: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat token")
	}
	if err := svc.IssueRefreshToken(ctl.DB, c, &user); err != nil {
		log.Printf("[Auth.Login] issue refresh: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", d.LoginResponse{
		AccessToken: access,
		User:        d.NewUserResponse(&user),
	})
}

/* =========================
   Refresh token (rotate)
   ========================= */

func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		return helper.JsonError(c, http.StatusUnauthorized, "Refresh token tidak ada")
	}

	userID, err := svc.VerifyRefreshToken(ctl.DB, raw)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, http.StatusForbidden, "Akun dinonaktifkan")
	}

	access, err := svc.IssueAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat token")
	}
	if err := svc.IssueRefreshToken(ctl.DB, c, &user); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Token diperbarui", d.LoginResponse{
		AccessToken: access,
		User:        d.NewUserResponse(&user),
	})
}

/* =========================
   Logout
   ========================= */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if raw := helper.GetRefreshTokenFromCookie(c); raw != "" {
		if err := svc.RevokeRefreshToken(ctl.DB, raw); err != nil {
			log.Printf("[Auth.Logout] revoke: %v", err)
		}
	}
	c.ClearCookie("refresh_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}
