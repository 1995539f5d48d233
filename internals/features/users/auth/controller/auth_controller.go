// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	teacherModel "sekolahku_backend/internals/features/academics/teachers/model"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	"sekolahku_backend/internals/features/users/auth/dto"
	helper "sekolahku_backend/internals/helpers"
)

// AuthController: boundary tipis — verifikasi bcrypt + terbit JWT.
// Issuance detail (refresh token, OAuth, dsb.) bukan urusan core.
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

func signToken(userID uuid.UUID, role string, schoolID *uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	if schoolID != nil {
		claims["school_id"] = schoolID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var (
		userID   uuid.UUID
		schoolID *uuid.UUID
		hash     string
	)

	switch req.Role {
	case constants.RoleSuperAdmin:
		// Akun platform tunggal, kredensial dari ENV (bukan tabel tenant).
		if email != strings.ToLower(configs.GetEnv("SUPERADMIN_EMAIL")) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		userID = uuid.Nil
		hash = configs.GetEnv("SUPERADMIN_PASSWORD_HASH")
	case constants.RoleAdmin:
		var sch schoolModel.SchoolModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("school_admin_email = ? AND school_is_active = TRUE", email).
			First(&sch).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akun")
		}
		userID, hash = sch.SchoolID, sch.SchoolAdminPassword
		id := sch.SchoolID
		schoolID = &id
	case constants.RoleTeacher:
		var t teacherModel.TeacherModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("teacher_email = ? AND teacher_is_active = TRUE", email).
			First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akun")
		}
		userID, hash = t.TeacherID, t.TeacherPassword
		schoolID = &t.TeacherSchoolID
	case constants.RoleStudent:
		var st studentModel.StudentModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("student_email = ? AND student_is_active = TRUE", email).
			First(&st).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akun")
		}
		userID, hash = st.StudentID, st.StudentPassword
		schoolID = &st.StudentSchoolID
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := signToken(userID, req.Role, schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal terbitkan token")
	}

	resp := dto.LoginResponse{AccessToken: token, Role: req.Role}
	if schoolID != nil {
		resp.SchoolID = schoolID.String()
	}
	return helper.JsonOK(c, "Login berhasil", resp)
}
