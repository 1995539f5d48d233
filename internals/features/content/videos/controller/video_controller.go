// file: internals/features/content/videos/controller/video_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	studentSvc "sekolahku_backend/internals/features/academics/students/service"
	"sekolahku_backend/internals/features/content/videos/dto"
	"sekolahku_backend/internals/features/content/videos/model"
	visibilitySvc "sekolahku_backend/internals/features/content/visibility/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type VideoController struct {
	DB         *gorm.DB
	Visibility *visibilitySvc.VisibilityService
	Resolver   *studentSvc.BoardResolver
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{
		DB:         db,
		Visibility: visibilitySvc.NewVisibilityService(db),
		Resolver:   studentSvc.NewBoardResolver(db),
	}
}

var validate = validator.New()

// POST /teacher/videos
// Video guru selalu scoped ke tenant; board diwariskan dari sekolah guru.
func (ctl *VideoController) CreateVideo(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	board, err := ctl.Resolver.ResolveTeacherBoard(c.Context(), teacherID)
	if err != nil {
		if errors.Is(err, helper.ErrBoardUnresolved) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrBoardUnresolved.Error())
		}
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve board guru")
	}

	v := req.ToModel(schoolID, teacherID, board)
	if err := ctl.DB.WithContext(c.Context()).Create(v).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan video")
	}

	return helper.JsonCreated(c, "Video berhasil dibuat", v)
}

// POST /superadmin/videos
// Video eksklusif platform: tanpa tenant, tanpa creator, board eksplisit.
func (ctl *VideoController) CreateExclusiveVideo(c *fiber.Ctx) error {
	var req dto.CreateExclusiveVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidBoard(req.Board) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Board tidak dikenal: "+req.Board)
	}

	v := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(v).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan video eksklusif")
	}

	return helper.JsonCreated(c, "Video eksklusif berhasil dibuat", v)
}

// GET /teacher/videos
func (ctl *VideoController) ListTeacherVideos(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var videos []model.VideoModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("video_school_id = ? AND video_created_by = ?", schoolID, teacherID).
		Order("video_created_at DESC").
		Find(&videos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil video")
	}

	return helper.JsonOK(c, "OK", fiber.Map{"videos": videos, "total": len(videos)})
}

// GET /student/videos?subject_id=
// Jalur utama resolusi visibilitas siswa. List kosong dengan reason BUKAN error.
func (ctl *VideoController) ListStudentVideos(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var subjectFilter *uuid.UUID
	if raw := c.Query("subject_id"); raw != "" {
		id, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		subjectFilter = &id
	}

	list, err := ctl.Visibility.VisibleVideos(c.Context(), studentID, subjectFilter)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		if errors.Is(err, helper.ErrBoardUnresolved) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrBoardUnresolved.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve video siswa")
	}

	return helper.JsonListWithReason(c, "OK", list.Items, list.Reason)
}

// DELETE /teacher/videos/:id (soft delete, hanya milik sendiri)
func (ctl *VideoController) DeleteVideo(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID video tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("video_id = ? AND video_school_id = ? AND video_created_by = ?", videoID, schoolID, teacherID).
		Delete(&model.VideoModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus video")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
	}

	return helper.JsonDeleted(c, "Video berhasil dihapus", fiber.Map{"video_id": videoID})
}
