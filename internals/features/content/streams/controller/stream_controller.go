// file: internals/features/content/streams/controller/stream_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/content/streams/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StreamController struct {
	DB *gorm.DB
}

func NewStreamController(db *gorm.DB) *StreamController {
	return &StreamController{DB: db}
}

var validate = validator.New()

type createStreamRequest struct {
	Title   string     `json:"stream_title" validate:"required,max=200"`
	URL     string     `json:"stream_url" validate:"required,url"`
	StartAt *time.Time `json:"stream_start_at"`
}

// POST /teacher/streams
func (ctl *StreamController) CreateStream(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req createStreamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	st := model.StreamModel{
		StreamSchoolID:  schoolID,
		StreamCreatedBy: &teacherID,
		StreamTitle:     strings.TrimSpace(req.Title),
		StreamURL:       strings.TrimSpace(req.URL),
		StreamStartAt:   req.StartAt,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&st).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan stream")
	}

	return helper.JsonCreated(c, "Stream berhasil dibuat", st)
}

// GET /student/streams — stream satu tenant dengan siswa.
func (ctl *StreamController) ListStreams(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var items []model.StreamModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("stream_school_id = ?", schoolID).
		Order("stream_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil stream")
	}

	return helper.JsonOK(c, "OK", fiber.Map{"streams": items, "total": len(items)})
}

// PATCH /teacher/streams/:id/live
func (ctl *StreamController) SetLive(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	streamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID stream tidak valid")
	}

	live := c.QueryBool("live", true)
	res := ctl.DB.WithContext(c.Context()).
		Model(&model.StreamModel{}).
		Where("stream_id = ? AND stream_school_id = ?", streamID, schoolID).
		Update("stream_is_live", live)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ubah status live")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
	}

	return helper.JsonUpdated(c, "Status live diperbarui", fiber.Map{"stream_id": streamID, "is_live": live})
}
