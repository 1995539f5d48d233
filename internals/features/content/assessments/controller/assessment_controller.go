// file: internals/features/content/assessments/controller/assessment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	studentSvc "sekolahku_backend/internals/features/academics/students/service"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	"sekolahku_backend/internals/features/content/assessments/dto"
	"sekolahku_backend/internals/features/content/assessments/model"
	visibilitySvc "sekolahku_backend/internals/features/content/visibility/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AssessmentController struct {
	DB         *gorm.DB
	Visibility *visibilitySvc.VisibilityService
	Resolver   *studentSvc.BoardResolver
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{
		DB:         db,
		Visibility: visibilitySvc.NewVisibilityService(db),
		Resolver:   studentSvc.NewBoardResolver(db),
	}
}

var validate = validator.New()

func (ctl *AssessmentController) subjectInBoard(c *fiber.Ctx, subjectID uuid.UUID, board string) error {
	var n int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ? AND subject_board = ?", subjectID, board).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.ErrNotFound
	}
	return nil
}

// POST /teacher/assessments
func (ctl *AssessmentController) CreateAssessment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAssessmentRequest
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

	// Subject FK bertipe: wajib ada dan satu board dengan guru.
	if err := ctl.subjectInBoard(c, req.SubjectID, board); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Subject tidak ditemukan di board "+board)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek subject")
	}

	a := req.ToModel(schoolID, teacherID, board)
	if err := ctl.DB.WithContext(c.Context()).Create(a).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan assessment")
	}

	return helper.JsonCreated(c, "Assessment berhasil dibuat", a)
}

// POST /superadmin/assessments
func (ctl *AssessmentController) CreateExclusiveAssessment(c *fiber.Ctx) error {
	var req dto.CreateExclusiveAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidBoard(req.Board) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Board tidak dikenal: "+req.Board)
	}
	if err := ctl.subjectInBoard(c, req.SubjectID, req.Board); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Subject tidak ditemukan di board "+req.Board)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek subject")
	}

	a := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(a).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan assessment eksklusif")
	}

	return helper.JsonCreated(c, "Assessment eksklusif berhasil dibuat", a)
}

// GET /teacher/assessments
func (ctl *AssessmentController) ListTeacherAssessments(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var items []model.AssessmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("assessment_school_id = ? AND assessment_created_by = ?", schoolID, teacherID).
		Order("assessment_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil assessment")
	}

	return helper.JsonOK(c, "OK", fiber.Map{"assessments": items, "total": len(items)})
}

// GET /student/assessments?subject_id=
func (ctl *AssessmentController) ListStudentAssessments(c *fiber.Ctx) error {
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

	list, err := ctl.Visibility.VisibleAssessments(c.Context(), studentID, subjectFilter)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		if errors.Is(err, helper.ErrBoardUnresolved) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrBoardUnresolved.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve assessment siswa")
	}

	return helper.JsonListWithReason(c, "OK", list.Items, list.Reason)
}
