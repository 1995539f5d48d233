// file: internals/features/academics/classes/controller/class_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/classes/dto"
	"sekolahku_backend/internals/features/academics/classes/model"
	teacherSvc "sekolahku_backend/internals/features/academics/teachers/service"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ClassController struct {
	DB         *gorm.DB
	Assignment *teacherSvc.AssignmentService
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Assignment: teacherSvc.NewAssignmentService(db)}
}

var validate = validator.New()

// POST /admin/classes
// Kelas butuh board, dan board kelas disalin dari sekolah — jadi profil
// sekolah (board + nama) harus lengkap dulu.
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var sch schoolModel.SchoolModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("school_id = ?", schoolID).
		First(&sch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek sekolah")
	}
	if !sch.HasCompleteProfile() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrBoardUnresolved.Error())
	}

	cls := req.ToModel(schoolID, sch.SchoolBoard)
	if err := ctl.DB.WithContext(c.Context()).Create(cls).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Kelas "+cls.ClassNumber+"-"+cls.ClassSection+" sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", cls)
}

// GET /admin/classes
func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.ClassModel{}).
		Where("class_school_id = ?", schoolID)
	if number := c.Query("class_number"); number != "" {
		q = q.Where("class_number = ?", number)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung kelas")
	}

	var classes []model.ClassModel
	if err := q.Order("class_number ASC, class_section ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil kelas")
	}

	return helper.JsonList(c, "OK", classes, helper.BuildPagination(p, total, len(classes)))
}

// POST /admin/classes/assign-subjects
// Broadcast: semua section dengan class_number itu kena, bukan satu.
func (ctl *ClassController) AssignSubjectsToClassNumber(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AssignSubjectsToClassNumberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	sections, err := ctl.Assignment.AssignSubjectsToClassNumber(c.Context(), schoolID, req.ClassNumber, req.SubjectIDs)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal assign subject ke kelas")
	}

	return helper.JsonUpdated(c, "Subject ter-assign ke semua section", fiber.Map{
		"class_number":     req.ClassNumber,
		"sections_touched": sections,
		"subject_count":    len(req.SubjectIDs),
	})
}

// GET /admin/classes/:id/subjects
func (ctl *ClassController) ListClassSubjects(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.ClassSubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_subject_class_id = ? AND class_subject_school_id = ?", c.Params("id"), schoolID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil subject kelas")
	}

	return helper.JsonOK(c, "OK", rows)
}
