// file: internals/features/academics/teachers/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	"sekolahku_backend/internals/features/academics/teachers/dto"
	"sekolahku_backend/internals/features/academics/teachers/model"
	"sekolahku_backend/internals/features/academics/teachers/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type TeacherController struct {
	DB         *gorm.DB
	Assignment *service.AssignmentService
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Assignment: service.NewAssignmentService(db)}
}

var validate = validator.New()

// POST /admin/teachers
func (ctl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	t := req.ToModel(schoolID, string(hash))
	if err := ctl.DB.WithContext(c.Context()).Create(t).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email guru sudah terdaftar di sekolah ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan guru")
	}

	return helper.JsonCreated(c, "Guru berhasil dibuat", t)
}

// GET /admin/teachers
func (ctl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung guru")
	}

	var teachers []model.TeacherModel
	if err := q.Order("teacher_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil guru")
	}

	return helper.JsonList(c, "OK", teachers, helper.BuildPagination(p, total, len(teachers)))
}

// POST /admin/teachers/:id/subjects
func (ctl *TeacherController) AssignSubjects(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru bukan UUID")
	}

	var req dto.AssignSubjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctl.Assignment.AssignSubjectsToTeacher(c.Context(), schoolID, teacherID, req.SubjectIDs); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal assign subject ke guru")
	}

	return helper.JsonUpdated(c, "Subject guru diperbarui", fiber.Map{
		"teacher_id":    teacherID,
		"subject_count": len(req.SubjectIDs),
	})
}

// POST /admin/teachers/:id/classes — ref boleh UUID atau classNumber.
func (ctl *TeacherController) AssignClasses(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru bukan UUID")
	}

	var req dto.AssignClassesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctl.Assignment.AssignClassesToTeacher(c.Context(), schoolID, teacherID, req.ClassRefs); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal assign kelas ke guru")
	}

	return helper.JsonUpdated(c, "Kelas guru diperbarui", fiber.Map{
		"teacher_id":  teacherID,
		"class_count": len(req.ClassRefs),
	})
}

// GET /admin/teachers/:id/classes
// Ref tersimpan polimorfik (UUID / classNumber) — di-resolve dulu ke class
// tenant sebelum keluar; ref ByNumber melebar ke semua section-nya.
func (ctl *TeacherController) ListClasses(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru bukan UUID")
	}

	var t model.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teacher_id = ? AND teacher_school_id = ?", teacherID, schoolID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek guru")
	}

	var assignments []model.TeacherClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teacher_class_teacher_id = ?", teacherID).
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil kelas guru")
	}
	refs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		refs = append(refs, a.TeacherClassRef)
	}

	var classes []classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_school_id = ?", schoolID).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil kelas tenant")
	}
	targets := make([]service.ClassTarget, 0, len(classes))
	for _, cls := range classes {
		targets = append(targets, service.ClassTarget{
			ID:      cls.ClassID,
			Number:  cls.ClassNumber,
			Section: cls.ClassSection,
		})
	}

	resolved := service.ResolveClassRefs(refs, targets)

	return helper.JsonOK(c, "OK", fiber.Map{
		"teacher_id": teacherID,
		"refs":       refs,
		"classes":    resolved,
		"total":      len(resolved),
	})
}
