// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/students/dto"
	"sekolahku_backend/internals/features/academics/students/model"
	"sekolahku_backend/internals/features/academics/students/service"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB         *gorm.DB
	Assignment *service.StudentAssignmentService
	Resolver   *service.BoardResolver
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:         db,
		Assignment: service.NewStudentAssignmentService(db),
		Resolver:   service.NewBoardResolver(db),
	}
}

var validate = validator.New()

// POST /admin/students
// Precondition sama dengan kelas: board sekolah harus sudah terisi.
func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
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
	if sch.SchoolBoard == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrBoardUnresolved.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	st := req.ToModel(schoolID, string(hash), sch.SchoolBoard, sch.SchoolName)
	if err := ctl.DB.WithContext(c.Context()).Create(st).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email siswa sudah terdaftar di sekolah ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil dibuat", st)
}

// GET /admin/students
func (ctl *StudentController) ListStudents(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)
	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("student_class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung siswa")
	}

	var students []model.StudentModel
	if err := q.Order("student_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil siswa")
	}

	return helper.JsonList(c, "OK", students, helper.BuildPagination(p, total, len(students)))
}

// POST /admin/students/:id/class
func (ctl *StudentController) AssignClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa bukan UUID")
	}

	var req dto.AssignClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctl.Assignment.AssignClassToStudent(c.Context(), schoolID, studentID, req.ClassID); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal assign kelas ke siswa")
	}

	return helper.JsonUpdated(c, "Kelas siswa diperbarui", fiber.Map{
		"student_id": studentID,
		"class_id":   req.ClassID,
	})
}

// POST /admin/students/:id/subjects — lintas board DITOLAK.
func (ctl *StudentController) AssignSubjects(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa bukan UUID")
	}

	var req dto.AssignSubjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctl.Assignment.AssignSubjectsToStudent(c.Context(), schoolID, studentID, req.SubjectIDs); err != nil {
		switch {
		case errors.Is(err, helper.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		case errors.Is(err, helper.ErrCrossBoardViolation):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrCrossBoardViolation.Error())
		case errors.Is(err, helper.ErrBoardUnresolved):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrBoardUnresolved.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal assign subject ke siswa")
	}

	return helper.JsonUpdated(c, "Subject siswa diperbarui", fiber.Map{
		"student_id":    studentID,
		"subject_count": len(req.SubjectIDs),
	})
}
