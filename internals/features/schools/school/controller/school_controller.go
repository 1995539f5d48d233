// file: internals/features/schools/school/controller/school_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/schools/school/dto"
	"sekolahku_backend/internals/features/schools/school/model"
	"sekolahku_backend/internals/features/schools/school/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SchoolController struct {
	DB      *gorm.DB
	Cascade *service.CascadeDeleteService
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db, Cascade: service.NewCascadeDeleteService(db)}
}

var validate = validator.New()

/*
=========================================
 CREATE (super-admin)
 POST /super-admin/schools
=========================================
*/
func (ctl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Board != "" && !constants.IsValidBoard(req.Board) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Board tidak dikenal: "+req.Board)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	sch := req.ToModel(string(hash))
	if err := ctl.DB.WithContext(c.Context()).Create(sch).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email admin sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan sekolah")
	}

	return helper.JsonCreated(c, "Sekolah berhasil dibuat", dto.NewSchoolResponse(sch))
}

/*
=========================================
 PROFILE (admin tenant)
 GET /admin/school  |  PUT /admin/school
=========================================
*/
func (ctl *SchoolController) GetProfile(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var sch model.SchoolModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("school_id = ?", schoolID).
		First(&sch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil profil")
	}

	return helper.JsonOK(c, "OK", dto.NewSchoolResponse(&sch))
}

func (ctl *SchoolController) UpdateProfile(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSchoolProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	patch := map[string]any{}
	if req.Board != nil {
		if !constants.IsValidBoard(*req.Board) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Board tidak dikenal: "+*req.Board)
		}
		patch["school_board"] = *req.Board
	}
	if req.SchoolName != nil {
		patch["school_name"] = *req.SchoolName
	}
	if req.AdminName != nil {
		patch["school_admin_name"] = *req.AdminName
	}
	if req.IsActive != nil {
		patch["school_is_active"] = *req.IsActive
	}
	if len(patch) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&model.SchoolModel{}).
		Where("school_id = ?", schoolID).
		Updates(patch)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
	}

	return helper.JsonUpdated(c, "Profil sekolah diperbarui", patch)
}

/*
=========================================
 DELETE (super-admin) — cascade protocol
 DELETE /super-admin/schools/:id
=========================================
*/
func (ctl *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah bukan UUID")
	}

	if err := ctl.Cascade.DeleteSchool(c.Context(), schoolID); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		var pf *helper.PartialFailureError
		if errors.As(err, &pf) {
			// sebagian koleksi gagal disapu: laporkan detail, bukan silent success
			return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, pf.Error(), pf.Failures)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus sekolah")
	}

	return helper.JsonDeleted(c, "Sekolah dan seluruh datanya terhapus", fiber.Map{"school_id": schoolID})
}

/*
=========================================
 DASHBOARD (admin) — hitung banyak koleksi paralel
 GET /admin/school/dashboard
=========================================
*/
func (ctl *SchoolController) Dashboard(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	counts := map[string]*int64{
		"students":    new(int64),
		"teachers":    new(int64),
		"classes":     new(int64),
		"videos":      new(int64),
		"assessments": new(int64),
		"exams":       new(int64),
	}
	where := map[string]string{
		"students":    "student_school_id = ? AND student_deleted_at IS NULL",
		"teachers":    "teacher_school_id = ? AND teacher_deleted_at IS NULL",
		"classes":     "class_school_id = ? AND class_deleted_at IS NULL",
		"videos":      "video_school_id = ? AND video_deleted_at IS NULL",
		"assessments": "assessment_school_id = ? AND assessment_deleted_at IS NULL",
		"exams":       "exam_school_id = ? AND exam_deleted_at IS NULL",
	}

	g, gctx := errgroup.WithContext(c.Context())
	for table, dst := range counts {
		table, dst := table, dst
		g.Go(func() error {
			return ctl.DB.WithContext(gctx).Table(table).
				Where(where[table], schoolID).
				Count(dst).Error
		})
	}
	if err := g.Wait(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung dashboard")
	}

	out := fiber.Map{}
	for k, v := range counts {
		out[k] = *v
	}
	return helper.JsonOK(c, "OK", out)
}
