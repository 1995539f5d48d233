// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/academics/subjects/dto"
	"sekolahku_backend/internals/features/academics/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

// Subject global per board, hanya super-admin yang menulis.
type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

// POST /super-admin/subjects
func (ctl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidBoard(req.Board) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Board tidak dikenal: "+req.Board)
	}

	sub := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(sub).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Subject "+req.Name+" sudah ada di board "+req.Board)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan subject")
	}

	return helper.JsonCreated(c, "Subject berhasil dibuat", sub)
}

// GET /subjects?board=CBSE — katalog yang dilihat tenant.
func (ctl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	board := c.Query("board")
	if board != "" && !constants.IsValidBoard(board) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Board tidak dikenal: "+board)
	}

	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.SubjectModel{}).
		Where("subject_is_active = TRUE")
	if board != "" {
		q = q.Where("subject_board = ?", board)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung subject")
	}

	var subjects []model.SubjectModel
	if err := q.Order("subject_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil subject")
	}

	return helper.JsonList(c, "OK", subjects, helper.BuildPagination(p, total, len(subjects)))
}

// DELETE /super-admin/subjects/:id (soft delete)
func (ctl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	res := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ?", c.Params("id")).
		Delete(&model.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
	}
	return helper.JsonDeleted(c, "Subject dihapus", fiber.Map{"subject_id": c.Params("id")})
}
