// file: internals/features/content/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	studentSvc "sekolahku_backend/internals/features/academics/students/service"
	"sekolahku_backend/internals/features/content/exams/dto"
	"sekolahku_backend/internals/features/content/exams/model"
	examSvc "sekolahku_backend/internals/features/content/exams/service"
	insightSvc "sekolahku_backend/internals/features/content/insights/service"
	visibilitySvc "sekolahku_backend/internals/features/content/visibility/service"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ExamController struct {
	DB         *gorm.DB
	Visibility *visibilitySvc.VisibilityService
	Ranking    *examSvc.RankingService
	Insight    *insightSvc.InsightService
	Resolver   *studentSvc.BoardResolver
}

func NewExamController(db *gorm.DB, insight *insightSvc.InsightService) *ExamController {
	return &ExamController{
		DB:         db,
		Visibility: visibilitySvc.NewVisibilityService(db),
		Ranking:    examSvc.NewRankingService(db),
		Insight:    insight,
		Resolver:   studentSvc.NewBoardResolver(db),
	}
}

var validate = validator.New()

// POST /admin/exams
// Exam admin selalu milik tenant; board diwariskan dari sekolah.
func (ctl *ExamController) CreateExam(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateExamRequest
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

	ex := req.ToModel(constants.RoleAdmin, &schoolID, sch.SchoolBoard)

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ex).Error; err != nil {
			return err
		}
		for _, q := range req.Questions {
			marks := q.Marks
			if marks == 0 {
				marks = 1
			}
			qm := model.QuestionModel{
				QuestionExamID:   ex.ExamID,
				QuestionSchoolID: &schoolID,
				QuestionText:     q.Text,
				QuestionOptions:  q.Options,
				QuestionAnswer:   q.Answer,
				QuestionMarks:    marks,
			}
			if err := tx.Create(&qm).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan exam")
	}

	return helper.JsonCreated(c, "Exam berhasil dibuat", ex)
}

// POST /superadmin/exams — exam board-wide tanpa tenant.
func (ctl *ExamController) CreateBoardExam(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidBoard(req.Board) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Board tidak dikenal: "+req.Board)
	}

	ex := req.ToModel(constants.RoleSuperAdmin, nil, req.Board)

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ex).Error; err != nil {
			return err
		}
		for _, q := range req.Questions {
			marks := q.Marks
			if marks == 0 {
				marks = 1
			}
			qm := model.QuestionModel{
				QuestionExamID:  ex.ExamID,
				QuestionText:    q.Text,
				QuestionOptions: q.Options,
				QuestionAnswer:  q.Answer,
				QuestionMarks:   marks,
			}
			if err := tx.Create(&qm).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan exam board")
	}

	return helper.JsonCreated(c, "Exam board berhasil dibuat", ex)
}

// GET /admin/exams
func (ctl *ExamController) ListAdminExams(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 50, 200)

	var total int64
	q := ctl.DB.WithContext(c.Context()).
		Model(&model.ExamModel{}).
		Where("exam_school_id = ?", schoolID)
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung exam")
	}

	var exams []model.ExamModel
	if err := q.Order("exam_created_at DESC").
		Limit(p.PerPage).Offset(p.Offset).
		Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil exam")
	}

	return helper.JsonList(c, "OK", exams, helper.BuildPagination(p, total, len(exams)))
}

// GET /student/exams
func (ctl *ExamController) ListStudentExams(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	list, err := ctl.Visibility.VisibleExams(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		if errors.Is(err, helper.ErrBoardUnresolved) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrBoardUnresolved.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve exam siswa")
	}

	return helper.JsonListWithReason(c, "OK", list.Items, list.Reason)
}

// POST /student/exam-results
// Hasil immutable: unique (student, exam) — pengulangan ditolak 409.
func (ctl *ExamController) SubmitResult(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	board, err := ctl.Resolver.ResolveStudentBoard(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, helper.ErrBoardUnresolved) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrBoardUnresolved.Error())
		}
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve board siswa")
	}

	// Exam harus ada, aktif, dan satu board dengan siswa.
	var n int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.ExamModel{}).
		Where("exam_id = ? AND exam_board = ? AND exam_is_active = TRUE", req.ExamID, board).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek exam")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
	}

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	res := model.ExamResultModel{
		ExamResultStudentID:   studentID,
		ExamResultExamID:      req.ExamID,
		ExamResultSchoolID:    &schoolID,
		ExamResultBoard:       board,
		ExamResultPercentage:  req.Percentage,
		ExamResultCompletedAt: completedAt,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&res).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Hasil exam ini sudah pernah direkam")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan hasil exam")
	}

	return helper.JsonCreated(c, "Hasil exam berhasil direkam", dto.NewExamResultResponse(&res))
}

// GET /student/exams/:id/ranking
func (ctl *ExamController) GetRanking(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID exam tidak valid")
	}

	r, err := ctl.Ranking.ComputeRanking(c.Context(), studentID, examID)
	if err != nil {
		if errors.Is(err, helper.ErrNotAttempted) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotAttempted.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung ranking")
	}

	return helper.JsonOK(c, "OK", r)
}

// GET /admin/exams/:id/insight
func (ctl *ExamController) GetInsight(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID exam tidak valid")
	}

	in, err := ctl.Insight.ExamSummary(c.Context(), examID)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal susun insight exam")
	}

	return helper.JsonOK(c, "OK", in)
}

// PATCH /admin/exam-results/:id/deactivate
// Satu-satunya mutasi yang diizinkan pada hasil: soft-deactivation.
func (ctl *ExamController) DeactivateResult(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID hasil tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&model.ExamResultModel{}).
		Where("exam_result_id = ? AND exam_result_school_id = ?", resultID, schoolID).
		Update("exam_result_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal nonaktifkan hasil")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
	}

	return helper.JsonUpdated(c, "Hasil exam dinonaktifkan", fiber.Map{"exam_result_id": resultID})
}
