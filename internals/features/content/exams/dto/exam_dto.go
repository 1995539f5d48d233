// file: internals/features/content/exams/dto/exam_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/content/exams/model"
)

type QuestionInput struct {
	Text    string         `json:"question_text" validate:"required"`
	Options datatypes.JSON `json:"question_options" validate:"required"`
	Answer  string         `json:"question_answer" validate:"required,max=10"`
	Marks   int            `json:"question_marks" validate:"omitempty,min=1"`
}

type CreateExamRequest struct {
	Title       string          `json:"exam_title" validate:"required,max=200"`
	SubjectID   *uuid.UUID      `json:"exam_subject_id"`
	DurationMin int             `json:"exam_duration_min" validate:"omitempty,min=5,max=300"`
	Board       string          `json:"exam_board" validate:"omitempty,max=20"`
	Questions   []QuestionInput `json:"questions" validate:"omitempty,dive"`
}

// ToModel: admin → tenant terisi; super-admin → tenant NULL + board eksplisit.
func (r *CreateExamRequest) ToModel(role string, schoolID *uuid.UUID, board string) *model.ExamModel {
	dur := r.DurationMin
	if dur == 0 {
		dur = 60
	}
	m := &model.ExamModel{
		ExamCreatedByRole: role,
		ExamBoard:         board,
		ExamSubjectID:     r.SubjectID,
		ExamTitle:         strings.TrimSpace(r.Title),
		ExamDurationMin:   dur,
	}
	if role == constants.RoleAdmin {
		m.ExamSchoolID = schoolID
	}
	return m
}

type SubmitResultRequest struct {
	ExamID      uuid.UUID  `json:"exam_id" validate:"required"`
	Percentage  float64    `json:"percentage" validate:"min=0,max=100"`
	CompletedAt *time.Time `json:"completed_at"`
}

type ExamResultResponse struct {
	ResultID    uuid.UUID `json:"exam_result_id"`
	ExamID      uuid.UUID `json:"exam_id"`
	Percentage  float64   `json:"percentage"`
	CompletedAt time.Time `json:"completed_at"`
}

func NewExamResultResponse(m *model.ExamResultModel) *ExamResultResponse {
	return &ExamResultResponse{
		ResultID:    m.ExamResultID,
		ExamID:      m.ExamResultExamID,
		Percentage:  m.ExamResultPercentage,
		CompletedAt: m.ExamResultCompletedAt,
	}
}
