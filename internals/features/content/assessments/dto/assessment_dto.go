// file: internals/features/content/assessments/dto/assessment_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/content/assessments/model"
)

type CreateAssessmentRequest struct {
	Title     string    `json:"assessment_title" validate:"required,max=200"`
	Desc      *string   `json:"assessment_desc" validate:"omitempty,max=2000"`
	SubjectID uuid.UUID `json:"assessment_subject_id" validate:"required"`
}

func (r *CreateAssessmentRequest) ToModel(schoolID, teacherID uuid.UUID, board string) *model.AssessmentModel {
	return &model.AssessmentModel{
		AssessmentSchoolID:  &schoolID,
		AssessmentCreatedBy: &teacherID,
		AssessmentBoard:     board,
		AssessmentSubjectID: r.SubjectID,
		AssessmentTitle:     strings.TrimSpace(r.Title),
		AssessmentDesc:      r.Desc,
	}
}

type CreateExclusiveAssessmentRequest struct {
	Title     string    `json:"assessment_title" validate:"required,max=200"`
	Desc      *string   `json:"assessment_desc" validate:"omitempty,max=2000"`
	Board     string    `json:"assessment_board" validate:"required,max=20"`
	SubjectID uuid.UUID `json:"assessment_subject_id" validate:"required"`
}

func (r *CreateExclusiveAssessmentRequest) ToModel() *model.AssessmentModel {
	return &model.AssessmentModel{
		AssessmentBoard:       strings.TrimSpace(r.Board),
		AssessmentSubjectID:   r.SubjectID,
		AssessmentTitle:       strings.TrimSpace(r.Title),
		AssessmentDesc:        r.Desc,
		AssessmentIsExclusive: true,
	}
}
