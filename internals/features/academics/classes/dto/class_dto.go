// file: internals/features/academics/classes/dto/class_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/classes/model"
)

type CreateClassRequest struct {
	ClassNumber string `json:"class_number" validate:"required,max=10"`
	Section     string `json:"class_section" validate:"omitempty,max=5"`
}

func (r *CreateClassRequest) ToModel(schoolID uuid.UUID, board string) *model.ClassModel {
	section := strings.ToUpper(strings.TrimSpace(r.Section))
	if section == "" {
		section = "A"
	}
	return &model.ClassModel{
		ClassSchoolID: schoolID,
		ClassNumber:   strings.TrimSpace(r.ClassNumber),
		ClassSection:  section,
		ClassBoard:    board,
	}
}

type AssignSubjectsToClassNumberRequest struct {
	ClassNumber string      `json:"class_number" validate:"required,max=10"`
	SubjectIDs  []uuid.UUID `json:"subject_ids" validate:"required,min=1,dive,required"`
}
