// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	model "sekolahku_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Name        string `json:"subject_name" validate:"required,max=120"`
	Board       string `json:"subject_board" validate:"required,max=20"`
	ClassNumber *int   `json:"subject_class_number" validate:"omitempty,min=1,max=12"`
}

func (r *CreateSubjectRequest) ToModel() *model.SubjectModel {
	return &model.SubjectModel{
		SubjectName:        strings.TrimSpace(r.Name),
		SubjectBoard:       strings.TrimSpace(r.Board),
		SubjectClassNumber: r.ClassNumber,
	}
}
