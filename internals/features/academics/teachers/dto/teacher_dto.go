// file: internals/features/academics/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/teachers/model"
)

type CreateTeacherRequest struct {
	Name     string  `json:"teacher_name" validate:"required,max=120"`
	Email    string  `json:"teacher_email" validate:"required,email,max=120"`
	Password string  `json:"teacher_password" validate:"required,min=6,max=72"`
	Phone    *string `json:"teacher_phone" validate:"omitempty,max=20"`
}

func (r *CreateTeacherRequest) ToModel(schoolID uuid.UUID, hashedPassword string) *model.TeacherModel {
	return &model.TeacherModel{
		TeacherSchoolID: schoolID,
		TeacherName:     strings.TrimSpace(r.Name),
		TeacherEmail:    strings.ToLower(strings.TrimSpace(r.Email)),
		TeacherPassword: hashedPassword,
		TeacherPhone:    r.Phone,
	}
}

type AssignSubjectsRequest struct {
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"required,dive,required"`
}

// Ref kelas dikirim string mentah: bisa UUID class atau classNumber.
type AssignClassesRequest struct {
	ClassRefs []string `json:"class_refs" validate:"required,dive,required"`
}
