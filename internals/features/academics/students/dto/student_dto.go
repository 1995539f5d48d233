// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/students/model"
)

type CreateStudentRequest struct {
	Name     string  `json:"student_name" validate:"required,max=120"`
	Email    string  `json:"student_email" validate:"required,email,max=120"`
	Password string  `json:"student_password" validate:"required,min=6,max=72"`
	Phone    *string `json:"student_phone" validate:"omitempty,max=20"`

	ClassID *uuid.UUID `json:"student_class_id" validate:"omitempty"`
}

func (r *CreateStudentRequest) ToModel(schoolID uuid.UUID, hashedPassword, board, schoolName string) *model.StudentModel {
	st := &model.StudentModel{
		StudentSchoolID: schoolID,
		StudentName:     strings.TrimSpace(r.Name),
		StudentEmail:    strings.ToLower(strings.TrimSpace(r.Email)),
		StudentPassword: hashedPassword,
		StudentPhone:    r.Phone,
		StudentClassID:  r.ClassID,
	}
	// Board/nama sekolah langsung diwariskan saat create (tidak menunggu
	// lazy backfill) — field sendiri tetap menang kalau nanti diisi.
	if board != "" {
		st.StudentBoard = &board
	}
	if schoolName != "" {
		st.StudentSchoolName = &schoolName
	}
	return st
}

type AssignClassRequest struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
}

type AssignSubjectsRequest struct {
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"required,dive,required"`
}
