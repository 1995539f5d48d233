// file: internals/features/schools/school/dto/school_dto.go
package dto

import (
	"strings"

	model "sekolahku_backend/internals/features/schools/school/model"
)

type CreateSchoolRequest struct {
	AdminEmail    string `json:"school_admin_email" validate:"required,email,max=120"`
	AdminPassword string `json:"school_admin_password" validate:"required,min=6,max=72"`
	AdminName     string `json:"school_admin_name" validate:"omitempty,max=120"`

	// Board & nama boleh menyusul lewat update profil.
	Board      string `json:"school_board" validate:"omitempty,max=20"`
	SchoolName string `json:"school_name" validate:"omitempty,max=160"`
}

func (r *CreateSchoolRequest) ToModel(hashedPassword string) *model.SchoolModel {
	return &model.SchoolModel{
		SchoolAdminEmail:    strings.ToLower(strings.TrimSpace(r.AdminEmail)),
		SchoolAdminPassword: hashedPassword,
		SchoolAdminName:     strings.TrimSpace(r.AdminName),
		SchoolBoard:         strings.TrimSpace(r.Board),
		SchoolName:          strings.TrimSpace(r.SchoolName),
	}
}

type UpdateSchoolProfileRequest struct {
	Board      *string `json:"school_board" validate:"omitempty,max=20"`
	SchoolName *string `json:"school_name" validate:"omitempty,max=160"`
	AdminName  *string `json:"school_admin_name" validate:"omitempty,max=120"`
	IsActive   *bool   `json:"school_is_active" validate:"omitempty"`
}

type SchoolResponse struct {
	SchoolID         string `json:"school_id"`
	SchoolAdminEmail string `json:"school_admin_email"`
	SchoolAdminName  string `json:"school_admin_name"`
	SchoolBoard      string `json:"school_board"`
	SchoolName       string `json:"school_name"`
	SchoolIsActive   bool   `json:"school_is_active"`
}

func NewSchoolResponse(m *model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:         m.SchoolID.String(),
		SchoolAdminEmail: m.SchoolAdminEmail,
		SchoolAdminName:  m.SchoolAdminName,
		SchoolBoard:      m.SchoolBoard,
		SchoolName:       m.SchoolName,
		SchoolIsActive:   m.SchoolIsActive,
	}
}
