// file: internals/features/content/videos/dto/video_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/content/videos/model"
)

type CreateVideoRequest struct {
	Title      string `json:"video_title" validate:"required,max=200"`
	URL        string `json:"video_url" validate:"required,url"`
	SubjectRef string `json:"video_subject_ref" validate:"required,max=160"`
}

func (r *CreateVideoRequest) ToModel(schoolID, teacherID uuid.UUID, board string) *model.VideoModel {
	return &model.VideoModel{
		VideoSchoolID:   &schoolID,
		VideoCreatedBy:  &teacherID,
		VideoBoard:      board,
		VideoSubjectRef: strings.TrimSpace(r.SubjectRef),
		VideoTitle:      strings.TrimSpace(r.Title),
		VideoURL:        strings.TrimSpace(r.URL),
	}
}

type CreateExclusiveVideoRequest struct {
	Title      string `json:"video_title" validate:"required,max=200"`
	URL        string `json:"video_url" validate:"required,url"`
	Board      string `json:"video_board" validate:"required,max=20"`
	SubjectRef string `json:"video_subject_ref" validate:"required,max=160"`
}

func (r *CreateExclusiveVideoRequest) ToModel() *model.VideoModel {
	return &model.VideoModel{
		VideoBoard:       strings.TrimSpace(r.Board),
		VideoSubjectRef:  strings.TrimSpace(r.SubjectRef),
		VideoTitle:       strings.TrimSpace(r.Title),
		VideoURL:         strings.TrimSpace(r.URL),
		VideoIsExclusive: true,
	}
}
