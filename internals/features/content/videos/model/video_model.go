// file: internals/features/content/videos/model/video_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoModel: konten video. Dua jalur pembuatan:
//   - guru → tenant + creator terisi, is_exclusive = false
//   - super-admin → school_id NULL, board terisi, is_exclusive = true
//
// video_subject_ref sengaja TEXT mentah (bukan FK): data historis bisa berisi
// UUID subject, UUID yang sudah di-stringify, atau NAMA subject. Pencocokan
// wajib lewat visibility.MatchesSubjectRef yang mencoba ketiga bentuk.
type VideoModel struct {
	VideoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:video_id" json:"video_id"`

	VideoSchoolID   *uuid.UUID `gorm:"type:uuid;index;column:video_school_id" json:"video_school_id,omitempty"`
	VideoCreatedBy  *uuid.UUID `gorm:"type:uuid;index;column:video_created_by" json:"video_created_by,omitempty"`
	VideoBoard      string     `gorm:"type:varchar(20);not null;column:video_board" json:"video_board"`
	VideoSubjectRef string     `gorm:"type:varchar(160);not null;column:video_subject_ref" json:"video_subject_ref"`

	VideoTitle string `gorm:"type:varchar(200);not null;column:video_title" json:"video_title"`
	VideoURL   string `gorm:"type:text;not null;column:video_url" json:"video_url"`

	VideoIsExclusive bool           `gorm:"not null;default:false;column:video_is_exclusive" json:"video_is_exclusive"`
	VideoCreatedAt   time.Time      `gorm:"type:timestamptz;not null;default:now();column:video_created_at" json:"video_created_at"`
	VideoUpdatedAt   time.Time      `gorm:"type:timestamptz;not null;default:now();column:video_updated_at" json:"video_updated_at"`
	VideoDeletedAt   gorm.DeletedAt `gorm:"column:video_deleted_at;index" json:"video_deleted_at,omitempty"`
}

func (VideoModel) TableName() string { return "videos" }
