// file: internals/features/content/streams/model/stream_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StreamModel: sesi live milik tenant (ikut tersapu cascade delete).
type StreamModel struct {
	StreamID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:stream_id" json:"stream_id"`

	StreamSchoolID  uuid.UUID  `gorm:"type:uuid;not null;index;column:stream_school_id" json:"stream_school_id"`
	StreamCreatedBy *uuid.UUID `gorm:"type:uuid;column:stream_created_by" json:"stream_created_by,omitempty"`

	StreamTitle   string     `gorm:"type:varchar(200);not null;column:stream_title" json:"stream_title"`
	StreamURL     string     `gorm:"type:text;not null;column:stream_url" json:"stream_url"`
	StreamStartAt *time.Time `gorm:"type:timestamptz;column:stream_start_at" json:"stream_start_at,omitempty"`

	StreamIsLive    bool           `gorm:"not null;default:false;column:stream_is_live" json:"stream_is_live"`
	StreamCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:stream_created_at" json:"stream_created_at"`
	StreamDeletedAt gorm.DeletedAt `gorm:"column:stream_deleted_at;index" json:"stream_deleted_at,omitempty"`
}

func (StreamModel) TableName() string { return "streams" }
