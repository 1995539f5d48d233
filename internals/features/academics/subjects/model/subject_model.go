// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel: katalog global per board, dibuat super-admin,
// dipakai bersama oleh semua tenant pada board itu (tanpa school FK).
type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	SubjectName  string `gorm:"type:varchar(120);not null;uniqueIndex:uq_subjects_name_board;column:subject_name" json:"subject_name"`
	SubjectBoard string `gorm:"type:varchar(20);not null;uniqueIndex:uq_subjects_name_board;column:subject_board" json:"subject_board"`

	// Opsional: subject khusus jenjang tertentu (mis. hanya kelas 10).
	SubjectClassNumber *int `gorm:"column:subject_class_number" json:"subject_class_number,omitempty"`

	SubjectIsActive  bool           `gorm:"not null;default:true;column:subject_is_active" json:"subject_is_active"`
	SubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
