// file: internals/features/content/assessments/model/assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentModel: latihan/kuis. Berbeda dari video, subject-nya FK bertipe
// (skema baru), jadi tidak perlu pencocokan multi-bentuk.
type AssessmentModel struct {
	AssessmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assessment_id" json:"assessment_id"`

	AssessmentSchoolID  *uuid.UUID `gorm:"type:uuid;index;column:assessment_school_id" json:"assessment_school_id,omitempty"`
	AssessmentCreatedBy *uuid.UUID `gorm:"type:uuid;index;column:assessment_created_by" json:"assessment_created_by,omitempty"`
	AssessmentBoard     string     `gorm:"type:varchar(20);not null;column:assessment_board" json:"assessment_board"`
	AssessmentSubjectID uuid.UUID  `gorm:"type:uuid;not null;index;column:assessment_subject_id" json:"assessment_subject_id"`

	AssessmentTitle string `gorm:"type:varchar(200);not null;column:assessment_title" json:"assessment_title"`
	AssessmentDesc  *string `gorm:"type:text;column:assessment_desc" json:"assessment_desc,omitempty"`

	AssessmentIsExclusive bool           `gorm:"not null;default:false;column:assessment_is_exclusive" json:"assessment_is_exclusive"`
	AssessmentCreatedAt   time.Time      `gorm:"type:timestamptz;not null;default:now();column:assessment_created_at" json:"assessment_created_at"`
	AssessmentUpdatedAt   time.Time      `gorm:"type:timestamptz;not null;default:now();column:assessment_updated_at" json:"assessment_updated_at"`
	AssessmentDeletedAt   gorm.DeletedAt `gorm:"column:assessment_deleted_at;index" json:"assessment_deleted_at,omitempty"`
}

func (AssessmentModel) TableName() string { return "assessments" }
