// file: internals/features/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel: satu rombel (classNumber + section) milik satu tenant.
// (class_number, class_section, class_school_id) unik — arbiter terakhir
// saat dua import balapan bikin kelas yang sama.
type ClassModel struct {
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	ClassSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classes_number_section_school;column:class_school_id" json:"class_school_id"`
	ClassNumber   string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_classes_number_section_school;column:class_number" json:"class_number"`
	ClassSection  string    `gorm:"type:varchar(5);not null;uniqueIndex:uq_classes_number_section_school;column:class_section" json:"class_section"`

	// Board disalin dari sekolah saat create (denormalisasi, bukan lookup).
	ClassBoard string `gorm:"type:varchar(20);not null;column:class_board" json:"class_board"`

	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassSubjectModel: subject yang diajarkan pada satu class.
// Assign "ke classNumber" akan menulis baris ini untuk SEMUA section.
type ClassSubjectModel struct {
	ClassSubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_subject_id" json:"class_subject_id"`

	ClassSubjectClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_subjects_pair;column:class_subject_class_id" json:"class_subject_class_id"`
	ClassSubjectSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_subjects_pair;column:class_subject_subject_id" json:"class_subject_subject_id"`
	ClassSubjectSchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:class_subject_school_id" json:"class_subject_school_id"`

	ClassSubjectCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:class_subject_created_at" json:"class_subject_created_at"`
}

func (ClassSubjectModel) TableName() string { return "class_subjects" }
