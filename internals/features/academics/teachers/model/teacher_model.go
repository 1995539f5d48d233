// file: internals/features/academics/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`

	TeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teachers_email_school;index;column:teacher_school_id" json:"teacher_school_id"`
	TeacherName     string    `gorm:"type:varchar(120);not null;column:teacher_name" json:"teacher_name"`
	TeacherEmail    string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_teachers_email_school;column:teacher_email" json:"teacher_email"`
	TeacherPassword string    `gorm:"type:varchar(100);not null;column:teacher_password" json:"-"`
	TeacherPhone    *string   `gorm:"type:varchar(20);column:teacher_phone" json:"teacher_phone,omitempty"`

	TeacherIsActive  bool           `gorm:"not null;default:true;column:teacher_is_active" json:"teacher_is_active"`
	TeacherCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_updated_at" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

// TeacherSubjectModel: himpunan subject yang diajar guru (N:N).
type TeacherSubjectModel struct {
	TeacherSubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_subject_id" json:"teacher_subject_id"`

	TeacherSubjectTeacherID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_subjects_pair;column:teacher_subject_teacher_id" json:"teacher_subject_teacher_id"`
	TeacherSubjectSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_subjects_pair;column:teacher_subject_subject_id" json:"teacher_subject_subject_id"`
	TeacherSubjectSchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_subject_school_id" json:"teacher_subject_school_id"`

	TeacherSubjectCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:teacher_subject_created_at" json:"teacher_subject_created_at"`
}

func (TeacherSubjectModel) TableName() string { return "teacher_subjects" }

// TeacherClassModel: "assigned class" guru. Ref-nya POLIMORFIK warisan data
// lama: bisa UUID class, bisa string classNumber. Disimpan mentah di
// teacher_class_ref, dinormalisasi lewat service.ParseClassRef sebelum
// dibandingkan — jangan pernah bandingkan string mentah langsung.
type TeacherClassModel struct {
	TeacherClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_class_id" json:"teacher_class_id"`

	TeacherClassTeacherID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_classes_pair;column:teacher_class_teacher_id" json:"teacher_class_teacher_id"`
	TeacherClassRef       string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_teacher_classes_pair;column:teacher_class_ref" json:"teacher_class_ref"`
	TeacherClassSchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_class_school_id" json:"teacher_class_school_id"`

	TeacherClassCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:teacher_class_created_at" json:"teacher_class_created_at"`
}

func (TeacherClassModel) TableName() string { return "teacher_classes" }
