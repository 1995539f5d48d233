// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_email_school;index;column:student_school_id" json:"student_school_id"`
	StudentName     string    `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`
	StudentEmail    string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_students_email_school;column:student_email" json:"student_email"`
	StudentPassword string    `gorm:"type:varchar(100);not null;column:student_password" json:"-"`
	StudentPhone    *string   `gorm:"type:varchar(20);column:student_phone" json:"student_phone,omitempty"`

	// Board & nama sekolah: kosong berarti "warisi dari sekolah".
	// Diisi balik (lazy backfill) oleh board resolver, sekali saja;
	// nilai yang sudah terisi tidak pernah ditimpa.
	StudentBoard      *string `gorm:"type:varchar(20);column:student_board" json:"student_board,omitempty"`
	StudentSchoolName *string `gorm:"type:varchar(160);column:student_school_name" json:"student_school_name,omitempty"`

	StudentClassID *uuid.UUID `gorm:"type:uuid;column:student_class_id" json:"student_class_id,omitempty"`

	StudentIsActive  bool           `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

// StudentSubjectModel: subject yang di-assign langsung ke siswa (N:N).
type StudentSubjectModel struct {
	StudentSubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_subject_id" json:"student_subject_id"`

	StudentSubjectStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_subjects_pair;column:student_subject_student_id" json:"student_subject_student_id"`
	StudentSubjectSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_subjects_pair;column:student_subject_subject_id" json:"student_subject_subject_id"`
	StudentSubjectSchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:student_subject_school_id" json:"student_subject_school_id"`

	StudentSubjectCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_subject_created_at" json:"student_subject_created_at"`
}

func (StudentSubjectModel) TableName() string { return "student_subjects" }
