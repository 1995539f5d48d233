// file: internals/features/content/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExamModel. exam_created_by_role menentukan kepemilikan tenant:
//   - "admin"       → exam_school_id WAJIB terisi (milik tenant pembuat)
//   - "super-admin" → exam_school_id NULL, board-wide
type ExamModel struct {
	ExamID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_id" json:"exam_id"`

	ExamSchoolID      *uuid.UUID `gorm:"type:uuid;index;column:exam_school_id" json:"exam_school_id,omitempty"`
	ExamCreatedByRole string     `gorm:"type:varchar(20);not null;column:exam_created_by_role" json:"exam_created_by_role"`
	ExamBoard         string     `gorm:"type:varchar(20);not null;column:exam_board" json:"exam_board"`
	ExamSubjectID     *uuid.UUID `gorm:"type:uuid;index;column:exam_subject_id" json:"exam_subject_id,omitempty"`

	ExamTitle       string `gorm:"type:varchar(200);not null;column:exam_title" json:"exam_title"`
	ExamDurationMin int    `gorm:"not null;default:60;column:exam_duration_min" json:"exam_duration_min"`

	ExamIsActive  bool           `gorm:"not null;default:true;column:exam_is_active" json:"exam_is_active"`
	ExamCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:exam_created_at" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:exam_updated_at" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }

// QuestionModel: soal ujian, opsi jawaban disimpan JSON.
type QuestionModel struct {
	QuestionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_id" json:"question_id"`

	QuestionExamID   uuid.UUID  `gorm:"type:uuid;not null;index;column:question_exam_id" json:"question_exam_id"`
	QuestionSchoolID *uuid.UUID `gorm:"type:uuid;index;column:question_school_id" json:"question_school_id,omitempty"`

	QuestionText    string         `gorm:"type:text;not null;column:question_text" json:"question_text"`
	QuestionOptions datatypes.JSON `gorm:"type:jsonb;column:question_options" json:"question_options"`
	QuestionAnswer  string         `gorm:"type:varchar(10);not null;column:question_answer" json:"-"`
	QuestionMarks   int            `gorm:"not null;default:1;column:question_marks" json:"question_marks"`

	QuestionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:question_created_at" json:"question_created_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index" json:"question_deleted_at,omitempty"`
}

func (QuestionModel) TableName() string { return "questions" }

// ExamResultModel: immutable setelah dibuat, kecuali soft-deactivation.
// DUA FK bernuansa tenant: exam_result_school_id = tenant PEREKAM hasil;
// exam pembuat bisa tenant lain (atau super-admin). Cascade delete wajib
// menyapu dua-duanya.
type ExamResultModel struct {
	ExamResultID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_result_id" json:"exam_result_id"`

	ExamResultStudentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_exam_results_student_exam;column:exam_result_student_id" json:"exam_result_student_id"`
	ExamResultExamID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_exam_results_student_exam;column:exam_result_exam_id" json:"exam_result_exam_id"`
	ExamResultSchoolID  *uuid.UUID `gorm:"type:uuid;index;column:exam_result_school_id" json:"exam_result_school_id,omitempty"`
	ExamResultBoard     string     `gorm:"type:varchar(20);not null;index;column:exam_result_board" json:"exam_result_board"`

	ExamResultPercentage  float64   `gorm:"not null;column:exam_result_percentage" json:"exam_result_percentage"`
	ExamResultCompletedAt time.Time `gorm:"type:timestamptz;not null;column:exam_result_completed_at" json:"exam_result_completed_at"`

	ExamResultIsActive  bool      `gorm:"not null;default:true;column:exam_result_is_active" json:"exam_result_is_active"`
	ExamResultCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:exam_result_created_at" json:"exam_result_created_at"`
}

func (ExamResultModel) TableName() string { return "exam_results" }
