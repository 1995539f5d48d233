// file: internals/features/schools/school/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel = tenant. Satu baris = satu admin pemilik satu sekolah.
// Semua entity lain membawa FK *_school_id ke sini.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	// Identitas admin (login)
	SchoolAdminEmail    string `gorm:"type:varchar(120);not null;uniqueIndex:uq_schools_admin_email;column:school_admin_email" json:"school_admin_email"`
	SchoolAdminPassword string `gorm:"type:varchar(100);not null;column:school_admin_password" json:"-"`
	SchoolAdminName     string `gorm:"type:varchar(120);column:school_admin_name" json:"school_admin_name"`

	// Profil sekolah. Board & nama boleh kosong saat dibuat super-admin,
	// tapi WAJIB terisi sebelum tenant bikin class/student.
	SchoolBoard string `gorm:"type:varchar(20);column:school_board" json:"school_board"`
	SchoolName  string `gorm:"type:varchar(160);column:school_name" json:"school_name"`

	SchoolIsActive  bool           `gorm:"not null;default:true;column:school_is_active" json:"school_is_active"`
	SchoolCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_updated_at" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

// HasCompleteProfile: precondition pembuatan class & student.
func (s *SchoolModel) HasCompleteProfile() bool {
	return s.SchoolBoard != "" && s.SchoolName != ""
}
