// file: internals/features/academics/students/service/import_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	classModel "sekolahku_backend/internals/features/academics/classes/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
)

// Kolom minimal file import: name, email, phone, class label.
const importMinColumns = 4

type RowError struct {
	Row    int    `json:"row"` // 1-indexed, mengikuti baris file
	Reason string `json:"reason"`
}

type ImportReport struct {
	CreatedCount   int        `json:"created_count"`
	ClassesCreated int        `json:"classes_created"`
	RowErrors      []RowError `json:"row_errors"`
}

// importStore: boundary ke entity store, dibikin interface supaya engine
// bisa diuji tanpa Postgres.
type importStore interface {
	GetSchool(ctx context.Context, schoolID uuid.UUID) (*schoolModel.SchoolModel, error)
	StudentEmailExists(ctx context.Context, schoolID uuid.UUID, email string) (bool, error)
	FindClassID(ctx context.Context, schoolID uuid.UUID, number, section string) (uuid.UUID, error)
	CreateClass(ctx context.Context, cls *classModel.ClassModel) error
	CreateStudent(ctx context.Context, st *studentModel.StudentModel) error
}

type ImportService struct {
	store importStore
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{store: &gormImportStore{db: db}}
}

// ImportStudents memproses satu batch tabular.
// Precondition (cek SEKALI sebelum baris pertama): sekolah ada & board terisi.
// Setelah itu kegagalan apa pun hanya menggugurkan barisnya sendiri.
func (s *ImportService) ImportStudents(ctx context.Context, schoolID uuid.UUID, rows [][]string) (*ImportReport, error) {
	sch, err := s.store.GetSchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	if sch.SchoolBoard == "" {
		return nil, helper.ErrBoardUnresolved
	}

	// Password default sama untuk semua siswa baru → hash sekali saja.
	defaultHash, err := bcrypt.GenerateFromPassword([]byte(configs.DefaultStudentPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{RowErrors: []RowError{}}

	// Memo kelas per batch: (number|section) → class_id.
	// Baris-baris kelas yang sama pakai satu record, tidak balapan create.
	classMemo := map[string]uuid.UUID{}

	for i, cols := range rows {
		rowNum := i + 1

		if len(cols) < importMinColumns {
			report.RowErrors = append(report.RowErrors, RowError{
				Row:    rowNum,
				Reason: fmt.Sprintf("jumlah kolom %d, minimal %d", len(cols), importMinColumns),
			})
			continue
		}

		name := strings.TrimSpace(cols[0])
		email := strings.ToLower(strings.TrimSpace(cols[1]))
		phone := strings.TrimSpace(cols[2])
		classLabel := cols[3]

		if name == "" || email == "" {
			report.RowErrors = append(report.RowErrors, RowError{Row: rowNum, Reason: "name/email kosong"})
			continue
		}

		exists, err := s.store.StudentEmailExists(ctx, schoolID, email)
		if err != nil {
			report.RowErrors = append(report.RowErrors, RowError{Row: rowNum, Reason: "gagal cek email: " + err.Error()})
			continue
		}
		if exists {
			report.RowErrors = append(report.RowErrors, RowError{Row: rowNum, Reason: "email " + email + " sudah terdaftar"})
			continue
		}

		number, section, ok := ParseClassLabel(classLabel)
		if !ok {
			report.RowErrors = append(report.RowErrors, RowError{Row: rowNum, Reason: "label kelas tidak dikenali: " + classLabel})
			continue
		}

		classID, created, err := s.getOrCreateClass(ctx, classMemo, sch, number, section)
		if err != nil {
			report.RowErrors = append(report.RowErrors, RowError{Row: rowNum, Reason: "gagal siapkan kelas: " + err.Error()})
			continue
		}
		if created {
			report.ClassesCreated++
		}

		st := &studentModel.StudentModel{
			StudentSchoolID: schoolID,
			StudentName:     name,
			StudentEmail:    email,
			StudentPassword: string(defaultHash),
			StudentBoard:    strPtr(sch.SchoolBoard),
			StudentClassID:  &classID,
		}
		if phone != "" {
			st.StudentPhone = &phone
		}
		if sch.SchoolName != "" {
			st.StudentSchoolName = strPtr(sch.SchoolName)
		}

		if err := s.store.CreateStudent(ctx, st); err != nil {
			if helper.IsDuplicateKey(err) {
				report.RowErrors = append(report.RowErrors, RowError{Row: rowNum, Reason: "email " + email + " sudah terdaftar"})
			} else {
				report.RowErrors = append(report.RowErrors, RowError{Row: rowNum, Reason: "gagal simpan siswa: " + err.Error()})
			}
			continue
		}
		report.CreatedCount++
	}

	return report, nil
}

// getOrCreateClass: memo dulu, lalu DB, lalu create. Duplicate key saat
// create berarti batch lain menang duluan → re-read record pemenang.
func (s *ImportService) getOrCreateClass(ctx context.Context, memo map[string]uuid.UUID, sch *schoolModel.SchoolModel, number, section string) (uuid.UUID, bool, error) {
	key := number + "|" + section
	if id, ok := memo[key]; ok {
		return id, false, nil
	}

	if id, err := s.store.FindClassID(ctx, sch.SchoolID, number, section); err == nil {
		memo[key] = id
		return id, false, nil
	} else if !errors.Is(err, helper.ErrNotFound) {
		return uuid.Nil, false, err
	}

	cls := &classModel.ClassModel{
		ClassSchoolID: sch.SchoolID,
		ClassNumber:   number,
		ClassSection:  section,
		ClassBoard:    sch.SchoolBoard,
	}
	if err := s.store.CreateClass(ctx, cls); err != nil {
		if helper.IsDuplicateKey(err) {
			id, rerr := s.store.FindClassID(ctx, sch.SchoolID, number, section)
			if rerr != nil {
				return uuid.Nil, false, rerr
			}
			memo[key] = id
			return id, false, nil
		}
		return uuid.Nil, false, err
	}

	memo[key] = cls.ClassID
	return cls.ClassID, true, nil
}

func strPtr(s string) *string { return &s }

/* =========================================================
   Implementasi store GORM
   ========================================================= */

type gormImportStore struct {
	db *gorm.DB
}

func (g *gormImportStore) GetSchool(ctx context.Context, schoolID uuid.UUID) (*schoolModel.SchoolModel, error) {
	var sch schoolModel.SchoolModel
	if err := g.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		First(&sch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &sch, nil
}

func (g *gormImportStore) StudentEmailExists(ctx context.Context, schoolID uuid.UUID, email string) (bool, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Table("students").
		Where("student_school_id = ? AND student_email = ? AND student_deleted_at IS NULL", schoolID, email).
		Count(&cnt).Error
	return cnt > 0, err
}

func (g *gormImportStore) FindClassID(ctx context.Context, schoolID uuid.UUID, number, section string) (uuid.UUID, error) {
	var cls classModel.ClassModel
	if err := g.db.WithContext(ctx).
		Where("class_school_id = ? AND class_number = ? AND class_section = ?", schoolID, number, section).
		First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, helper.ErrNotFound
		}
		return uuid.Nil, err
	}
	return cls.ClassID, nil
}

func (g *gormImportStore) CreateClass(ctx context.Context, cls *classModel.ClassModel) error {
	return g.db.WithContext(ctx).Create(cls).Error
}

func (g *gormImportStore) CreateStudent(ctx context.Context, st *studentModel.StudentModel) error {
	return g.db.WithContext(ctx).Create(st).Error
}
