// file: internals/features/academics/teachers/service/assignment_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	teacherModel "sekolahku_backend/internals/features/academics/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

// AssignmentService: sisi guru dari assignment graph
// (teacher↔subject, teacher↔class, classNumber↔subject broadcast).
type AssignmentService struct {
	DB *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{DB: db}
}

func (s *AssignmentService) teacherInTenant(tx *gorm.DB, schoolID, teacherID uuid.UUID) error {
	var t teacherModel.TeacherModel
	if err := tx.Where("teacher_id = ? AND teacher_school_id = ?", teacherID, schoolID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound
		}
		return err
	}
	return nil
}

// AssignSubjectsToTeacher mengganti himpunan subject guru.
func (s *AssignmentService) AssignSubjectsToTeacher(ctx context.Context, schoolID, teacherID uuid.UUID, subjectIDs []uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.teacherInTenant(tx, schoolID, teacherID); err != nil {
			return err
		}

		var cnt int64
		if err := tx.Table("subjects").
			Where("subject_id IN ? AND subject_deleted_at IS NULL", subjectIDs).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt != int64(len(subjectIDs)) {
			return helper.ErrNotFound
		}

		if err := tx.Where("teacher_subject_teacher_id = ?", teacherID).
			Delete(&teacherModel.TeacherSubjectModel{}).Error; err != nil {
			return err
		}
		rows := make([]teacherModel.TeacherSubjectModel, 0, len(subjectIDs))
		for _, sid := range subjectIDs {
			rows = append(rows, teacherModel.TeacherSubjectModel{
				TeacherSubjectTeacherID: teacherID,
				TeacherSubjectSubjectID: sid,
				TeacherSubjectSchoolID:  schoolID,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// AssignClassesToTeacher menerima ref campuran (UUID class / classNumber),
// memvalidasi tiap ref resolve ke class milik tenant, lalu menyimpan bentuk
// mentahnya. Ref yang tidak resolve menolak seluruh operasi.
func (s *AssignmentService) AssignClassesToTeacher(ctx context.Context, schoolID, teacherID uuid.UUID, classRefs []string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.teacherInTenant(tx, schoolID, teacherID); err != nil {
			return err
		}

		parsed := make([]ClassRef, 0, len(classRefs))
		for _, raw := range classRefs {
			ref, ok := ParseClassRef(raw)
			if !ok {
				return helper.ErrNotFound
			}

			var cnt int64
			q := tx.Table("classes").Where("class_school_id = ? AND class_deleted_at IS NULL", schoolID)
			if ref.Kind == ClassRefByID {
				q = q.Where("class_id = ?", ref.ID)
			} else {
				q = q.Where("class_number = ?", ref.Number)
			}
			if err := q.Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return helper.ErrNotFound
			}
			parsed = append(parsed, ref)
		}

		if err := tx.Where("teacher_class_teacher_id = ?", teacherID).
			Delete(&teacherModel.TeacherClassModel{}).Error; err != nil {
			return err
		}
		rows := make([]teacherModel.TeacherClassModel, 0, len(parsed))
		for _, ref := range parsed {
			rows = append(rows, teacherModel.TeacherClassModel{
				TeacherClassTeacherID: teacherID,
				TeacherClassRef:       ref.Raw(),
				TeacherClassSchoolID:  schoolID,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// classSubjectStore: boundary broadcast classNumber→subject ke storage,
// interface supaya aturan broadcast-nya bisa diuji tanpa Postgres.
type classSubjectStore interface {
	ClassesByNumber(ctx context.Context, schoolID uuid.UUID, classNumber string) ([]classModel.ClassModel, error)
	CountSubjects(ctx context.Context, subjectIDs []uuid.UUID) (int64, error)
	// ReplaceClassSubjects mengganti seluruh himpunan subject satu class.
	ReplaceClassSubjects(ctx context.Context, schoolID, classID uuid.UUID, subjectIDs []uuid.UUID) error
}

// AssignSubjectsToClassNumber: subject diajarkan per JENJANG, bukan per
// section — broadcast ke SEMUA section dengan classNumber yang sama.
func (s *AssignmentService) AssignSubjectsToClassNumber(ctx context.Context, schoolID uuid.UUID, classNumber string, subjectIDs []uuid.UUID) (int, error) {
	sectionsTouched := 0

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := broadcastSubjectsToSections(ctx, &gormClassSubjectStore{tx: tx}, schoolID, classNumber, subjectIDs)
		if err != nil {
			return err
		}
		sectionsTouched = n
		return nil
	})

	return sectionsTouched, err
}

// broadcastSubjectsToSections: inti broadcast-nya. Satu section gagal =
// seluruh operasi gagal (dipanggil di dalam transaksi).
func broadcastSubjectsToSections(ctx context.Context, store classSubjectStore, schoolID uuid.UUID, classNumber string, subjectIDs []uuid.UUID) (int, error) {
	classes, err := store.ClassesByNumber(ctx, schoolID, classNumber)
	if err != nil {
		return 0, err
	}
	if len(classes) == 0 {
		return 0, helper.ErrNotFound
	}

	cnt, err := store.CountSubjects(ctx, subjectIDs)
	if err != nil {
		return 0, err
	}
	if cnt != int64(len(subjectIDs)) {
		return 0, helper.ErrNotFound
	}

	for _, cls := range classes {
		if err := store.ReplaceClassSubjects(ctx, schoolID, cls.ClassID, subjectIDs); err != nil {
			return 0, err
		}
	}
	return len(classes), nil
}

type gormClassSubjectStore struct {
	tx *gorm.DB
}

func (g *gormClassSubjectStore) ClassesByNumber(ctx context.Context, schoolID uuid.UUID, classNumber string) ([]classModel.ClassModel, error) {
	var classes []classModel.ClassModel
	err := g.tx.WithContext(ctx).
		Where("class_school_id = ? AND class_number = ?", schoolID, classNumber).
		Find(&classes).Error
	return classes, err
}

func (g *gormClassSubjectStore) CountSubjects(ctx context.Context, subjectIDs []uuid.UUID) (int64, error) {
	var cnt int64
	err := g.tx.WithContext(ctx).Table("subjects").
		Where("subject_id IN ? AND subject_deleted_at IS NULL", subjectIDs).
		Count(&cnt).Error
	return cnt, err
}

func (g *gormClassSubjectStore) ReplaceClassSubjects(ctx context.Context, schoolID, classID uuid.UUID, subjectIDs []uuid.UUID) error {
	if err := g.tx.WithContext(ctx).
		Where("class_subject_class_id = ?", classID).
		Delete(&classModel.ClassSubjectModel{}).Error; err != nil {
		return err
	}
	rows := make([]classModel.ClassSubjectModel, 0, len(subjectIDs))
	for _, sid := range subjectIDs {
		rows = append(rows, classModel.ClassSubjectModel{
			ClassSubjectClassID:   classID,
			ClassSubjectSubjectID: sid,
			ClassSubjectSchoolID:  schoolID,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return g.tx.WithContext(ctx).Create(&rows).Error
}
