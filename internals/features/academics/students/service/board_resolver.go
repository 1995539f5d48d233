// file: internals/features/academics/students/service/board_resolver.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	teacherModel "sekolahku_backend/internals/features/academics/teachers/model"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
)

// resolverStore: boundary resolver ke entity store, interface supaya aturan
// pewarisan bisa diuji tanpa Postgres (pola yang sama dengan importStore).
type resolverStore interface {
	GetStudent(ctx context.Context, studentID uuid.UUID) (*studentModel.StudentModel, error)
	GetTeacher(ctx context.Context, teacherID uuid.UUID) (*teacherModel.TeacherModel, error)
	GetSchool(ctx context.Context, schoolID uuid.UUID) (*schoolModel.SchoolModel, error)
	// BackfillStudentBoard hanya mengisi field yang masih kosong (guarded
	// update); schoolName kosong = jangan sentuh nama.
	BackfillStudentBoard(ctx context.Context, studentID uuid.UUID, board, schoolName string) error
}

// BoardResolver: hitung board efektif student/teacher.
// Aturan: field sendiri kalau terisi; kalau kosong ambil board sekolah lalu
// tulis balik sekali (lazy backfill). Nilai yang sudah terisi TIDAK ditimpa,
// dan backfill membeku — perubahan board sekolah setelahnya tidak menular.
type BoardResolver struct {
	store resolverStore
}

func NewBoardResolver(db *gorm.DB) *BoardResolver {
	return &BoardResolver{store: &gormResolverStore{db: db}}
}

// ResolveStudentBoard mengembalikan board efektif siswa.
// Resolusi kedua untuk siswa yang sama tidak menulis apa-apa lagi (idempoten).
func (r *BoardResolver) ResolveStudentBoard(ctx context.Context, studentID uuid.UUID) (string, error) {
	st, err := r.store.GetStudent(ctx, studentID)
	if err != nil {
		return "", err
	}

	if st.StudentBoard != nil && *st.StudentBoard != "" {
		return *st.StudentBoard, nil
	}

	sch, err := r.store.GetSchool(ctx, st.StudentSchoolID)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return "", helper.ErrBoardUnresolved
		}
		return "", err
	}
	if sch.SchoolBoard == "" {
		return "", helper.ErrBoardUnresolved
	}

	// Backfill board + nama sekolah sekalian, supaya resolusi berikutnya O(1).
	schoolName := ""
	if (st.StudentSchoolName == nil || *st.StudentSchoolName == "") && sch.SchoolName != "" {
		schoolName = sch.SchoolName
	}
	if err := r.store.BackfillStudentBoard(ctx, studentID, sch.SchoolBoard, schoolName); err != nil {
		return "", err
	}

	return sch.SchoolBoard, nil
}

// ResolveTeacherBoard: guru tidak menyimpan board sendiri, selalu ikut sekolah.
func (r *BoardResolver) ResolveTeacherBoard(ctx context.Context, teacherID uuid.UUID) (string, error) {
	t, err := r.store.GetTeacher(ctx, teacherID)
	if err != nil {
		return "", err
	}
	return r.resolveSchoolBoard(ctx, t.TeacherSchoolID)
}

func (r *BoardResolver) resolveSchoolBoard(ctx context.Context, schoolID uuid.UUID) (string, error) {
	sch, err := r.store.GetSchool(ctx, schoolID)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return "", helper.ErrBoardUnresolved
		}
		return "", err
	}
	if sch.SchoolBoard == "" {
		return "", helper.ErrBoardUnresolved
	}
	return sch.SchoolBoard, nil
}

/* =========================================================
   Implementasi store GORM
   ========================================================= */

type gormResolverStore struct {
	db *gorm.DB
}

func (g *gormResolverStore) GetStudent(ctx context.Context, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	var st studentModel.StudentModel
	if err := g.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (g *gormResolverStore) GetTeacher(ctx context.Context, teacherID uuid.UUID) (*teacherModel.TeacherModel, error) {
	var t teacherModel.TeacherModel
	if err := g.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (g *gormResolverStore) GetSchool(ctx context.Context, schoolID uuid.UUID) (*schoolModel.SchoolModel, error) {
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

func (g *gormResolverStore) BackfillStudentBoard(ctx context.Context, studentID uuid.UUID, board, schoolName string) error {
	patch := map[string]any{"student_board": board}
	if schoolName != "" {
		patch["student_school_name"] = schoolName
	}
	// Guard di WHERE: balapan dengan backfill lain tidak pernah menimpa
	// nilai yang sudah terisi.
	return g.db.WithContext(ctx).
		Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND (student_board IS NULL OR student_board = '')", studentID).
		Updates(patch).Error
}

/* =========================================================
   Assignment graph sisi siswa
   ========================================================= */

// CheckSubjectSetBoard: aturan assignment subject. Semua subject yang diminta
// harus ketemu, dan semuanya satu board dengan siswa. Pelanggaran satu saja
// menolak SELURUH permintaan — set lama tidak boleh tersentuh.
func CheckSubjectSetBoard(studentBoard string, requested int, subjectBoards []string) error {
	if len(subjectBoards) != requested {
		return helper.ErrNotFound
	}
	for _, b := range subjectBoards {
		if b != studentBoard {
			return helper.ErrCrossBoardViolation
		}
	}
	return nil
}

type StudentAssignmentService struct {
	DB       *gorm.DB
	Resolver *BoardResolver
}

func NewStudentAssignmentService(db *gorm.DB) *StudentAssignmentService {
	return &StudentAssignmentService{DB: db, Resolver: NewBoardResolver(db)}
}

// AssignClassToStudent memasang siswa ke satu class milik tenant yang sama.
func (s *StudentAssignmentService) AssignClassToStudent(ctx context.Context, schoolID, studentID, classID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st studentModel.StudentModel
		if err := tx.Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
			First(&st).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound
			}
			return err
		}

		var cls classModel.ClassModel
		if err := tx.Where("class_id = ? AND class_school_id = ?", classID, schoolID).
			First(&cls).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound
			}
			return err
		}

		return tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", studentID).
			Update("student_class_id", classID).Error
	})
}

// AssignSubjectsToStudent mengganti himpunan subject siswa.
// Subject lintas board DITOLAK total (set lama tidak berubah).
func (s *StudentAssignmentService) AssignSubjectsToStudent(ctx context.Context, schoolID, studentID uuid.UUID, subjectIDs []uuid.UUID) error {
	board, err := s.Resolver.ResolveStudentBoard(ctx, studentID)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st studentModel.StudentModel
		if err := tx.Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
			First(&st).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound
			}
			return err
		}

		// Semua subject harus ada DAN satu board dengan siswa,
		// dicek dulu sebelum menyentuh set lama.
		var boards []string
		if err := tx.Table("subjects").
			Where("subject_id IN ? AND subject_deleted_at IS NULL", subjectIDs).
			Pluck("subject_board", &boards).Error; err != nil {
			return err
		}
		if err := CheckSubjectSetBoard(board, len(subjectIDs), boards); err != nil {
			return err
		}

		if err := tx.Where("student_subject_student_id = ?", studentID).
			Delete(&studentModel.StudentSubjectModel{}).Error; err != nil {
			return err
		}
		rows := make([]studentModel.StudentSubjectModel, 0, len(subjectIDs))
		for _, sid := range subjectIDs {
			rows = append(rows, studentModel.StudentSubjectModel{
				StudentSubjectStudentID: studentID,
				StudentSubjectSubjectID: sid,
				StudentSubjectSchoolID:  schoolID,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
