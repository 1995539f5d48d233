// file: internals/features/schools/school/service/cascade_delete.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
)

// CascadeDeleteService menghapus tenant beserta SEMUA entity yang scoped ke
// id-nya, lintas koleksi, TANPA transaksi tunggal (saga: langkah-langkah
// idempoten + verifikasi, bukan rollback). Jaminan terminal: tidak ada
// dokumen yang masih menunjuk tenant id, dan email admin bisa dipakai ulang.
type CascadeDeleteService struct {
	DB *gorm.DB
}

func NewCascadeDeleteService(db *gorm.DB) *CascadeDeleteService {
	return &CascadeDeleteService{DB: db}
}

// deleteStep: satu koleksi + delete idempoten by tenant id.
type deleteStep struct {
	Collection string
	Run        func(ctx context.Context, db *gorm.DB, schoolID uuid.UUID) error
}

func hardDeleteWhere(table, where string) func(context.Context, *gorm.DB, uuid.UUID) error {
	return func(ctx context.Context, db *gorm.DB, schoolID uuid.UUID) error {
		return db.WithContext(ctx).Exec("DELETE FROM "+table+" WHERE "+where, schoolID).Error
	}
}

// cascadeSteps: daftar lengkap sapuan. exam_results disapu DUA kali jalur:
// by tenant perekam DAN by exam yang DIBUAT tenant (dua FK independen).
func cascadeSteps() []deleteStep {
	return []deleteStep{
		{"student_subjects", hardDeleteWhere("student_subjects", "student_subject_school_id = ?")},
		{"teacher_subjects", hardDeleteWhere("teacher_subjects", "teacher_subject_school_id = ?")},
		{"teacher_classes", hardDeleteWhere("teacher_classes", "teacher_class_school_id = ?")},
		{"class_subjects", hardDeleteWhere("class_subjects", "class_subject_school_id = ?")},
		{"students", hardDeleteWhere("students", "student_school_id = ?")},
		{"teachers", hardDeleteWhere("teachers", "teacher_school_id = ?")},
		{"classes", hardDeleteWhere("classes", "class_school_id = ?")},
		{"videos", hardDeleteWhere("videos", "video_school_id = ?")},
		{"assessments", hardDeleteWhere("assessments", "assessment_school_id = ?")},
		{"questions", hardDeleteWhere("questions", "question_school_id = ?")},
		{"streams", hardDeleteWhere("streams", "stream_school_id = ?")},
		{"exam_results(recorded)", hardDeleteWhere("exam_results", "exam_result_school_id = ?")},
		{"exam_results(authored)", func(ctx context.Context, db *gorm.DB, schoolID uuid.UUID) error {
			// hasil untuk ujian BUATAN tenant ini, walau direkam tenant lain
			return db.WithContext(ctx).Exec(
				`DELETE FROM exam_results WHERE exam_result_exam_id IN
				   (SELECT exam_id FROM exams WHERE exam_school_id = ?)`, schoolID).Error
		}},
		// exams terakhir di kelompok konten: subquery di atas masih butuh barisnya
		{"exams", hardDeleteWhere("exams", "exam_school_id = ?")},
	}
}

// DeleteSchool menjalankan protokol lengkap.
func (s *CascadeDeleteService) DeleteSchool(ctx context.Context, schoolID uuid.UUID) error {
	var sch schoolModel.SchoolModel
	if err := s.DB.WithContext(ctx).
		Where("school_id = ?", schoolID).
		First(&sch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound
		}
		return err
	}
	adminEmail := sch.SchoolAdminEmail

	// exam_results(authored) harus selesai SEBELUM exams disapu;
	// sisanya saling independen → fan-out paralel.
	steps := cascadeSteps()
	var ordered, parallel []deleteStep
	for _, st := range steps {
		switch st.Collection {
		case "exam_results(authored)", "exams":
			ordered = append(ordered, st)
		default:
			parallel = append(parallel, st)
		}
	}

	failures := collectFailures(ctx, s.DB, schoolID, parallel)

	for _, st := range ordered {
		if err := st.Run(ctx, s.DB, schoolID); err != nil {
			failures = append(failures, helper.CollectionFailure{Collection: st.Collection, Reason: err.Error()})
		}
	}

	// Hapus record tenant-nya sendiri (hard delete: email harus bebas lagi).
	if err := s.DB.WithContext(ctx).Exec(
		"DELETE FROM schools WHERE school_id = ?", schoolID).Error; err != nil {
		failures = append(failures, helper.CollectionFailure{Collection: "schools", Reason: err.Error()})
	}

	// Verifikasi: record tenant benar-benar hilang? Duplikat lama dengan
	// email sama bisa selamat — sapu sekali lagi by email.
	var survivors int64
	if err := s.DB.WithContext(ctx).Table("schools").
		Where("school_admin_email = ?", adminEmail).
		Count(&survivors).Error; err != nil {
		failures = append(failures, helper.CollectionFailure{Collection: "schools(verify)", Reason: err.Error()})
	} else if survivors > 0 {
		log.Printf("[WARN] cascade delete: %d record sekolah selamat untuk email %s, sapu ulang", survivors, adminEmail)
		if err := s.DB.WithContext(ctx).Exec(
			"DELETE FROM schools WHERE school_admin_email = ?", adminEmail).Error; err != nil {
			failures = append(failures, helper.CollectionFailure{Collection: "schools(by-email)", Reason: err.Error()})
		}
	}

	return AggregatePartialFailure("cascade delete school", failures)
}

// collectFailures menjalankan langkah-langkah independen secara paralel dan
// mengumpulkan kegagalan per koleksi (tidak berhenti di kegagalan pertama).
func collectFailures(ctx context.Context, db *gorm.DB, schoolID uuid.UUID, steps []deleteStep) []helper.CollectionFailure {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(6)

	results := make([]error, len(steps))
	for i, st := range steps {
		i, st := i, st
		g.Go(func() error {
			results[i] = st.Run(gctx, db, schoolID)
			return nil // error disimpan, bukan dilempar: semua langkah tetap jalan
		})
	}
	_ = g.Wait()

	var failures []helper.CollectionFailure
	for i, err := range results {
		if err != nil {
			failures = append(failures, helper.CollectionFailure{
				Collection: steps[i].Collection,
				Reason:     err.Error(),
			})
		}
	}
	return failures
}

// AggregatePartialFailure membungkus daftar kegagalan jadi satu error
// agregat; nil kalau semua langkah sukses.
func AggregatePartialFailure(op string, failures []helper.CollectionFailure) error {
	if len(failures) == 0 {
		return nil
	}
	return &helper.PartialFailureError{Op: op, Failures: failures}
}
