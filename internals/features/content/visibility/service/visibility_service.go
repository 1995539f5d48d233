// file: internals/features/content/visibility/service/visibility_service.go
package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentSvc "sekolahku_backend/internals/features/academics/students/service"
	assessmentModel "sekolahku_backend/internals/features/content/assessments/model"
	examModel "sekolahku_backend/internals/features/content/exams/model"
	videoModel "sekolahku_backend/internals/features/content/videos/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

// Reason code untuk hasil kosong yang BUKAN error.
const ReasonSubjectHasNoTeacher = "subject_has_no_teacher"

// VisibilityService menghitung konten yang boleh dilihat satu siswa.
// Jaminan: konten subject yang TIDAK punya guru di tenant siswa tidak pernah
// bocor, meskipun subject-nya ada di katalog board.
type VisibilityService struct {
	DB       *gorm.DB
	Resolver *studentSvc.BoardResolver
}

func NewVisibilityService(db *gorm.DB) *VisibilityService {
	return &VisibilityService{DB: db, Resolver: studentSvc.NewBoardResolver(db)}
}

/* =========================================================
   Index subject → guru (pure, dipakai juga oleh test)
   ========================================================= */

// TeacherSubjectRow: satu baris join teacher_subjects yang sudah difilter
// per tenant.
type TeacherSubjectRow struct {
	TeacherID uuid.UUID
	SubjectID uuid.UUID
}

// SubjectTeacherIndex: subject → daftar guru pengajar di tenant itu.
// Subject tanpa guru TIDAK punya entry (itulah exclusion law-nya).
type SubjectTeacherIndex map[uuid.UUID][]uuid.UUID

func BuildSubjectTeacherIndex(rows []TeacherSubjectRow) SubjectTeacherIndex {
	idx := make(SubjectTeacherIndex, len(rows))
	for _, r := range rows {
		idx[r.SubjectID] = append(idx[r.SubjectID], r.TeacherID)
	}
	return idx
}

// TeacherSet menggabungkan semua guru dari index jadi satu set.
func (idx SubjectTeacherIndex) TeacherSet() map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool)
	for _, teachers := range idx {
		for _, t := range teachers {
			set[t] = true
		}
	}
	return set
}

// MatchesSubjectRef: video_subject_ref adalah TEXT warisan, bisa berisi
// UUID subject, UUID ter-stringify (dengan atau tanpa tanda kutip/spasi),
// atau NAMA subject. Ketiga bentuk dicoba sebelum menyerah.
func MatchesSubjectRef(ref string, subjectID uuid.UUID, subjectName string) bool {
	s := strings.TrimSpace(ref)
	s = strings.Trim(s, `"'`)
	if s == "" {
		return false
	}
	// 1) bentuk UUID persis
	if id, err := uuid.Parse(s); err == nil {
		return id == subjectID
	}
	// 2) bentuk string id (case-insensitive, sudah tercakup Parse di atas
	//    untuk format valid; sisanya jatuh ke nama)
	// 3) nama subject
	return strings.EqualFold(s, subjectName)
}

/* =========================================================
   Resolusi per tipe konten
   ========================================================= */

type VisibleList[T any] struct {
	Items  []T    `json:"items"`
	Reason string `json:"reason,omitempty"`
}

type studentScope struct {
	student  studentModel.StudentModel
	board    string
	subjects []subjectModel.SubjectModel
	index    SubjectTeacherIndex
}

// loadScope: langkah 1–3 algoritma — siswa, board efektif, katalog subject
// board, dan index subject→guru milik tenant siswa.
func (s *VisibilityService) loadScope(ctx context.Context, studentID uuid.UUID) (*studentScope, error) {
	var st studentModel.StudentModel
	if err := s.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}

	board, err := s.Resolver.ResolveStudentBoard(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var subjects []subjectModel.SubjectModel
	if err := s.DB.WithContext(ctx).
		Where("subject_board = ? AND subject_is_active = TRUE", board).
		Find(&subjects).Error; err != nil {
		return nil, err
	}

	subjectIDs := make([]uuid.UUID, 0, len(subjects))
	for _, sub := range subjects {
		subjectIDs = append(subjectIDs, sub.SubjectID)
	}

	var rows []TeacherSubjectRow
	if len(subjectIDs) > 0 {
		if err := s.DB.WithContext(ctx).Table("teacher_subjects AS ts").
			Select("ts.teacher_subject_teacher_id AS teacher_id, ts.teacher_subject_subject_id AS subject_id").
			Joins("JOIN teachers AS t ON t.teacher_id = ts.teacher_subject_teacher_id AND t.teacher_deleted_at IS NULL").
			Where("ts.teacher_subject_school_id = ? AND ts.teacher_subject_subject_id IN ?", st.StudentSchoolID, subjectIDs).
			Scan(&rows).Error; err != nil {
			return nil, err
		}
	}

	return &studentScope{
		student:  st,
		board:    board,
		subjects: subjects,
		index:    BuildSubjectTeacherIndex(rows),
	}, nil
}

func (sc *studentScope) subjectByID(id uuid.UUID) (subjectModel.SubjectModel, bool) {
	for _, sub := range sc.subjects {
		if sub.SubjectID == id {
			return sub, true
		}
	}
	return subjectModel.SubjectModel{}, false
}

// VisibleVideos: langkah 4–6 untuk video. subjectFilter nil = semua subject
// yang punya guru. Filter ke subject tanpa guru → list kosong + reason,
// BUKAN error.
func (s *VisibilityService) VisibleVideos(ctx context.Context, studentID uuid.UUID, subjectFilter *uuid.UUID) (*VisibleList[videoModel.VideoModel], error) {
	sc, err := s.loadScope(ctx, studentID)
	if err != nil {
		return nil, err
	}

	out := &VisibleList[videoModel.VideoModel]{Items: []videoModel.VideoModel{}}

	if subjectFilter != nil {
		if _, ok := sc.subjectByID(*subjectFilter); !ok {
			return nil, helper.ErrNotFound
		}
		if len(sc.index[*subjectFilter]) == 0 {
			out.Reason = ReasonSubjectHasNoTeacher
			return out, nil
		}
	}

	// Kandidat tenant-scoped + kandidat exclusive board-wide, satu read
	// per koleksi (konsistensi cukup per-read, lihat model konkurensi).
	var tenantVideos []videoModel.VideoModel
	if err := s.DB.WithContext(ctx).
		Where("video_school_id = ?", sc.student.StudentSchoolID).
		Find(&tenantVideos).Error; err != nil {
		return nil, err
	}

	var exclusiveVideos []videoModel.VideoModel
	if err := s.DB.WithContext(ctx).
		Where("video_is_exclusive = TRUE AND video_board = ? AND video_school_id IS NULL", sc.board).
		Find(&exclusiveVideos).Error; err != nil {
		return nil, err
	}

	for _, v := range tenantVideos {
		if v.VideoCreatedBy == nil {
			continue
		}
		matched := false
		for _, sub := range sc.subjects {
			if subjectFilter != nil && sub.SubjectID != *subjectFilter {
				continue
			}
			teachers := sc.index[sub.SubjectID]
			if len(teachers) == 0 {
				continue // subject yatim: tidak pernah tampil
			}
			if !MatchesSubjectRef(v.VideoSubjectRef, sub.SubjectID, sub.SubjectName) {
				continue
			}
			for _, t := range teachers {
				if t == *v.VideoCreatedBy {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if matched {
			out.Items = append(out.Items, v)
		}
	}

	// Exclusive board-wide ikut hanya saat tidak ada filter subject spesifik
	// (ref-nya juga dicoba dicocokkan saat ada filter).
	for _, v := range exclusiveVideos {
		if subjectFilter != nil {
			sub, _ := sc.subjectByID(*subjectFilter)
			if !MatchesSubjectRef(v.VideoSubjectRef, sub.SubjectID, sub.SubjectName) {
				continue
			}
		}
		out.Items = append(out.Items, v)
	}

	sort.SliceStable(out.Items, func(i, j int) bool {
		return out.Items[i].VideoCreatedAt.After(out.Items[j].VideoCreatedAt)
	})
	return out, nil
}

// VisibleAssessments: subject assessment sudah FK bertipe, jadi bisa difilter
// di SQL; exclusion law tetap ditegakkan lewat index.
func (s *VisibilityService) VisibleAssessments(ctx context.Context, studentID uuid.UUID, subjectFilter *uuid.UUID) (*VisibleList[assessmentModel.AssessmentModel], error) {
	sc, err := s.loadScope(ctx, studentID)
	if err != nil {
		return nil, err
	}

	out := &VisibleList[assessmentModel.AssessmentModel]{Items: []assessmentModel.AssessmentModel{}}

	if subjectFilter != nil {
		if _, ok := sc.subjectByID(*subjectFilter); !ok {
			return nil, helper.ErrNotFound
		}
		if len(sc.index[*subjectFilter]) == 0 {
			out.Reason = ReasonSubjectHasNoTeacher
			return out, nil
		}
	}

	// Kumpulan subject yang lolos (punya guru) + guru pengajarnya.
	allowedSubjects := make([]uuid.UUID, 0, len(sc.index))
	for sid, teachers := range sc.index {
		if subjectFilter != nil && sid != *subjectFilter {
			continue
		}
		if len(teachers) > 0 {
			allowedSubjects = append(allowedSubjects, sid)
		}
	}

	if len(allowedSubjects) > 0 {
		teacherSet := sc.index.TeacherSet()
		teacherIDs := make([]uuid.UUID, 0, len(teacherSet))
		for t := range teacherSet {
			teacherIDs = append(teacherIDs, t)
		}

		var tenantItems []assessmentModel.AssessmentModel
		if err := s.DB.WithContext(ctx).
			Where("assessment_school_id = ? AND assessment_subject_id IN ? AND assessment_created_by IN ?",
				sc.student.StudentSchoolID, allowedSubjects, teacherIDs).
			Find(&tenantItems).Error; err != nil {
			return nil, err
		}

		// Creator harus guru yang MENGAJAR subject itu, bukan sekadar guru tenant.
		for _, a := range tenantItems {
			if a.AssessmentCreatedBy == nil {
				continue
			}
			for _, t := range sc.index[a.AssessmentSubjectID] {
				if t == *a.AssessmentCreatedBy {
					out.Items = append(out.Items, a)
					break
				}
			}
		}
	}

	var exclusiveItems []assessmentModel.AssessmentModel
	q := s.DB.WithContext(ctx).
		Where("assessment_is_exclusive = TRUE AND assessment_board = ? AND assessment_school_id IS NULL", sc.board)
	if subjectFilter != nil {
		q = q.Where("assessment_subject_id = ?", *subjectFilter)
	}
	if err := q.Find(&exclusiveItems).Error; err != nil {
		return nil, err
	}
	out.Items = append(out.Items, exclusiveItems...)

	sort.SliceStable(out.Items, func(i, j int) bool {
		return out.Items[i].AssessmentCreatedAt.After(out.Items[j].AssessmentCreatedAt)
	})
	return out, nil
}

// VisibleExams: ujian tenant siswa + ujian super-admin se-board.
// Kepemilikan exam ditentukan created_by_role, bukan subject-teacher map.
func (s *VisibilityService) VisibleExams(ctx context.Context, studentID uuid.UUID) (*VisibleList[examModel.ExamModel], error) {
	sc, err := s.loadScope(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var exams []examModel.ExamModel
	if err := s.DB.WithContext(ctx).
		Where("exam_is_active = TRUE").
		Where(
			s.DB.Where("exam_school_id = ?", sc.student.StudentSchoolID).
				Or("exam_created_by_role = ? AND exam_board = ? AND exam_school_id IS NULL", "super-admin", sc.board),
		).
		Order("exam_created_at DESC").
		Find(&exams).Error; err != nil {
		return nil, err
	}

	return &VisibleList[examModel.ExamModel]{Items: exams}, nil
}
