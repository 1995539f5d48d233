// file: internals/features/content/exams/service/ranking_service.go
package service

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentSvc "sekolahku_backend/internals/features/academics/students/service"
	examModel "sekolahku_backend/internals/features/content/exams/model"
	helper "sekolahku_backend/internals/helpers"
)

type RankingResult struct {
	Rank          int     `json:"rank"`
	TotalStudents int     `json:"total_students"`
	Percentile    float64 `json:"percentile"`
}

// RankingService: peringkat hasil ujian pada kohort SE-BOARD (lintas tenant,
// bukan per sekolah).
type RankingService struct {
	DB       *gorm.DB
	Resolver *studentSvc.BoardResolver
}

func NewRankingService(db *gorm.DB) *RankingService {
	return &RankingService{DB: db, Resolver: studentSvc.NewBoardResolver(db)}
}

func (s *RankingService) ComputeRanking(ctx context.Context, studentID, examID uuid.UUID) (*RankingResult, error) {
	board, err := s.Resolver.ResolveStudentBoard(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var results []examModel.ExamResultModel
	if err := s.DB.WithContext(ctx).
		Where("exam_result_exam_id = ? AND exam_result_board = ? AND exam_result_is_active = TRUE", examID, board).
		Find(&results).Error; err != nil {
		return nil, err
	}

	return RankAmong(results, studentID)
}

// RankAmong: bagian murni dari engine. Urut skor desc; seri dipecah
// deterministik — completed_at lebih awal menang, lalu id hasil.
// (Kebijakan seri eksplisit, tidak bergantung urutan natural store.)
func RankAmong(results []examModel.ExamResultModel, studentID uuid.UUID) (*RankingResult, error) {
	if len(results) == 0 {
		return nil, helper.ErrNotAttempted
	}

	sorted := make([]examModel.ExamResultModel, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ExamResultPercentage != b.ExamResultPercentage {
			return a.ExamResultPercentage > b.ExamResultPercentage
		}
		if !a.ExamResultCompletedAt.Equal(b.ExamResultCompletedAt) {
			return a.ExamResultCompletedAt.Before(b.ExamResultCompletedAt)
		}
		return a.ExamResultID.String() < b.ExamResultID.String()
	})

	rank := 0
	for i, r := range sorted {
		if r.ExamResultStudentID == studentID {
			rank = i + 1
			break
		}
	}
	if rank == 0 {
		return nil, helper.ErrNotAttempted
	}

	total := len(sorted)
	percentile := math.Round(float64(total-(rank-1)) / float64(total) * 100)

	return &RankingResult{
		Rank:          rank,
		TotalStudents: total,
		Percentile:    percentile,
	}, nil
}
