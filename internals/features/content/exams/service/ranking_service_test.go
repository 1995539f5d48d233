package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	examModel "sekolahku_backend/internals/features/content/exams/model"
	helper "sekolahku_backend/internals/helpers"
)

func makeResult(studentID uuid.UUID, pct float64, completedAt time.Time) examModel.ExamResultModel {
	return examModel.ExamResultModel{
		ExamResultID:          uuid.New(),
		ExamResultStudentID:   studentID,
		ExamResultExamID:      uuid.New(),
		ExamResultBoard:       "CBSE",
		ExamResultPercentage:  pct,
		ExamResultCompletedAt: completedAt,
	}
}

func TestRankAmong(t *testing.T) {
	now := time.Now()
	target := uuid.New()

	results := []examModel.ExamResultModel{
		makeResult(uuid.New(), 95, now),
		makeResult(uuid.New(), 87, now),
		makeResult(uuid.New(), 78, now),
		makeResult(target, 92, now),
		makeResult(uuid.New(), 65, now),
	}

	r, err := RankAmong(results, target)
	require.NoError(t, err)

	assert.Equal(t, 2, r.Rank)
	assert.Equal(t, 5, r.TotalStudents)
	assert.Equal(t, float64(80), r.Percentile)
}

func TestRankAmongPesertaTunggal(t *testing.T) {
	target := uuid.New()
	r, err := RankAmong([]examModel.ExamResultModel{
		makeResult(target, 40, time.Now()),
	}, target)
	require.NoError(t, err)

	assert.Equal(t, 1, r.Rank)
	assert.Equal(t, 1, r.TotalStudents)
	assert.Equal(t, float64(100), r.Percentile)
}

func TestRankAmongSeriDipecahWaktuSelesai(t *testing.T) {
	now := time.Now()
	cepat := uuid.New()
	lambat := uuid.New()

	results := []examModel.ExamResultModel{
		makeResult(lambat, 90, now.Add(10*time.Minute)),
		makeResult(cepat, 90, now),
	}

	r, err := RankAmong(results, cepat)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Rank, "skor seri: yang selesai lebih awal menang")

	r, err = RankAmong(results, lambat)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Rank)
}

func TestRankAmongSeriTotalDipecahID(t *testing.T) {
	// Skor dan waktu selesai identik → urutan ditentukan id hasil,
	// yang penting: deterministik antar pemanggilan.
	now := time.Now()
	a := uuid.New()
	b := uuid.New()
	results := []examModel.ExamResultModel{
		makeResult(a, 75, now),
		makeResult(b, 75, now),
	}

	r1, err := RankAmong(results, a)
	require.NoError(t, err)
	r2, err := RankAmong([]examModel.ExamResultModel{results[1], results[0]}, a)
	require.NoError(t, err)

	assert.Equal(t, r1.Rank, r2.Rank, "urutan input tidak boleh mengubah peringkat")
}

func TestRankAmongBelumMengerjakan(t *testing.T) {
	// Kohort kosong.
	_, err := RankAmong(nil, uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotAttempted)

	// Kohort ada tapi siswa ini tidak di dalamnya.
	_, err = RankAmong([]examModel.ExamResultModel{
		makeResult(uuid.New(), 88, time.Now()),
	}, uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotAttempted)
}
