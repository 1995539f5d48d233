package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "sekolahku_backend/internals/helpers"
)

func TestCascadeStepsMencakupSemuaKoleksi(t *testing.T) {
	steps := cascadeSteps()

	got := map[string]bool{}
	for _, st := range steps {
		assert.False(t, got[st.Collection], "langkah %s duplikat", st.Collection)
		got[st.Collection] = true
		require.NotNil(t, st.Run, "langkah %s tanpa Run", st.Collection)
	}

	// Setiap koleksi ber-tenant wajib ikut tersapu; exam_results dua jalur
	// karena punya dua FK bernuansa tenant.
	for _, want := range []string{
		"students", "teachers", "classes",
		"student_subjects", "teacher_subjects", "teacher_classes", "class_subjects",
		"videos", "assessments", "questions", "streams",
		"exam_results(recorded)", "exam_results(authored)", "exams",
	} {
		assert.True(t, got[want], "koleksi %s tidak tersapu", want)
	}
}

func TestCascadeStepsUrutanExamResultsSebelumExams(t *testing.T) {
	// Subquery exam_results(authored) membaca tabel exams, jadi sapuan
	// exams harus datang SETELAHNYA.
	steps := cascadeSteps()
	idxAuthored, idxExams := -1, -1
	for i, st := range steps {
		switch st.Collection {
		case "exam_results(authored)":
			idxAuthored = i
		case "exams":
			idxExams = i
		}
	}
	require.NotEqual(t, -1, idxAuthored)
	require.NotEqual(t, -1, idxExams)
	assert.Less(t, idxAuthored, idxExams)
}

func TestAggregatePartialFailure(t *testing.T) {
	assert.NoError(t, AggregatePartialFailure("cascade delete school", nil))
	assert.NoError(t, AggregatePartialFailure("cascade delete school", []helper.CollectionFailure{}))

	err := AggregatePartialFailure("cascade delete school", []helper.CollectionFailure{
		{Collection: "videos", Reason: "timeout"},
		{Collection: "streams", Reason: "connection reset"},
	})
	require.Error(t, err)

	var pf *helper.PartialFailureError
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, "cascade delete school", pf.Op)
	require.Len(t, pf.Failures, 2)
	assert.Equal(t, "videos", pf.Failures[0].Collection)

	// Pesan error menyebut koleksi yang gagal, buat operator.
	assert.Contains(t, err.Error(), "videos")
	assert.Contains(t, err.Error(), "streams")
}
