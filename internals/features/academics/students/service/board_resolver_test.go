package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentModel "sekolahku_backend/internals/features/academics/students/model"
	teacherModel "sekolahku_backend/internals/features/academics/teachers/model"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
)

// fakeResolverStore meniru semantik guarded backfill di gormResolverStore:
// tulis hanya kalau board masih kosong, nama hanya kalau dikirim.
type fakeResolverStore struct {
	students map[uuid.UUID]*studentModel.StudentModel
	teachers map[uuid.UUID]*teacherModel.TeacherModel
	schools  map[uuid.UUID]*schoolModel.SchoolModel

	backfillCalls int
}

func (f *fakeResolverStore) GetStudent(_ context.Context, id uuid.UUID) (*studentModel.StudentModel, error) {
	st, ok := f.students[id]
	if !ok {
		return nil, helper.ErrNotFound
	}
	cp := *st
	return &cp, nil
}

func (f *fakeResolverStore) GetTeacher(_ context.Context, id uuid.UUID) (*teacherModel.TeacherModel, error) {
	t, ok := f.teachers[id]
	if !ok {
		return nil, helper.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeResolverStore) GetSchool(_ context.Context, id uuid.UUID) (*schoolModel.SchoolModel, error) {
	sch, ok := f.schools[id]
	if !ok {
		return nil, helper.ErrNotFound
	}
	cp := *sch
	return &cp, nil
}

func (f *fakeResolverStore) BackfillStudentBoard(_ context.Context, id uuid.UUID, board, schoolName string) error {
	f.backfillCalls++
	st, ok := f.students[id]
	if !ok {
		return nil
	}
	if st.StudentBoard == nil || *st.StudentBoard == "" {
		b := board
		st.StudentBoard = &b
		if schoolName != "" {
			n := schoolName
			st.StudentSchoolName = &n
		}
	}
	return nil
}

func newResolverFixture() (*fakeResolverStore, uuid.UUID, uuid.UUID) {
	schoolID := uuid.New()
	studentID := uuid.New()
	store := &fakeResolverStore{
		students: map[uuid.UUID]*studentModel.StudentModel{
			studentID: {StudentID: studentID, StudentSchoolID: schoolID},
		},
		teachers: map[uuid.UUID]*teacherModel.TeacherModel{},
		schools: map[uuid.UUID]*schoolModel.SchoolModel{
			schoolID: {SchoolID: schoolID, SchoolBoard: "CBSE", SchoolName: "SMA Harapan"},
		},
	}
	return store, schoolID, studentID
}

func TestResolveStudentBoardBackfillSekali(t *testing.T) {
	store, _, studentID := newResolverFixture()
	r := &BoardResolver{store: store}

	// Resolusi pertama: turun dari sekolah, satu kali tulis balik
	// (board + nama sekolah).
	board, err := r.ResolveStudentBoard(context.Background(), studentID)
	require.NoError(t, err)
	assert.Equal(t, "CBSE", board)
	assert.Equal(t, 1, store.backfillCalls)
	require.NotNil(t, store.students[studentID].StudentBoard)
	assert.Equal(t, "CBSE", *store.students[studentID].StudentBoard)
	require.NotNil(t, store.students[studentID].StudentSchoolName)
	assert.Equal(t, "SMA Harapan", *store.students[studentID].StudentSchoolName)

	// Resolusi kedua: field sudah terisi, tidak ada tulisan baru.
	board, err = r.ResolveStudentBoard(context.Background(), studentID)
	require.NoError(t, err)
	assert.Equal(t, "CBSE", board)
	assert.Equal(t, 1, store.backfillCalls)
}

func TestResolveStudentBoardBekuSetelahBackfill(t *testing.T) {
	store, schoolID, studentID := newResolverFixture()
	r := &BoardResolver{store: store}

	_, err := r.ResolveStudentBoard(context.Background(), studentID)
	require.NoError(t, err)

	// Sekolah pindah board setelah backfill → siswa TIDAK ikut berubah.
	store.schools[schoolID].SchoolBoard = "ICSE"

	board, err := r.ResolveStudentBoard(context.Background(), studentID)
	require.NoError(t, err)
	assert.Equal(t, "CBSE", board)
	assert.Equal(t, 1, store.backfillCalls)
}

func TestResolveStudentBoardNilaiSendiriMenang(t *testing.T) {
	store, _, studentID := newResolverFixture()
	own := "ICSE"
	store.students[studentID].StudentBoard = &own
	r := &BoardResolver{store: store}

	// Board milik siswa menang atas board sekolah, tanpa tulisan apa pun.
	board, err := r.ResolveStudentBoard(context.Background(), studentID)
	require.NoError(t, err)
	assert.Equal(t, "ICSE", board)
	assert.Equal(t, 0, store.backfillCalls)
}

func TestResolveStudentBoardSekolahBelumPunyaBoard(t *testing.T) {
	store, schoolID, studentID := newResolverFixture()
	store.schools[schoolID].SchoolBoard = ""
	r := &BoardResolver{store: store}

	_, err := r.ResolveStudentBoard(context.Background(), studentID)
	assert.ErrorIs(t, err, helper.ErrBoardUnresolved)
	assert.Equal(t, 0, store.backfillCalls)

	// Siswa yatim (sekolahnya hilang) juga unresolved, bukan not-found.
	delete(store.schools, schoolID)
	_, err = r.ResolveStudentBoard(context.Background(), studentID)
	assert.ErrorIs(t, err, helper.ErrBoardUnresolved)

	_, err = r.ResolveStudentBoard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestResolveTeacherBoardSelaluIkutSekolah(t *testing.T) {
	store, schoolID, _ := newResolverFixture()
	teacherID := uuid.New()
	store.teachers[teacherID] = &teacherModel.TeacherModel{
		TeacherID:       teacherID,
		TeacherSchoolID: schoolID,
	}
	r := &BoardResolver{store: store}

	board, err := r.ResolveTeacherBoard(context.Background(), teacherID)
	require.NoError(t, err)
	assert.Equal(t, "CBSE", board)

	// Guru tidak punya salinan board: perubahan di sekolah langsung terlihat.
	store.schools[schoolID].SchoolBoard = "ICSE"
	board, err = r.ResolveTeacherBoard(context.Background(), teacherID)
	require.NoError(t, err)
	assert.Equal(t, "ICSE", board)
}
