package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
)

type fakeImportStore struct {
	school   *schoolModel.SchoolModel
	emails   map[string]bool // email yang sudah terdaftar
	classes  map[string]uuid.UUID
	students []*studentModel.StudentModel
	created  []*classModel.ClassModel
}

func newFakeImportStore(board string) *fakeImportStore {
	return &fakeImportStore{
		school: &schoolModel.SchoolModel{
			SchoolID:         uuid.New(),
			SchoolAdminEmail: "admin@sekolah.test",
			SchoolBoard:      board,
			SchoolName:       "SMA Uji",
		},
		emails:  map[string]bool{},
		classes: map[string]uuid.UUID{},
	}
}

func (f *fakeImportStore) GetSchool(_ context.Context, schoolID uuid.UUID) (*schoolModel.SchoolModel, error) {
	if f.school == nil || f.school.SchoolID != schoolID {
		return nil, helper.ErrNotFound
	}
	return f.school, nil
}

func (f *fakeImportStore) StudentEmailExists(_ context.Context, _ uuid.UUID, email string) (bool, error) {
	return f.emails[email], nil
}

func (f *fakeImportStore) FindClassID(_ context.Context, _ uuid.UUID, number, section string) (uuid.UUID, error) {
	if id, ok := f.classes[number+"|"+section]; ok {
		return id, nil
	}
	return uuid.Nil, helper.ErrNotFound
}

func (f *fakeImportStore) CreateClass(_ context.Context, cls *classModel.ClassModel) error {
	cls.ClassID = uuid.New()
	f.classes[cls.ClassNumber+"|"+cls.ClassSection] = cls.ClassID
	f.created = append(f.created, cls)
	return nil
}

func (f *fakeImportStore) CreateStudent(_ context.Context, st *studentModel.StudentModel) error {
	f.emails[st.StudentEmail] = true
	f.students = append(f.students, st)
	return nil
}

func TestImportStudentsBatch(t *testing.T) {
	store := newFakeImportStore("CBSE")
	svc := &ImportService{store: store}

	rows := [][]string{
		{"Aisha Khan", "aisha@mail.test", "0811111111", "Class 10"},
		{"Budi Santoso", "budi@mail.test", "0822222222", "10"},
		{"Citra Lestari", "citra@mail.test", "0833333333"}, // kolom kurang
		{"Dewi Anggraini", "dewi@mail.test", "", "10-B"},
		{"Eko Prasetyo", "aisha@mail.test", "0833333333", "10"}, // email duplikat dalam batch
	}

	report, err := svc.ImportStudents(context.Background(), store.school.SchoolID, rows)
	require.NoError(t, err)

	// Baris 3 (kolom kurang) dan baris 5 (email bentrok) gugur sendiri.
	assert.Equal(t, 3, report.CreatedCount)
	require.Len(t, report.RowErrors, 2)
	assert.Equal(t, 3, report.RowErrors[0].Row)
	assert.Equal(t, 5, report.RowErrors[1].Row)

	// "Class 10" dan "10" jatuh ke kelas yang sama; "10-B" kelas baru.
	assert.Equal(t, 2, report.ClassesCreated)
	require.Len(t, store.created, 2)

	// Semua siswa mewarisi board & nama sekolah saat dibuat.
	for _, st := range store.students {
		require.NotNil(t, st.StudentBoard)
		assert.Equal(t, "CBSE", *st.StudentBoard)
		require.NotNil(t, st.StudentSchoolName)
		assert.Equal(t, "SMA Uji", *st.StudentSchoolName)
		assert.NotEmpty(t, st.StudentPassword)
	}

	// Kelas batch pakai board sekolah.
	for _, cls := range store.created {
		assert.Equal(t, "CBSE", cls.ClassBoard)
	}
}

func TestImportStudentsBoardBelumTerisi(t *testing.T) {
	store := newFakeImportStore("")
	svc := &ImportService{store: store}

	_, err := svc.ImportStudents(context.Background(), store.school.SchoolID, [][]string{
		{"Aisha", "aisha@mail.test", "", "10"},
	})
	assert.ErrorIs(t, err, helper.ErrBoardUnresolved)

	// Precondition gagal → tidak ada baris yang diproses.
	assert.Empty(t, store.students)
	assert.Empty(t, store.created)
}

func TestImportStudentsSekolahTidakAda(t *testing.T) {
	store := newFakeImportStore("ICSE")
	svc := &ImportService{store: store}

	_, err := svc.ImportStudents(context.Background(), uuid.New(), [][]string{
		{"Aisha", "aisha@mail.test", "", "10"},
	})
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestGetOrCreateClassDuplicateWinner(t *testing.T) {
	// Saat CreateClass kalah balapan (duplicate key), engine wajib
	// membaca ulang record pemenang, bukan gagal.
	winner := uuid.New()
	store := &raceImportStore{fakeImportStore: newFakeImportStore("CBSE"), winnerID: winner}
	svc := &ImportService{store: store}

	report, err := svc.ImportStudents(context.Background(), store.school.SchoolID, [][]string{
		{"Aisha", "aisha@mail.test", "", "10"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.CreatedCount)
	assert.Equal(t, 0, report.ClassesCreated, "kelas milik pemenang, bukan batch ini")
	require.Len(t, store.students, 1)
	require.NotNil(t, store.students[0].StudentClassID)
	assert.Equal(t, winner, *store.students[0].StudentClassID)
}

// raceImportStore mensimulasikan batch lain yang menang create kelas.
type raceImportStore struct {
	*fakeImportStore
	winnerID uuid.UUID
	lost     bool
}

func (r *raceImportStore) FindClassID(ctx context.Context, schoolID uuid.UUID, number, section string) (uuid.UUID, error) {
	if r.lost {
		return r.winnerID, nil
	}
	return uuid.Nil, helper.ErrNotFound
}

func (r *raceImportStore) CreateClass(_ context.Context, _ *classModel.ClassModel) error {
	r.lost = true
	return &pgDuplicateErr{}
}

type pgDuplicateErr struct{}

func (e *pgDuplicateErr) Error() string {
	return `ERROR: duplicate key value violates unique constraint "uq_classes_number_section_school" (SQLSTATE 23505)`
}
