package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	helper "sekolahku_backend/internals/helpers"
)

type fakeClassSubjectStore struct {
	classes  []classModel.ClassModel
	subjects map[uuid.UUID]bool

	replaced map[uuid.UUID][]uuid.UUID // classID → subject set terakhir
}

func (f *fakeClassSubjectStore) ClassesByNumber(_ context.Context, schoolID uuid.UUID, classNumber string) ([]classModel.ClassModel, error) {
	var out []classModel.ClassModel
	for _, cls := range f.classes {
		if cls.ClassSchoolID == schoolID && cls.ClassNumber == classNumber {
			out = append(out, cls)
		}
	}
	return out, nil
}

func (f *fakeClassSubjectStore) CountSubjects(_ context.Context, subjectIDs []uuid.UUID) (int64, error) {
	var cnt int64
	for _, sid := range subjectIDs {
		if f.subjects[sid] {
			cnt++
		}
	}
	return cnt, nil
}

func (f *fakeClassSubjectStore) ReplaceClassSubjects(_ context.Context, _ uuid.UUID, classID uuid.UUID, subjectIDs []uuid.UUID) error {
	if f.replaced == nil {
		f.replaced = map[uuid.UUID][]uuid.UUID{}
	}
	f.replaced[classID] = append([]uuid.UUID(nil), subjectIDs...)
	return nil
}

func newBroadcastFixture() (*fakeClassSubjectStore, uuid.UUID, []uuid.UUID) {
	schoolID := uuid.New()
	store := &fakeClassSubjectStore{
		classes: []classModel.ClassModel{
			{ClassID: uuid.New(), ClassSchoolID: schoolID, ClassNumber: "10", ClassSection: "A"},
			{ClassID: uuid.New(), ClassSchoolID: schoolID, ClassNumber: "10", ClassSection: "B"},
			{ClassID: uuid.New(), ClassSchoolID: schoolID, ClassNumber: "10", ClassSection: "C"},
			{ClassID: uuid.New(), ClassSchoolID: schoolID, ClassNumber: "11", ClassSection: "A"},
		},
		subjects: map[uuid.UUID]bool{},
	}
	subjectIDs := []uuid.UUID{uuid.New(), uuid.New()}
	for _, sid := range subjectIDs {
		store.subjects[sid] = true
	}
	return store, schoolID, subjectIDs
}

func TestBroadcastSubjectsKenaSemuaSection(t *testing.T) {
	store, schoolID, subjectIDs := newBroadcastFixture()

	n, err := broadcastSubjectsToSections(context.Background(), store, schoolID, "10", subjectIDs)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Setiap section 10 (A, B, C) mendapat set subject yang sama; 11A tidak
	// tersentuh.
	require.Len(t, store.replaced, 3)
	for _, cls := range store.classes {
		if cls.ClassNumber == "10" {
			assert.Equal(t, subjectIDs, store.replaced[cls.ClassID], "section %s", cls.ClassSection)
		} else {
			assert.NotContains(t, store.replaced, cls.ClassID)
		}
	}
}

func TestBroadcastSubjectsNomorTidakAda(t *testing.T) {
	store, schoolID, subjectIDs := newBroadcastFixture()

	_, err := broadcastSubjectsToSections(context.Background(), store, schoolID, "12", subjectIDs)
	assert.ErrorIs(t, err, helper.ErrNotFound)
	assert.Empty(t, store.replaced)
}

func TestBroadcastSubjectsMenolakSubjectHilang(t *testing.T) {
	store, schoolID, subjectIDs := newBroadcastFixture()
	subjectIDs = append(subjectIDs, uuid.New()) // id yang tidak pernah ada

	// Validasi subject jalan SEBELUM section mana pun disentuh.
	_, err := broadcastSubjectsToSections(context.Background(), store, schoolID, "10", subjectIDs)
	assert.ErrorIs(t, err, helper.ErrNotFound)
	assert.Empty(t, store.replaced)
}

func TestBroadcastSubjectsTenantLainTidakIkut(t *testing.T) {
	store, _, subjectIDs := newBroadcastFixture()

	// Nomor kelas sama di tenant berbeda = bukan target broadcast.
	_, err := broadcastSubjectsToSections(context.Background(), store, uuid.New(), "10", subjectIDs)
	assert.ErrorIs(t, err, helper.ErrNotFound)
	assert.Empty(t, store.replaced)
}
