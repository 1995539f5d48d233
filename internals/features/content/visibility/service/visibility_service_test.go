package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSubjectTeacherIndex(t *testing.T) {
	mathID := uuid.New()
	physID := uuid.New()
	chemID := uuid.New() // subject tanpa guru
	guruA := uuid.New()
	guruB := uuid.New()

	idx := BuildSubjectTeacherIndex([]TeacherSubjectRow{
		{TeacherID: guruA, SubjectID: mathID},
		{TeacherID: guruB, SubjectID: mathID},
		{TeacherID: guruA, SubjectID: physID},
	})

	require.Len(t, idx[mathID], 2)
	require.Len(t, idx[physID], 1)

	// Exclusion law: subject tanpa guru tidak punya entry sama sekali.
	_, ok := idx[chemID]
	assert.False(t, ok)

	set := idx.TeacherSet()
	assert.Len(t, set, 2)
	assert.True(t, set[guruA])
	assert.True(t, set[guruB])
}

func TestBuildSubjectTeacherIndexKosong(t *testing.T) {
	idx := BuildSubjectTeacherIndex(nil)
	assert.Empty(t, idx)
	assert.Empty(t, idx.TeacherSet())
}

func TestMatchesSubjectRef(t *testing.T) {
	subjectID := uuid.New()
	otherID := uuid.New()

	// Bentuk 1: UUID persis.
	assert.True(t, MatchesSubjectRef(subjectID.String(), subjectID, "Mathematics"))
	assert.False(t, MatchesSubjectRef(otherID.String(), subjectID, "Mathematics"))

	// Bentuk 2: UUID ter-stringify dengan kutip/spasi sisa serialisasi lama.
	assert.True(t, MatchesSubjectRef(`"`+subjectID.String()+`"`, subjectID, "Mathematics"))
	assert.True(t, MatchesSubjectRef("  "+subjectID.String()+"  ", subjectID, "Mathematics"))

	// Bentuk 3: nama subject, case-insensitive.
	assert.True(t, MatchesSubjectRef("Mathematics", subjectID, "Mathematics"))
	assert.True(t, MatchesSubjectRef("mathematics", subjectID, "Mathematics"))
	assert.True(t, MatchesSubjectRef("'Mathematics'", subjectID, "Mathematics"))

	// Tidak cocok bentuk mana pun.
	assert.False(t, MatchesSubjectRef("Physics", subjectID, "Mathematics"))
	assert.False(t, MatchesSubjectRef("", subjectID, "Mathematics"))
	assert.False(t, MatchesSubjectRef(`""`, subjectID, "Mathematics"))
}

func TestMatchesSubjectRefUUIDTidakJatuhKeNama(t *testing.T) {
	// Ref berbentuk UUID valid yang bukan subject ini TIDAK boleh
	// dicocokkan sebagai nama, meskipun namanya kebetulan string UUID.
	subjectID := uuid.New()
	otherID := uuid.New()
	assert.False(t, MatchesSubjectRef(otherID.String(), subjectID, otherID.String()))
}
