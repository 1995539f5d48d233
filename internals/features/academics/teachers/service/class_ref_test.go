package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassRef(t *testing.T) {
	id := uuid.New()

	ref, ok := ParseClassRef(id.String())
	require.True(t, ok)
	assert.Equal(t, ClassRefByID, ref.Kind)
	assert.Equal(t, id, ref.ID)

	ref, ok = ParseClassRef("10")
	require.True(t, ok)
	assert.Equal(t, ClassRefByNumber, ref.Kind)
	assert.Equal(t, "10", ref.Number)

	// UUID dengan spasi pinggir tetap terbaca sebagai id.
	ref, ok = ParseClassRef("  " + id.String() + "  ")
	require.True(t, ok)
	assert.Equal(t, ClassRefByID, ref.Kind)

	_, ok = ParseClassRef("")
	assert.False(t, ok)
	_, ok = ParseClassRef("   ")
	assert.False(t, ok)
}

func TestClassRefRawRoundTrip(t *testing.T) {
	id := uuid.New()

	ref, _ := ParseClassRef(id.String())
	assert.Equal(t, id.String(), ref.Raw())

	ref, _ = ParseClassRef("12")
	assert.Equal(t, "12", ref.Raw())
}

func TestResolveClassRefs(t *testing.T) {
	sec10A := ClassTarget{ID: uuid.New(), Number: "10", Section: "A"}
	sec10B := ClassTarget{ID: uuid.New(), Number: "10", Section: "B"}
	sec11A := ClassTarget{ID: uuid.New(), Number: "11", Section: "A"}
	classes := []ClassTarget{sec10A, sec10B, sec11A}

	// Ref UUID kena satu class persis.
	got := ResolveClassRefs([]string{sec11A.ID.String()}, classes)
	require.Len(t, got, 1)
	assert.Equal(t, sec11A.ID, got[0].ID)

	// Ref nomor melebar ke SEMUA section dengan nomor itu.
	got = ResolveClassRefs([]string{"10"}, classes)
	require.Len(t, got, 2)
	assert.Equal(t, sec10A.ID, got[0].ID)
	assert.Equal(t, sec10B.ID, got[1].ID)

	// Campuran dua bentuk, class yang sama tidak dobel.
	got = ResolveClassRefs([]string{sec10A.ID.String(), "10", "11"}, classes)
	assert.Len(t, got, 3)

	// Ref yang tidak resolve lagi (class sudah dihapus) dilewati diam-diam.
	got = ResolveClassRefs([]string{uuid.New().String(), "12", ""}, classes)
	assert.Empty(t, got)
}

func TestClassRefMatchesClass(t *testing.T) {
	classID := uuid.New()
	otherID := uuid.New()

	byID, _ := ParseClassRef(classID.String())
	assert.True(t, byID.MatchesClass(classID, "10"))
	assert.False(t, byID.MatchesClass(otherID, "10"))
	// Ref berbentuk id tidak pernah cocok lewat nomor.
	assert.False(t, byID.MatchesClass(otherID, classID.String()))

	byNumber, _ := ParseClassRef("10")
	assert.True(t, byNumber.MatchesClass(otherID, "10"))
	assert.False(t, byNumber.MatchesClass(otherID, "11"))
}
