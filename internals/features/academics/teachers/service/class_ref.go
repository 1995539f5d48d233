// file: internals/features/academics/teachers/service/class_ref.go
package service

import (
	"strings"

	"github.com/google/uuid"
)

// ClassRefKind membedakan dua bentuk "assigned class" guru yang sama-sama
// hidup di data lama: UUID class vs string classNumber.
type ClassRefKind int

const (
	ClassRefByID ClassRefKind = iota
	ClassRefByNumber
)

// ClassRef: tagged variant hasil normalisasi teacher_class_ref.
// SEMUA perbandingan ref kelas lewat tipe ini, bukan string mentah.
type ClassRef struct {
	Kind   ClassRefKind
	ID     uuid.UUID // terisi kalau Kind == ClassRefByID
	Number string    // terisi kalau Kind == ClassRefByNumber
}

// ParseClassRef menormalkan satu ref mentah. ok=false untuk string kosong.
func ParseClassRef(raw string) (ClassRef, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ClassRef{}, false
	}
	if id, err := uuid.Parse(s); err == nil {
		return ClassRef{Kind: ClassRefByID, ID: id}, true
	}
	return ClassRef{Kind: ClassRefByNumber, Number: s}, true
}

// Raw mengembalikan bentuk simpan (kolom teacher_class_ref).
func (r ClassRef) Raw() string {
	if r.Kind == ClassRefByID {
		return r.ID.String()
	}
	return r.Number
}

// MatchesClass: apakah ref ini menunjuk class tsb. Dicoba dua arah —
// id persis, atau classNumber persis.
func (r ClassRef) MatchesClass(classID uuid.UUID, classNumber string) bool {
	switch r.Kind {
	case ClassRefByID:
		return r.ID == classID
	case ClassRefByNumber:
		return r.Number == classNumber
	}
	return false
}

// ClassTarget: bentuk minimum satu class tenant untuk pencocokan ref.
type ClassTarget struct {
	ID      uuid.UUID `json:"class_id"`
	Number  string    `json:"class_number"`
	Section string    `json:"class_section"`
}

// ResolveClassRefs memetakan ref tersimpan (campuran UUID / classNumber) ke
// class tenant. Ref ByNumber mengenai SEMUA section dengan nomor itu; class
// yang sama tidak muncul dua kali; ref yang tidak resolve lagi (class sudah
// dihapus setelah assignment) dilewati tanpa error.
func ResolveClassRefs(refs []string, classes []ClassTarget) []ClassTarget {
	out := []ClassTarget{}
	seen := map[uuid.UUID]bool{}
	for _, raw := range refs {
		ref, ok := ParseClassRef(raw)
		if !ok {
			continue
		}
		for _, cls := range classes {
			if seen[cls.ID] || !ref.MatchesClass(cls.ID, cls.Number) {
				continue
			}
			seen[cls.ID] = true
			out = append(out, cls)
		}
	}
	return out
}
