package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "sekolahku_backend/internals/helpers"
)

func TestCheckSubjectSetBoard(t *testing.T) {
	// Semua subject satu board → lolos.
	err := CheckSubjectSetBoard("CBSE", 3, []string{"CBSE", "CBSE", "CBSE"})
	assert.NoError(t, err)

	// Satu subject beda board → seluruh permintaan ditolak.
	err = CheckSubjectSetBoard("CBSE", 3, []string{"CBSE", "ICSE", "CBSE"})
	assert.ErrorIs(t, err, helper.ErrCrossBoardViolation)

	// Subject hilang (soft-deleted / id salah) → not found, bukan cross-board.
	err = CheckSubjectSetBoard("CBSE", 3, []string{"CBSE", "CBSE"})
	assert.ErrorIs(t, err, helper.ErrNotFound)

	// Set kosong sah-sah saja (mengosongkan assignment).
	assert.NoError(t, CheckSubjectSetBoard("ICSE", 0, nil))
}

func TestCheckSubjectSetBoardInternasionalTerpisah(t *testing.T) {
	// CBSE dan CBSE_INTL adalah board BERBEDA: tidak boleh saling silang.
	err := CheckSubjectSetBoard("CBSE", 1, []string{"CBSE_INTL"})
	assert.ErrorIs(t, err, helper.ErrCrossBoardViolation)

	err = CheckSubjectSetBoard("CBSE_INTL", 1, []string{"CBSE_INTL"})
	assert.NoError(t, err)
}
