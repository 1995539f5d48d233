package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

/* ===============================
   Taksonomi error domain
=================================*/

var (
	// Entity tidak ada ATAU bukan milik tenant pemanggil.
	ErrNotFound = errors.New("data tidak ditemukan atau bukan milik tenant ini")

	// Board tidak bisa di-resolve dari entity maupun sekolahnya.
	ErrBoardUnresolved = errors.New("board belum diset, lengkapi profil sekolah terlebih dahulu")

	// Pelanggaran unique/compound index (sering recoverable dengan re-read).
	ErrDuplicateKey = errors.New("data dengan kunci yang sama sudah ada")

	// Assign subject/class lintas board.
	ErrCrossBoardViolation = errors.New("subject berbeda board dengan board siswa")

	// Ranking diminta untuk ujian yang belum dikerjakan siswa.
	ErrNotAttempted = errors.New("siswa belum mengerjakan ujian ini")
)

// IsDuplicateKey mengenali unique violation Postgres (23505),
// baik dari pgconn langsung maupun yang sudah dibungkus gorm.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDuplicateKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// jaga-jaga: driver lama hanya melempar string
	return strings.Contains(err.Error(), "duplicate key value")
}

/* ===============================
   PartialFailure (operasi batch)
=================================*/

// CollectionFailure: satu langkah saga / satu koleksi yang gagal.
type CollectionFailure struct {
	Collection string `json:"collection"`
	Reason     string `json:"reason"`
}

// PartialFailureError merangkum kegagalan sebagian dari operasi
// multi-koleksi (cascade delete) tanpa rollback.
type PartialFailureError struct {
	Op       string
	Failures []CollectionFailure
}

func (e *PartialFailureError) Error() string {
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, f.Collection)
	}
	return fmt.Sprintf("%s: sebagian langkah gagal (%s)", e.Op, strings.Join(names, ", "))
}
