package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))

	// Sentinel domain.
	assert.True(t, IsDuplicateKey(ErrDuplicateKey))
	assert.True(t, IsDuplicateKey(fmt.Errorf("gagal simpan: %w", ErrDuplicateKey)))

	// pgconn langsung.
	assert.True(t, IsDuplicateKey(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsDuplicateKey(&pgconn.PgError{Code: "23503"}), "FK violation bukan duplicate key")

	// pgconn terbungkus (jalur gorm).
	wrapped := fmt.Errorf("create student: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_students_email_school"})
	assert.True(t, IsDuplicateKey(wrapped))

	// Fallback string driver lama.
	assert.True(t, IsDuplicateKey(errors.New(`ERROR: duplicate key value violates unique constraint "uq_schools_admin_email"`)))
}

func TestPartialFailureError(t *testing.T) {
	err := &PartialFailureError{
		Op: "cascade delete school",
		Failures: []CollectionFailure{
			{Collection: "videos", Reason: "timeout"},
			{Collection: "exams", Reason: "deadlock"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "cascade delete school")
	assert.Contains(t, msg, "videos")
	assert.Contains(t, msg, "exams")

	// Harus bisa ditangkap lewat errors.As dari rantai terbungkus.
	wrapped := fmt.Errorf("handler: %w", err)
	var pf *PartialFailureError
	assert.True(t, errors.As(wrapped, &pf))
	assert.Len(t, pf.Failures, 2)
}
