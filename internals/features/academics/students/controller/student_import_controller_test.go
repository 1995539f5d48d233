package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHeader(t *testing.T) {
	// Header dikenali dari kolom email tanpa "@", di transport mana pun.
	rows := stripHeader([][]string{
		{"name", "email", "phone", "class"},
		{"Aisha Khan", "aisha@mail.test", "0811111111", "10"},
	})
	assert.Len(t, rows, 1)
	assert.Equal(t, "aisha@mail.test", rows[0][1])

	// File tanpa header: baris pertama adalah siswa, jangan dibuang.
	rows = stripHeader([][]string{
		{"Aisha Khan", "aisha@mail.test", "0811111111", "10"},
		{"Budi Santoso", "budi@mail.test", "0822222222", "10"},
	})
	assert.Len(t, rows, 2)

	// Hanya header tanpa data.
	rows = stripHeader([][]string{{"name", "email", "phone", "class"}})
	assert.Empty(t, rows)

	assert.Empty(t, stripHeader(nil))

	// Baris pendek/rusak diteruskan ke engine untuk dilaporkan per-row,
	// bukan ditelan sebagai header.
	rows = stripHeader([][]string{{"cuma-satu-kolom"}})
	assert.Len(t, rows, 1)
}
