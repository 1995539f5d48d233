package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBoard(t *testing.T) {
	for _, b := range AllowedBoards {
		assert.True(t, IsValidBoard(b), "board %s harus valid", b)
	}

	assert.False(t, IsValidBoard(""))
	assert.False(t, IsValidBoard("cbse"), "pencocokan board case-sensitive")
	assert.False(t, IsValidBoard("STATE"))
	assert.False(t, IsValidBoard("CBSE "))
}

func TestAllowedBoardsDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range AllowedBoards {
		assert.False(t, seen[b], "board %s duplikat", b)
		seen[b] = true
	}
	assert.Len(t, AllowedBoards, 4)
}
