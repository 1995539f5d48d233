package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClassLabel(t *testing.T) {
	cases := []struct {
		label   string
		number  string
		section string
		ok      bool
	}{
		{"10", "10", "A", true},
		{"10A", "10", "A", true},
		{"10B", "10", "B", true},
		{"10-B", "10", "B", true},
		{"10 - b", "10", "B", true},
		{"Class 10", "10", "A", true},
		{"Class-10C", "10", "C", true},
		{"class 8-d", "8", "D", true},
		{"CLASS 9", "9", "A", true},
		{"  7  ", "7", "A", true},
		{"09", "9", "A", true},

		{"", "", "", false},
		{"Class", "", "", false},
		{"A10", "", "", false},
		{"10AB", "", "", false},
		{"sepuluh", "", "", false},
	}

	for _, tc := range cases {
		num, sec, ok := ParseClassLabel(tc.label)
		assert.Equal(t, tc.ok, ok, "label %q", tc.label)
		if tc.ok {
			assert.Equal(t, tc.number, num, "label %q", tc.label)
			assert.Equal(t, tc.section, sec, "label %q", tc.label)
		}
	}
}

func TestParseClassLabelSamaKelasBedaPenulisan(t *testing.T) {
	// "Class 10", "10", dan "10-A" harus jatuh ke kelas yang sama.
	n1, s1, _ := ParseClassLabel("Class 10")
	n2, s2, _ := ParseClassLabel("10")
	n3, s3, _ := ParseClassLabel("10-A")

	assert.Equal(t, n1, n2)
	assert.Equal(t, n2, n3)
	assert.Equal(t, s1, s2)
	assert.Equal(t, s2, s3)
}
