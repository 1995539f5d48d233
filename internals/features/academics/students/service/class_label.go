// file: internals/features/academics/students/service/class_label.go
package service

import (
	"regexp"
	"strings"
)

// Bentuk label kelas yang pernah muncul di file import:
// "10", "10A", "10-A", "Class 10", "Class-10A", "class 10-a", dst.
var classLabelRe = regexp.MustCompile(`^([0-9]+)\s*-?\s*([A-Za-z]?)$`)

// ParseClassLabel menormalkan label bebas jadi (classNumber, section).
// Token "Class"/"Class-" di depan dibuang, huruf section di belakang
// diekstrak, default section "A" kalau tidak ada. ok=false untuk label
// yang tidak mengandung angka kelas.
func ParseClassLabel(label string) (classNumber, section string, ok bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return "", "", false
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "class") {
		s = strings.TrimSpace(s[len("class"):])
		s = strings.TrimPrefix(s, "-")
		s = strings.TrimSpace(s)
	}

	m := classLabelRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}

	classNumber = strings.TrimLeft(m[1], "0")
	if classNumber == "" {
		classNumber = "0"
	}
	section = strings.ToUpper(m[2])
	if section == "" {
		section = "A"
	}
	return classNumber, section, true
}
