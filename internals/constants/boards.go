package constants

// Daftar board resmi platform: 2 kurikulum x 2 region.
// Semua validasi board WAJIB lewat tabel ini, jangan hardcode di tempat lain.
const (
	BoardCBSE     = "CBSE"
	BoardICSE     = "ICSE"
	BoardCBSEIntl = "CBSE_INTL"
	BoardICSEIntl = "ICSE_INTL"
)

var AllowedBoards = []string{
	BoardCBSE,
	BoardICSE,
	BoardCBSEIntl,
	BoardICSEIntl,
}

func IsValidBoard(board string) bool {
	for _, b := range AllowedBoards {
		if b == board {
			return true
		}
	}
	return false
}
