package constants

// Student types as shown on the roster and the keypad board.
const (
	StudentTypeKumar       = "Kumar"
	StudentTypeKumari      = "Kumari"
	StudentTypeAdharKumar  = "Adhar Kumar"
	StudentTypeAdharKumari = "Adhar Kumari"
	StudentTypeMata        = "Mata"
)

var ValidStudentTypes = []string{
	StudentTypeKumar,
	StudentTypeKumari,
	StudentTypeAdharKumar,
	StudentTypeAdharKumari,
	StudentTypeMata,
}

func IsValidStudentType(t string) bool {
	for _, v := range ValidStudentTypes {
		if v == t {
			return true
		}
	}
	return false
}
