package puzzle

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Alphabet is the set of letters accepted as input: the Latin capitals plus
// the Lithuanian nasal and accented vowels and consonants.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZĄČĘĖĮŠŲŪŽ"

var upper = cases.Upper(language.Lithuanian)

// NormalizeLetter uppercases s and reports whether the result is a single
// letter of the Alphabet.
func NormalizeLetter(s string) (string, bool) {
	u := upper.String(s)
	if len([]rune(u)) != 1 || !strings.Contains(Alphabet, u) {
		return "", false
	}
	return u, true
}

// IsLetter reports whether s is exactly one uppercase Alphabet letter.
func IsLetter(s string) bool {
	n, ok := NormalizeLetter(s)
	return ok && n == s
}
