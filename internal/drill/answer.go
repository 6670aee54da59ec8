package drill

import (
	"strings"
	"unicode"
)

// Normalize strips all whitespace from s and lower-cases the remainder.
// This is the only transform applied before answer comparison.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// IsCorrect reports whether userAnswer matches correctAnswer after
// normalization. Equality is exact on the normalized forms: no numeric
// tolerance, no partial credit, no semantic equivalence ("x>y" and "y<x"
// are different answers).
func IsCorrect(userAnswer, correctAnswer string) bool {
	return Normalize(userAnswer) == Normalize(correctAnswer)
}
