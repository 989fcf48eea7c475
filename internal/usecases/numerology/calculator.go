package numerology

import (
	"strings"
	"unicode"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letterValues is the Pythagorean table: A=1..I=9, J=1..R=9, S=1..Z=8
var letterValues = map[rune]int{
	'A': 1, 'J': 1, 'S': 1,
	'B': 2, 'K': 2, 'T': 2,
	'C': 3, 'L': 3, 'U': 3,
	'D': 4, 'M': 4, 'V': 4,
	'E': 5, 'N': 5, 'W': 5,
	'F': 6, 'O': 6, 'X': 6,
	'G': 7, 'P': 7, 'Y': 7,
	'H': 8, 'Q': 8, 'Z': 8,
	'I': 9, 'R': 9,
}

const vowels = "AEIOUY"

// Profile computes the three core numbers from a full name and the birth
// date in ISO form (YYYY-MM-DD)
func Profile(fullName, birthDateISO string) domain.NumerologyProfile {
	normalized := NormalizeName(fullName)

	return domain.NumerologyProfile{
		LifePath:   LifePath(birthDateISO),
		SoulUrge:   sumLetters(normalized, true),
		Expression: sumLetters(normalized, false),
	}
}

// LifePath reduces the digit sum of the whole birth date
func LifePath(birthDateISO string) int {
	sum := 0
	for _, r := range birthDateISO {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return Reduce(sum)
}

// Reduce collapses n to a single digit, stopping at the master numbers
// 11, 22 and 33
func Reduce(n int) int {
	for n > 9 && !domain.IsMasterNumber(n) {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// NormalizeName uppercases the name, strips diacritics and drops hyphens
// and apostrophes, so Jose-Maria and José María share one value
func NormalizeName(name string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, name)
	if err != nil {
		stripped = name
	}

	upper := strings.ToUpper(stripped)
	upper = strings.ReplaceAll(upper, "-", "")
	upper = strings.ReplaceAll(upper, "'", "")
	return upper
}

// sumLetters adds letter values across the name. vowelsOnly selects the
// soul urge subset (AEIOUY); the full set gives the expression number.
func sumLetters(normalized string, vowelsOnly bool) int {
	sum := 0
	for _, r := range normalized {
		value, ok := letterValues[r]
		if !ok {
			continue
		}
		if vowelsOnly && !strings.ContainsRune(vowels, r) {
			continue
		}
		sum += value
	}
	return Reduce(sum)
}
