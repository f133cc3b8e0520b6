package greeknames

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accented lists the monotonic vowels carrying a tonos, including the
// dialytika-tonos combinations.
const accented = "άέήίόύώΆΈΉΊΌΎΏΐΰ"

// tonoticReplacer maps polytonic oxia code points onto their monotonic tonos
// equivalents.
var tonoticReplacer = strings.NewReplacer(
	"\u1f71", "\u03ac", // ά
	"\u1f73", "\u03ad", // έ
	"\u1f75", "\u03ae", // ή
	"\u1f77", "\u03af", // ί
	"\u1f79", "\u03cc", // ό
	"\u1f7b", "\u03cd", // ύ
	"\u1f7d", "\u03ce", // ώ
	"\u1fbb", "\u0386", // Ά
	"\u1fc9", "\u0388", // Έ
	"\u1fcb", "\u0389", // Ή
	"\u1fdb", "\u038a", // Ί
	"\u1ff9", "\u038c", // Ό
	"\u1feb", "\u038e", // Ύ
	"\u1ffb", "\u038f", // Ώ
	"\u1fd3", "\u0390", // ΐ
	"\u1fe3", "\u03b0", // ΰ
)

// stripMarks removes every combining mark after canonical decomposition.
// A new chain is built per call: transform.Chain keeps state.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// StripAccents removes tonos and dialytika, keeping case.
func StripAccents(s string) string {
	return stripMarks(s)
}

// Fold returns the lookup key for s: lowercase, without accents, with
// word-final sigma normalised to ς.
func Fold(s string) string {
	return finalSigma(strings.ToLower(stripMarks(s)))
}

// NormalizeTonotics rewrites oxia code points to tonos code points.
func NormalizeTonotics(s string) string {
	return tonoticReplacer.Replace(s)
}

// HandleDiacritics composes s into NFC so that accents are single code points.
func HandleDiacritics(s string) string {
	return norm.NFC.String(s)
}

// CollapseSpaces trims s and reduces every whitespace run to one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Capitalize uppercases the first rune of word and lowercases the rest.
func Capitalize(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + finalSigma(strings.ToLower(word[size:]))
}

// IsUpperInitial reports whether word starts with an uppercase letter.
// Accented capitals such as Ά count as uppercase.
func IsUpperInitial(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func isAllUpper(word string) bool {
	letters := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 1
}

// applyCase carries the casing of original onto replacement.
func applyCase(original, replacement string) string {
	switch {
	case isAllUpper(original):
		return strings.ToUpper(replacement)
	case IsUpperInitial(original):
		r, size := utf8.DecodeRuneInString(replacement)
		return string(unicode.ToUpper(r)) + replacement[size:]
	default:
		return replacement
	}
}

// finalSigma turns every σ that ends a word into ς.
func finalSigma(s string) string {
	if !strings.ContainsRune(s, 'σ') {
		return s
	}
	rs := []rune(s)
	for i, r := range rs {
		if r != 'σ' {
			continue
		}
		if i == len(rs)-1 || !unicode.IsLetter(rs[i+1]) {
			rs[i] = 'ς'
		}
	}
	return string(rs)
}

func hasAccent(s string) bool {
	return strings.ContainsAny(s, accented)
}

func isGreekVowel(r rune) bool {
	f := []rune(Fold(string(r)))
	return len(f) == 1 && strings.ContainsRune("αεηιουω", f[0])
}

// accentVowel returns the tonos form of vowel r, or r when it has none.
func accentVowel(r rune) rune {
	const plain, withTonos = "αεηιουωΑΕΗΙΟΥΩ", "άέήίόύώΆΈΉΊΌΎΏ"
	p, a := []rune(plain), []rune(withTonos)
	for i := range p {
		if p[i] == r {
			return a[i]
		}
	}
	return r
}

// replaceEnding drops the last n runes of word and appends ending. When the
// dropped runes carried a tonos, the new ending receives it on its first
// vowel, or on the second vowel of a diphthong. An all-caps word gets an
// all-caps ending.
func replaceEnding(word string, n int, ending string) string {
	rs := []rune(word)
	if n > len(rs) {
		n = len(rs)
	}
	stem, cut := rs[:len(rs)-n], string(rs[len(rs)-n:])
	if hasAccent(cut) {
		ending = accentFirstVowel(ending)
	}
	if isAllUpper(word) {
		ending = strings.ToUpper(ending)
	}
	return string(stem) + ending
}

var diphthongs = []string{"αι", "ει", "οι", "υι", "ου", "αυ", "ευ", "ηυ"}

func accentFirstVowel(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if !isGreekVowel(r) {
			continue
		}
		if i+1 < len(rs) {
			pair := strings.ToLower(string(rs[i : i+2]))
			for _, d := range diphthongs {
				if pair == d {
					i++
					break
				}
			}
		}
		rs[i] = accentVowel(rs[i])
		return string(rs)
	}
	return s
}
