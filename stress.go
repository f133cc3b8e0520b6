package greeknames

import (
	"strings"
	"unicode"
)

// IsOxytone reports whether word is stressed on its last syllable. Words
// without a recognisable final accent are treated as paroxytone.
func IsOxytone(word string) bool {
	lw := strings.ToLower(word)
	for _, n := range oxytoneNames {
		if lw == n {
			return true
		}
	}

	rs := []rune(word)
	if len(rs) < 2 {
		return false
	}
	last := rs[len(rs)-1]
	if last != 'ς' && last != 'σ' && last != 'Σ' {
		return false
	}
	p := rs[len(rs)-2]
	return p == 'ό' || p == 'Ό'
}

// IsLikelySurname reports whether the token at index among total tokens is
// probably a surname: the last token of a multi-token name always is,
// otherwise the token must be a known surname.
func IsLikelySurname(token string, index, total int) bool {
	return isLikelySurname(token, index, total, nil)
}

func isLikelySurname(token string, index, total int, rules *RuleTable) bool {
	if total > 1 && index == total-1 {
		return true
	}
	folded := Fold(token)
	return foldedSurnames.has(folded) || rules.isSurname(folded)
}

// IsOxytoneSurname reports whether a surname in -ος takes the -ε vocative.
func IsOxytoneSurname(token string) bool {
	folded := Fold(token)
	for _, s := range oxytoneSurnames {
		fs := Fold(s)
		if folded == fs || strings.Contains(folded, fs) {
			return true
		}
	}

	rs := []rune(token)
	if n := len(rs); n >= 2 && (rs[n-2] == 'ό' || rs[n-2] == 'Ό') && rs[n-1] == 'ς' {
		return true
	}
	if n := len(rs); n > 0 {
		tail := rs[max(0, n-2):]
		if hasAccent(string(tail)) {
			return true
		}
	}
	return IsOxytone(token)
}

// SyllableCount approximates the number of syllables by counting vowel
// letters.
func SyllableCount(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) && isGreekVowel(r) {
			n++
		}
	}
	return n
}
