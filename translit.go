package greeknames

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTranslitMode is returned by ParseTranslitMode.
var ErrUnknownTranslitMode = errors.New("unknown transliteration mode")

// TranslitMode selects a transliteration direction.
type TranslitMode int

const (
	TranslitNone TranslitMode = iota
	GreeklishToGreek
	GreekToLatin
	GreekToGreeklish
)

var translitNames = []string{"none", "greeklish-to-greek", "greek-to-latin", "greek-to-greeklish"}

func (m TranslitMode) String() string {
	if int(m) >= 0 && int(m) < len(translitNames) {
		return translitNames[m]
	}
	return fmt.Sprintf("TranslitMode(%d)", int(m))
}

// ParseTranslitMode accepts the kebab-case names printed by String and the
// camelCase spellings greeklishToGreek, greekToLatin and greekToGreeklish.
func ParseTranslitMode(s string) (TranslitMode, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(s)))
	switch key {
	case "", "none":
		return TranslitNone, nil
	case "greeklishtogreek":
		return GreeklishToGreek, nil
	case "greektolatin":
		return GreekToLatin, nil
	case "greektogreeklish":
		return GreekToGreeklish, nil
	}
	return TranslitNone, fmt.Errorf("%w: %q", ErrUnknownTranslitMode, s)
}

func (m TranslitMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *TranslitMode) UnmarshalText(b []byte) error {
	parsed, err := ParseTranslitMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// greeklishDigraphs are tried before single letters.
var greeklishDigraphs = map[string]string{
	"th": "θ", "ch": "χ", "ps": "ψ", "ks": "ξ",
	"ou": "ου", "ai": "αι", "ei": "ει", "oi": "οι", "ui": "υι",
	"au": "αυ", "eu": "ευ", "iu": "ιου",
	"mp": "μπ", "nt": "ντ", "gk": "γκ", "gg": "γγ",
	"ts": "τσ", "tz": "τζ", "dz": "ντζ",
}

var greeklishLetters = map[rune]string{
	'a': "α", 'b': "β", 'g': "γ", 'd': "δ", 'e': "ε", 'z': "ζ", 'h': "η",
	'i': "ι", 'k': "κ", 'l': "λ", 'm': "μ", 'n': "ν", 'x': "ξ", 'o': "ο",
	'p': "π", 'r': "ρ", 's': "σ", 't': "τ", 'y': "υ", 'f': "φ", 'w': "ω",
}

var greekToLatin = map[rune]string{
	'α': "a", 'ά': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e", 'έ': "e",
	'ζ': "z", 'η': "i", 'ή': "i", 'θ': "th", 'ι': "i", 'ί': "i", 'ϊ': "i",
	'ΐ': "i", 'κ': "k", 'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x", 'ο': "o",
	'ό': "o", 'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t", 'υ': "y",
	'ύ': "y", 'ϋ': "y", 'ΰ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps", 'ω': "o",
	'ώ': "o",
	'Α': "A", 'Ά': "A", 'Β': "V", 'Γ': "G", 'Δ': "D", 'Ε': "E", 'Έ': "E",
	'Ζ': "Z", 'Η': "I", 'Ή': "I", 'Θ': "Th", 'Ι': "I", 'Ί': "I", 'Ϊ': "I",
	'Κ': "K", 'Λ': "L", 'Μ': "M", 'Ν': "N", 'Ξ': "X", 'Ο': "O", 'Ό': "O",
	'Π': "P", 'Ρ': "R", 'Σ': "S", 'Τ': "T", 'Υ': "Y", 'Ύ': "Y", 'Ϋ': "Y",
	'Φ': "F", 'Χ': "Ch", 'Ψ': "Ps", 'Ω': "O", 'Ώ': "O",
}

var greekToGreeklish = map[rune]string{
	'α': "a", 'ά': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e", 'έ': "e",
	'ζ': "z", 'η': "i", 'ή': "i", 'θ': "th", 'ι': "i", 'ί': "i", 'ϊ': "i",
	'ΐ': "i", 'κ': "k", 'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "ks", 'ο': "o",
	'ό': "o", 'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t", 'υ': "u",
	'ύ': "u", 'ϋ': "u", 'ΰ': "u", 'φ': "f", 'χ': "x", 'ψ': "ps", 'ω': "w",
	'ώ': "w",
	'Α': "A", 'Ά': "A", 'Β': "V", 'Γ': "G", 'Δ': "D", 'Ε': "E", 'Έ': "E",
	'Ζ': "Z", 'Η': "I", 'Ή': "I", 'Θ': "Th", 'Ι': "I", 'Ί': "I", 'Ϊ': "I",
	'Κ': "K", 'Λ': "L", 'Μ': "M", 'Ν': "N", 'Ξ': "Ks", 'Ο': "O", 'Ό': "O",
	'Π': "P", 'Ρ': "R", 'Σ': "S", 'Τ': "T", 'Υ': "U", 'Ύ': "U", 'Ϋ': "U",
	'Φ': "F", 'Χ': "X", 'Ψ': "Ps", 'Ω': "W", 'Ώ': "W",
}

// Transliterate converts text between Greek and Latin scripts. Greeklish
// input is lowercased; unknown characters pass through.
func Transliterate(text string, mode TranslitMode) string {
	switch mode {
	case GreeklishToGreek:
		return fromGreeklish(text)
	case GreekToLatin:
		return mapRunes(text, greekToLatin)
	case GreekToGreeklish:
		return mapRunes(text, greekToGreeklish)
	default:
		return text
	}
}

func fromGreeklish(text string) string {
	rs := []rune(strings.ToLower(text))
	var b strings.Builder
	for i := 0; i < len(rs); i++ {
		if i+1 < len(rs) {
			if g, ok := greeklishDigraphs[string(rs[i:i+2])]; ok {
				b.WriteString(g)
				i++
				continue
			}
		}
		if g, ok := greeklishLetters[rs[i]]; ok {
			b.WriteString(g)
			continue
		}
		b.WriteRune(rs[i])
	}
	return finalSigma(b.String())
}

func mapRunes(text string, table map[rune]string) string {
	var b strings.Builder
	for _, r := range text {
		if s, ok := table[r]; ok {
			b.WriteString(s)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
