package greeknames

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
)

var (
	unsafeCharsRe  = regexp.MustCompile(`[^\x{0370}-\x{03FF}\x{1F00}-\x{1FFF}\w\s\-']`)
	diaeresisRe    = regexp.MustCompile(`[ϊϋΐΰΪΫ]`)
	digitRe        = regexp.MustCompile(`\d`)
	specialCharsRe = regexp.MustCompile(`[^\p{Greek}\s\-']`)
)

// SortKey returns a collation key: lowercase, accents removed, final sigma
// written as σ.
func SortKey(name string) string {
	return strings.ReplaceAll(Fold(name), "ς", "σ")
}

// Slug returns a URL-safe ASCII form of name.
func Slug(name string) string {
	return slug.MakeLang(name, "el")
}

// DatabaseSafe drops every character outside Greek, ASCII word characters,
// whitespace, hyphen and apostrophe, then collapses spaces.
func DatabaseSafe(name string) string {
	return CollapseSpaces(unsafeCharsRe.ReplaceAllString(name, ""))
}

// ComputeStatistics describes processed, the pipeline output, and original,
// the raw input.
func ComputeStatistics(processed, original string) Statistics {
	words := strings.Fields(processed)
	s := Statistics{
		Length:          len([]rune(processed)),
		OriginalLength:  len([]rune(original)),
		HasAccents:      hasAccent(processed),
		HasDiaeresis:    diaeresisRe.MatchString(processed),
		HasNumbers:      digitRe.MatchString(processed),
		HasSpecialChars: specialCharsRe.MatchString(processed),
	}
	for _, w := range words {
		if IsParticle(w) {
			s.HasParticles = true
			continue
		}
		s.WordCount++
	}
	if hasGreekLetter(original) {
		s.IsAllCaps = original == strings.ToUpper(original)
		s.IsAllLower = original == strings.ToLower(original)
	}
	return s
}

var (
	maleEndings   = []string{"ος", "ης", "ας", "ους"}
	femaleEndings = []string{"ου", "α", "η"}
)

// DetectGender guesses gender from the last name part. Surnames in -ου are
// shared by both genders, so the first name decides for them.
func DetectGender(name string) Gender {
	var words []string
	for _, w := range strings.Fields(name) {
		if !IsTitle(w) && !IsParticle(w) && !isGeneralTitle(w) {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return GenderUnknown
	}
	last := Fold(words[len(words)-1])
	if strings.HasSuffix(last, "ου") && len(words) > 1 {
		if g := genderOf(Fold(words[0])); g != GenderUnknown {
			return g
		}
	}
	return genderOf(last)
}

func genderOf(folded string) Gender {
	for _, e := range maleEndings {
		if strings.HasSuffix(folded, e) {
			return GenderMale
		}
	}
	for _, e := range femaleEndings {
		if strings.HasSuffix(folded, e) {
			return GenderFemale
		}
	}
	return GenderUnknown
}

func isGeneralTitle(w string) bool {
	lw := strings.ToLower(w)
	return lw == "κ." || lw == "κα"
}

// SplitNameParts splits name into first, middle and last name.
func SplitNameParts(name string) NameParts {
	var parts []string
	for _, w := range strings.Fields(name) {
		if IsParticle(w) || IsTitle(w) || isGeneralTitle(w) {
			continue
		}
		parts = append(parts, w)
	}
	switch len(parts) {
	case 0:
		return NameParts{}
	case 1:
		return NameParts{FirstName: parts[0]}
	case 2:
		return NameParts{FirstName: parts[0], LastName: parts[1]}
	default:
		return NameParts{
			FirstName:  parts[0],
			MiddleName: strings.Join(parts[1:len(parts)-1], " "),
			LastName:   parts[len(parts)-1],
		}
	}
}

// GeneralTitle returns "κ." for male names, "κα" for female names and ""
// when the gender is unknown.
func GeneralTitle(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	switch DetectGender(name) {
	case GenderMale:
		return "κ."
	case GenderFemale:
		return "κα"
	default:
		return ""
	}
}

// AddAccents accents every unaccented word of name except particles and
// titles.
func AddAccents(name string) string {
	if strings.TrimSpace(name) == "" {
		return name
	}
	parts := strings.Fields(name)
	for i, p := range parts {
		if IsParticle(p) || IsTitle(p) {
			continue
		}
		parts[i] = AddAccentsToWord(p)
	}
	return strings.Join(parts, " ")
}

// AddAccentsToWord puts a single tonos on word when it has none. Known names
// take their dictionary accent; other words are accented by ending.
func AddAccentsToWord(word string) string {
	if word == "" || hasAccent(word) {
		return word
	}
	if c, ok := corrections[Fold(word)]; ok {
		return applyCase(word, c)
	}

	rs := []rune(word)
	var vowels []int
	for i, r := range rs {
		if strings.ContainsRune("αεηιουωΑΕΗΙΟΥΩ", r) {
			vowels = append(vowels, i)
		}
	}
	if len(vowels) == 0 {
		return word
	}

	folded := Fold(word)
	idx := 0
	switch {
	case len(rs) <= 3:
		idx = 0
	case hasAnySuffix(folded, maleEndings):
		switch {
		case len(vowels) >= 3:
			idx = len(vowels) - 3
		case len(vowels) == 2:
			idx = 0
		}
	default:
		if len(vowels) >= 2 {
			idx = len(vowels) - 2
		}
	}
	pos := vowels[idx]
	rs[pos] = accentVowel(rs[pos])
	return string(rs)
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func hasGreekLetter(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Greek, r) && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
