package greeknames

import (
	"strings"
)

// particles are the function words that stay lowercase and are never
// inflected or counted as name parts.
var particles = []string{
	"του", "της", "των", "τον", "την", "τα", "το",
	"και", "ή", "ειδών", "εκ", "εξ",
}

// titles lists the honorifics recognised at the start of a name.
var titles = []string{
	"Κος", "Κα", "Δις", "Κυρ", "Κυρία", "Κύριος", "Δεσποινίς",
	"Δρ", "Καθ", "Καθηγητής", "Καθηγήτρια",
	"Πρωθυπουργός", "Υπουργός", "Βουλευτής", "Δήμαρχος", "Περιφερειάρχης",
	"Αρχιεπίσκοπος", "Μητροπολίτης", "Επίσκοπος", "Πατήρ",
	"Στρατηγός", "Ταξίαρχος", "Συνταγματάρχης", "Αντισυνταγματάρχης",
}

// oxytoneNames are first names in -ος stressed on the last syllable.
// Their vocative is identical to the nominative.
var oxytoneNames = []string{"νικολός", "ανδρός", "αναστάσιος"}

// asExceptions are names in -ας that decline like -ης names.
var asExceptions = []string{"θανάσης", "ανάσης"}

var paroxytoneSurnames = []string{
	"ευαγγελάτος", "ευγενελάτος", "βενιζέλος", "παπαδάτος", "παπαδόπουλος",
	"γεωργίου", "κωνσταντίνου", "δημήτριου", "αλεξίου", "νικολάου",
	"παπαγεωργίου", "παπακωνσταντίνου", "παπαδήμου", "παπαδάκης",
	"ανδρέου", "ιωάννου", "βασιλείου", "αθανασίου", "παναγιώτου",
	"χατζηγιάννη", "χατζηκωνσταντίνου", "χατζηπαναγιώτου",
}

var oxytoneSurnames = []string{"ξινός"}

// diminutiveFormants are -ος endings whose vocative is always -ο.
var diminutiveFormants = []string{"άκος", "ούκος", "ίτσος"}

var firstNamesInO = []string{"γιώργος", "νίκος", "σπύρος", "χρήστος", "πέτρος"}

var firstNamesInE = []string{"κωνσταντίνος", "αλέξανδρος", "στέφανος", "νικόλαος"}

// specialVocatives are full-word vocative overrides keyed by folded nominative.
// Παύλος also admits Παύλε; Παύλο is the default.
var specialVocatives = map[string]string{
	"παυλος": "παύλο",
}

// diminutiveEndings maps a diminutive suffix to the ending of its probable base
// form. Order matters: the first matching suffix wins.
var diminutiveEndings = []struct {
	suffix string
	base   string
}{
	{"άκης", "ας/ης"},
	{"ούλης", "ος"},
	{"ίτσα", "α"},
	{"ούλα", "α"},
	{"άκι", "ο"},
	{"ούλι", "ο"},
	{"ίτσας", "ας"},
	{"ούλας", "ας"},
	{"ίκος", "ος"},
	{"ούκος", "ος"},
	{"ίκη", "η"},
	{"ούκα", "α"},
}

// katharevousaEndings rewrites learned word-final endings to their demotic form.
var katharevousaEndings = []struct {
	old    string
	modern string
}{
	{"ειον", "ειο"},
	{"αιον", "αιο"},
	{"ιον", "ιο"},
}

// corrections maps folded misspellings to the correctly accented name.
var corrections = map[string]string{
	"γιοργος":      "γιώργος",
	"γεωργιος":     "γεώργιος",
	"δημητρης":     "δημήτρης",
	"δημητριος":    "δημήτριος",
	"νικος":        "νίκος",
	"νικολαος":     "νικόλαος",
	"μαρια":        "μαρία",
	"ελενη":        "ελένη",
	"κωνσταντινος": "κωνσταντίνος",
	"κωστας":       "κώστας",
	"ιωαννης":      "ιωάννης",
	"γιαννης":      "γιάννης",
	"αναστασια":    "αναστασία",
	"σοφια":        "σοφία",
	"παναγιωτης":   "παναγιώτης",
	"παναγιωτα":    "παναγιώτα",
}

// foldedSet indexes a word list by folded key.
type foldedSet map[string]struct{}

func newFoldedSet(words ...[]string) foldedSet {
	s := make(foldedSet)
	for _, list := range words {
		for _, w := range list {
			s[Fold(w)] = struct{}{}
		}
	}
	return s
}

func (s foldedSet) has(folded string) bool {
	_, ok := s[folded]
	return ok
}

// foldList folds every word, dropping those that fold to nothing.
func foldList(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if f := Fold(w); f != "" {
			out = append(out, f)
		}
	}
	return out
}

var (
	foldedFirstNamesInO = newFoldedSet(firstNamesInO)
	foldedFirstNamesInE = newFoldedSet(firstNamesInE)
	foldedOxytoneNames  = newFoldedSet(oxytoneNames)
	foldedSurnames      = newFoldedSet(paroxytoneSurnames, oxytoneSurnames)
	foldedAsExceptions  = foldList(asExceptions)
)

// IsParticle reports whether word is a particle such as "του" or "και".
// The comparison is case-insensitive.
func IsParticle(word string) bool {
	lw := finalSigma(strings.ToLower(word))
	for _, p := range particles {
		if lw == p {
			return true
		}
	}
	return false
}

// IsTitle reports whether word is a known title, ignoring case, accents and
// a trailing dot on either side.
func IsTitle(word string) bool {
	_, ok := matchTitle(word)
	return ok
}

func matchTitle(word string) (string, bool) {
	lw := Fold(word)
	for _, t := range titles {
		lt := Fold(t)
		if lw == lt || lw+"." == lt || lw == lt+"." {
			return t, true
		}
	}
	return "", false
}

// ExtractTitle splits a leading title off name. When the first word is not a
// title, title is empty and rest is name unchanged.
func ExtractTitle(name string) (title, rest string) {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "", name
	}
	t, ok := matchTitle(words[0])
	if !ok {
		return "", name
	}
	return Capitalize(t), strings.Join(words[1:], " ")
}

// SuggestCorrection replaces known misspellings word by word. The result is
// lowercase; ok is false when no word was corrected.
func SuggestCorrection(text string) (string, bool) {
	words := strings.Fields(strings.ToLower(text))
	changed := false
	for i, w := range words {
		if c, found := corrections[Fold(w)]; found && c != w {
			words[i] = c
			changed = true
		}
	}
	if !changed {
		return "", false
	}
	return strings.Join(words, " "), true
}

// ConvertKatharevousa rewrites learned endings (-ιον, -ειον, -αιον) on every
// word to their modern form.
func ConvertKatharevousa(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	for i, w := range words {
		folded := Fold(w)
		for _, e := range katharevousaEndings {
			if strings.HasSuffix(folded, e.old) {
				words[i] = replaceEnding(w, len([]rune(e.old)), e.modern)
				break
			}
		}
	}
	return strings.Join(words, " ")
}

// DetectDiminutives reports every word of name that ends in a diminutive
// suffix, with a guess at its base form.
func DetectDiminutives(name string) []Diminutive {
	var out []Diminutive
	for _, part := range strings.Fields(strings.ToLower(name)) {
		folded := Fold(part)
		for _, d := range diminutiveEndings {
			suffix := Fold(d.suffix)
			if !strings.HasSuffix(folded, suffix) {
				continue
			}
			runes := []rune(part)
			stem := string(runes[:len(runes)-len([]rune(suffix))])
			out = append(out, Diminutive{
				Word:         Capitalize(part),
				PossibleBase: Capitalize(stem + d.base),
				Suffix:       d.suffix,
			})
			break
		}
	}
	return out
}

func isDiminutiveFormant(folded string) bool {
	for _, f := range diminutiveFormants {
		if strings.HasSuffix(folded, Fold(f)) {
			return true
		}
	}
	return false
}
