package greeknames

import "regexp"

var (
	strictNameRe  = regexp.MustCompile(`^[\p{Greek}\s\-'.]+$`)
	lenientNameRe = regexp.MustCompile(`^[A-Za-z\p{Greek}\s\-'.]+$`)
)

// ValidateName reports whether name looks like a Greek personal name. Strict
// mode accepts Greek letters only; lenient mode also accepts Latin letters as
// long as at least one Greek letter is present. Spaces, hyphens, apostrophes
// and title dots are allowed in both.
func ValidateName(name string, strict bool) bool {
	if strict {
		return strictNameRe.MatchString(name) && hasGreekLetter(name)
	}
	return lenientNameRe.MatchString(name) && hasGreekLetter(name)
}
