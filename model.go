package greeknames

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownCase is returned by ParseCase for names it does not recognise.
var ErrUnknownCase = errors.New("unknown grammatical case")

// Case is a grammatical case a name can be put into.
type Case int

const (
	CaseNominative Case = iota
	CaseGenitive
	CaseVocative
	CaseAccusative
)

var caseNames = map[Case]string{
	CaseNominative: "nominative",
	CaseGenitive:   "genitive",
	CaseVocative:   "vocative",
	CaseAccusative: "accusative",
}

// caseAliases maps every accepted spelling (English and Greek) to its Case.
var caseAliases = map[string]Case{
	"":           CaseNominative,
	"none":       CaseNominative,
	"nominative": CaseNominative,
	"ονομαστικη": CaseNominative,
	"genitive":   CaseGenitive,
	"γενικη":     CaseGenitive,
	"vocative":   CaseVocative,
	"κλητικη":    CaseVocative,
	"accusative": CaseAccusative,
	"αιτιατικη":  CaseAccusative,
}

func (c Case) String() string {
	if s, ok := caseNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

// ParseCase accepts English or Greek case names, ignoring case and accents.
// The empty string and "none" mean Nominative.
func ParseCase(s string) (Case, error) {
	if c, ok := caseAliases[Fold(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return CaseNominative, fmt.Errorf("%w: %q", ErrUnknownCase, s)
}

func (c Case) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Case) UnmarshalText(b []byte) error {
	parsed, err := ParseCase(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Role tells whether a name token is a first name or a surname.
type Role int

const (
	RoleUnknown Role = iota
	RoleFirstName
	RoleSurname
)

func (r Role) String() string {
	switch r {
	case RoleFirstName:
		return "first_name"
	case RoleSurname:
		return "surname"
	default:
		return "unknown"
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Stress is the accent position class relevant to -ος names.
type Stress int

const (
	StressUnknown Stress = iota
	// Paroxytone words are stressed on the penultimate syllable.
	Paroxytone
	// Oxytone words are stressed on the last syllable.
	Oxytone
)

func (s Stress) String() string {
	switch s {
	case Paroxytone:
		return "paroxytone"
	case Oxytone:
		return "oxytone"
	default:
		return "unknown"
	}
}

func (s Stress) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Example is one nominative/inflected pair read from a rule document.
type Example struct {
	Nominative string `json:"nominative" yaml:"nominative"`
	Form       string `json:"form" yaml:"form"`
	// Unchanged is set when the inflected form equals the nominative.
	Unchanged bool `json:"unchanged,omitempty" yaml:"unchanged,omitempty"`
}

// Pattern is a right-anchored suffix rewrite.
type Pattern struct {
	// From and To are lowercase endings without the leading dash.
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	// Role and Stress restrict the pattern when known.
	Role   Role   `json:"role" yaml:"role"`
	Stress Stress `json:"stress" yaml:"stress"`
	// Section is the heading the pattern appeared under.
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
	// Example is the pair the pattern was derived from, nil for explicit
	// ending mappings.
	Example *Example `json:"example,omitempty" yaml:"example,omitempty"`
}

// RuleTable holds the rules parsed from one rule document. Every lookup
// method is safe on a nil table and reports no match.
type RuleTable struct {
	Case     Case      `json:"case" yaml:"case"`
	Patterns []Pattern `json:"patterns" yaml:"patterns"`
	// SpecialCases maps folded nominatives to a full lowercase form.
	SpecialCases map[string]string `json:"special_cases" yaml:"special_cases"`

	FirstNamesInO       []string `json:"first_names_in_o" yaml:"first_names_in_o"`
	FirstNamesInE       []string `json:"first_names_in_e" yaml:"first_names_in_e"`
	FirstNamesUnchanged []string `json:"first_names_unchanged" yaml:"first_names_unchanged"`
	SurnamesInO         []string `json:"surnames_in_o" yaml:"surnames_in_o"`
	SurnamesInE         []string `json:"surnames_in_e" yaml:"surnames_in_e"`

	Diminutives  []Example `json:"diminutives" yaml:"diminutives"`
	AsExceptions []string  `json:"as_exceptions" yaml:"as_exceptions"`
	Examples     []Example `json:"examples" yaml:"examples"`
	// Samples holds the one-sided "label: a, b, c" lists keyed by label.
	Samples map[string][]string `json:"samples,omitempty" yaml:"samples,omitempty"`

	indexOnce sync.Once
	index     *ruleIndex
}

// ruleIndex holds the folded forms of a table's word lists.
type ruleIndex struct {
	inO, inE, unchanged    foldedSet
	surnameInO, surnameInE foldedSet
	diminutives            foldedSet
	asExceptions           []string
}

// folded returns the table's lookup index, building it on first use. The
// word lists must not change after the first lookup.
func (t *RuleTable) folded() *ruleIndex {
	t.indexOnce.Do(func() {
		dims := make([]string, 0, len(t.Diminutives))
		for _, d := range t.Diminutives {
			dims = append(dims, d.Nominative)
		}
		t.index = &ruleIndex{
			inO:          newFoldedSet(t.FirstNamesInO),
			inE:          newFoldedSet(t.FirstNamesInE),
			unchanged:    newFoldedSet(t.FirstNamesUnchanged),
			surnameInO:   newFoldedSet(t.SurnamesInO),
			surnameInE:   newFoldedSet(t.SurnamesInE),
			diminutives:  newFoldedSet(dims),
			asExceptions: foldList(t.AsExceptions),
		}
	})
	return t.index
}

func newRuleTable(c Case) *RuleTable {
	return &RuleTable{
		Case:         c,
		SpecialCases: make(map[string]string),
		Samples:      make(map[string][]string),
	}
}

// SpecialCase returns the full-word override for a folded nominative.
func (t *RuleTable) SpecialCase(folded string) (string, bool) {
	if t == nil {
		return "", false
	}
	form, ok := t.SpecialCases[folded]
	return form, ok
}

func (t *RuleTable) inO(folded string) bool {
	return t != nil && t.folded().inO.has(folded)
}

func (t *RuleTable) inE(folded string) bool {
	return t != nil && t.folded().inE.has(folded)
}

func (t *RuleTable) unchanged(folded string) bool {
	return t != nil && t.folded().unchanged.has(folded)
}

func (t *RuleTable) surnameInO(folded string) bool {
	return t != nil && t.folded().surnameInO.has(folded)
}

func (t *RuleTable) surnameInE(folded string) bool {
	return t != nil && t.folded().surnameInE.has(folded)
}

func (t *RuleTable) isSurname(folded string) bool {
	return t.surnameInO(folded) || t.surnameInE(folded)
}

func (t *RuleTable) isDiminutive(folded string) bool {
	return t != nil && t.folded().diminutives.has(folded)
}

// asExceptions returns the table's -ας exceptions, already folded.
func (t *RuleTable) asExceptions() []string {
	if t == nil {
		return nil
	}
	return t.folded().asExceptions
}

// EndingFor returns the ending an explicit ending mapping assigns to from
// for the given role and stress. Patterns derived from examples are ignored.
func (t *RuleTable) EndingFor(from string, role Role, stress Stress) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, p := range t.Patterns {
		if p.Example != nil || p.From != from {
			continue
		}
		if p.Role == role && p.Stress == stress {
			return p.To, true
		}
	}
	return "", false
}
