package greeknames

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CaseOptions controls the case transformer.
type CaseOptions struct {
	// HandleParticles leaves particles such as "του" untouched.
	HandleParticles bool `json:"handle_particles" yaml:"handle_particles"`
}

// token is one whitespace-separated part of a name.
type token struct {
	text   string
	folded string
	index  int
	total  int
}

// rewrite is the outcome of an ending rule: either keep the token or replace
// the matched ending with to.
type rewrite struct {
	to   string
	keep bool
}

var keepToken = rewrite{keep: true}

// endingRule matches a folded suffix and decides the new ending.
type endingRule struct {
	suffix  string
	resolve func(t token, rules *RuleTable) rewrite
}

func fixed(ending string) func(token, *RuleTable) rewrite {
	return func(token, *RuleTable) rewrite { return rewrite{to: ending} }
}

func keepEnding(token, *RuleTable) rewrite { return keepToken }

var genitiveEndings = []endingRule{
	{"ος", fixed("ου")},
	{"ας", fixed("α")},
	{"ης", fixed("η")},
	{"ου", keepEnding},
	{"α", fixed("ας")},
	{"η", fixed("ης")},
}

var vocativeEndings = []endingRule{
	{"ος", vocativeOs},
	{"ης", fixed("η")},
	{"ας", asEnding},
	{"ους", fixed("ου")},
	{"ου", keepEnding},
}

var accusativeEndings = []endingRule{
	{"ος", fixed("ο")},
	{"ης", fixed("η")},
	{"ας", asEnding},
	{"ους", fixed("ου")},
	{"ου", keepEnding},
}

// vocativeOs picks -ο, -ε or no change for a name in -ος.
func vocativeOs(t token, rules *RuleTable) rewrite {
	f := t.folded
	switch {
	case isDiminutiveFormant(f), rules.isDiminutive(f):
		return rewrite{to: "ο"}
	case rules.inO(f):
		return rewrite{to: "ο"}
	case rules.inE(f):
		return rewrite{to: "ε"}
	case rules.unchanged(f):
		return keepToken
	case foldedFirstNamesInO.has(f):
		return rewrite{to: "ο"}
	case foldedFirstNamesInE.has(f):
		return rewrite{to: "ε"}
	case foldedOxytoneNames.has(f):
		return keepToken
	}

	if isLikelySurname(t.text, t.index, t.total, rules) {
		switch {
		case rules.surnameInO(f):
			return rewrite{to: "ο"}
		case rules.surnameInE(f):
			return rewrite{to: "ε"}
		}
		stress := Paroxytone
		if IsOxytoneSurname(t.text) {
			stress = Oxytone
		}
		if to, ok := rules.EndingFor("ος", RoleSurname, stress); ok {
			return rewrite{to: to}
		}
		if stress == Oxytone {
			return rewrite{to: "ε"}
		}
		return rewrite{to: "ο"}
	}

	if IsOxytone(t.text) {
		return keepToken
	}
	if SyllableCount(t.text) <= 2 {
		return rewrite{to: "ο"}
	}
	return rewrite{to: "ε"}
}

// asEnding declines -ας names: -η for names that follow the -ης pattern,
// -α otherwise.
func asEnding(t token, rules *RuleTable) rewrite {
	if matchesAsException(t.folded, rules.asExceptions()) {
		return rewrite{to: "η"}
	}
	return rewrite{to: "α"}
}

// matchesAsException reports whether folded matches a built-in or extra
// exception. extra must already be folded.
func matchesAsException(folded string, extra []string) bool {
	stem := trimAsEnding(folded)
	for _, list := range [][]string{foldedAsExceptions, extra} {
		for _, fe := range list {
			if strings.Contains(folded, fe) || stem == trimAsEnding(fe) {
				return true
			}
		}
	}
	return false
}

func trimAsEnding(folded string) string {
	for _, e := range []string{"ας", "ης"} {
		if s, ok := strings.CutSuffix(folded, e); ok {
			return s
		}
	}
	return folded
}

// Genitive returns name in the genitive using the built-in rules.
func (c *Corrector) Genitive(name string, opts CaseOptions) string {
	return c.Inflect(name, CaseGenitive, opts)
}

// Vocative returns name in the vocative.
func (c *Corrector) Vocative(name string, opts CaseOptions) string {
	return c.Inflect(name, CaseVocative, opts)
}

// Accusative returns name in the accusative.
func (c *Corrector) Accusative(name string, opts CaseOptions) string {
	return c.Inflect(name, CaseAccusative, opts)
}

// Inflect puts every token of name into case cs. Token count and order are
// preserved. Nominative and blank input come back unchanged.
func (c *Corrector) Inflect(name string, cs Case, opts CaseOptions) string {
	if strings.TrimSpace(name) == "" {
		return name
	}

	var (
		endings []endingRule
		rules   *RuleTable
	)
	switch cs {
	case CaseGenitive:
		endings = genitiveEndings
	case CaseVocative:
		endings, rules = vocativeEndings, c.VocativeRules()
	case CaseAccusative:
		endings, rules = accusativeEndings, c.AccusativeRules()
	default:
		return name
	}

	parts := strings.Fields(name)
	for i, p := range parts {
		if opts.HandleParticles && IsParticle(p) {
			continue
		}
		p = norm.NFC.String(p)
		t := token{text: p, folded: Fold(p), index: i, total: len(parts)}
		parts[i] = inflectToken(t, cs, endings, rules)
	}
	return strings.Join(parts, " ")
}

func inflectToken(t token, cs Case, endings []endingRule, rules *RuleTable) string {
	if cs == CaseVocative {
		if form, ok := rules.SpecialCase(t.folded); ok {
			return applyCase(t.text, form)
		}
		if form, ok := specialVocatives[t.folded]; ok {
			return applyCase(t.text, form)
		}
	}
	for _, e := range endings {
		if !strings.HasSuffix(t.folded, e.suffix) {
			continue
		}
		rw := e.resolve(t, rules)
		if rw.keep {
			return t.text
		}
		return replaceEnding(t.text, len([]rune(e.suffix)), rw.to)
	}
	return t.text
}
