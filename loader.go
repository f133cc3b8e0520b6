package greeknames

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
)

var (
	// labelRe matches "vocative: Γιώργο, Νίκο" sample lists.
	labelRe = regexp.MustCompile(`(?i)^(nominative|vocative|accusative|genitive|ονομαστική|κλητική|αιτιατική|γενική)\s*:\s*(.+)$`)
	// endingRe matches "-ος (οξύτονα) → -ε" ending mappings.
	endingRe = regexp.MustCompile(`^-\s*(\p{Greek}+)\s*(?:\(([^)]*)\))?\s*(?:→|->|-)\s*-?\s*(\p{Greek}+)`)
	// wordRe matches "Γιώργος → Γιώργο" word mappings.
	wordRe = regexp.MustCompile(`^(\p{Greek}+)\s*(?:→|->|-)\s*(\p{Greek}+)`)
)

// tableHeaderWords mark a table row as a header.
var tableHeaderWords = []string{
	"nominative", "vocative", "accusative", "genitive", "translation",
	"ονομαστικη", "κλητικη", "αιτιατικη", "γενικη", "μεταφραση",
}

// ParseRules parses a rule document held in memory.
func ParseRules(doc string, c Case) (*RuleTable, error) {
	return ParseRuleDocument(strings.NewReader(doc), c)
}

// ParseRuleDocument reads a markdown rule document for case c. Lines it
// cannot interpret are skipped; only read errors are returned.
func ParseRuleDocument(r io.Reader, c Case) (*RuleTable, error) {
	p := &ruleParser{table: newRuleTable(c)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.parseLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rule document: %w", err)
	}
	p.table.folded()
	return p.table, nil
}

type ruleParser struct {
	table   *RuleTable
	section string
	inFence bool
}

func (p *ruleParser) parseLine(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return
	}
	if strings.HasPrefix(line, "```") {
		p.inFence = !p.inFence
		return
	}
	if p.inFence {
		p.parseMapping(line)
		return
	}
	if strings.HasPrefix(line, "#") {
		p.section = strings.ToLower(strings.TrimSpace(strings.TrimLeft(line, "#")))
		return
	}
	if strings.Count(line, "|") >= 2 {
		p.parseTableRow(line)
		return
	}
	if rest, ok := cutBullet(line); ok {
		p.parseMapping(rest)
		return
	}
	p.parseBare(line)
}

// cutBullet strips a "- " or "* " list marker.
func cutBullet(line string) (string, bool) {
	for _, marker := range []string{"- ", "* "} {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return line, false
}

func stripBold(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}

// parseMapping handles bullet and fenced lines.
func (p *ruleParser) parseMapping(line string) {
	line = stripBold(line)
	if m := labelRe.FindStringSubmatch(line); m != nil {
		label := Fold(m[1])
		for _, item := range strings.Split(m[2], ",") {
			if item = strings.TrimSpace(item); item != "" {
				p.table.Samples[label] = append(p.table.Samples[label], item)
			}
		}
		return
	}
	if m := endingRe.FindStringSubmatch(line); m != nil {
		p.table.Patterns = append(p.table.Patterns, Pattern{
			From:    strings.ToLower(m[1]),
			To:      strings.ToLower(m[3]),
			Role:    p.role(),
			Stress:  parseStressNote(m[2]),
			Section: p.section,
		})
		return
	}
	if m := wordRe.FindStringSubmatch(line); m != nil {
		p.addExample(m[1], m[2])
	}
}

// parseBare handles a plain "Word → Word" line as a full-word override.
func (p *ruleParser) parseBare(line string) {
	line = stripBold(line)
	if strings.HasPrefix(line, "-") {
		p.parseMapping(line)
		return
	}
	m := wordRe.FindStringSubmatch(line)
	if m == nil {
		return
	}
	p.table.SpecialCases[Fold(m[1])] = strings.ToLower(m[2])
}

func (p *ruleParser) parseTableRow(line string) {
	var cells []string
	for _, c := range strings.Split(line, "|") {
		if c = stripBold(c); c != "" {
			cells = append(cells, c)
		}
	}
	if len(cells) < 2 {
		return
	}
	nom, form := cells[0], cells[1]
	if isSeparatorCell(nom) || isSeparatorCell(form) {
		return
	}
	for _, cell := range cells[:2] {
		folded := Fold(cell)
		for _, w := range tableHeaderWords {
			if strings.Contains(folded, w) {
				return
			}
		}
	}
	p.addExample(nom, form)
}

func isSeparatorCell(c string) bool {
	return strings.Trim(c, "-: ") == ""
}

// addExample records a nominative/form pair, derives its suffix pattern and
// sorts the nominative into the matching name list.
func (p *ruleParser) addExample(nom, form string) {
	ex := Example{
		Nominative: nom,
		Form:       form,
		Unchanged:  Fold(nom) == Fold(form),
	}
	p.table.Examples = append(p.table.Examples, ex)

	lowerNom := strings.ToLower(nom)
	foldedNom, foldedForm := Fold(nom), Fold(form)

	if ex.Unchanged {
		if strings.HasSuffix(foldedNom, "ος") {
			p.table.FirstNamesUnchanged = append(p.table.FirstNamesUnchanged, lowerNom)
		}
		return
	}

	if from, to, ok := suffixPair(nom, form); ok {
		role := RoleUnknown
		if strings.HasSuffix(foldedNom, "ος") {
			role = p.role()
		}
		exCopy := ex
		p.table.Patterns = append(p.table.Patterns, Pattern{
			From:    from,
			To:      to,
			Role:    role,
			Section: p.section,
			Example: &exCopy,
		})
	}

	switch {
	case strings.HasSuffix(foldedNom, "ος") && strings.HasSuffix(foldedForm, "ο"):
		switch {
		case isDiminutiveFormant(foldedNom):
			p.table.Diminutives = append(p.table.Diminutives, ex)
		case p.role() == RoleSurname:
			p.table.SurnamesInO = append(p.table.SurnamesInO, lowerNom)
		default:
			p.table.FirstNamesInO = append(p.table.FirstNamesInO, lowerNom)
		}
	case strings.HasSuffix(foldedNom, "ος") && strings.HasSuffix(foldedForm, "ε"):
		if p.role() == RoleSurname {
			p.table.SurnamesInE = append(p.table.SurnamesInE, lowerNom)
		} else {
			p.table.FirstNamesInE = append(p.table.FirstNamesInE, lowerNom)
		}
	case strings.HasSuffix(foldedNom, "ας") && strings.HasSuffix(foldedForm, "η"):
		p.table.AsExceptions = append(p.table.AsExceptions, lowerNom)
	}
}

// role derives the name role from the current section heading.
func (p *ruleParser) role() Role {
	s := Fold(p.section)
	for _, kw := range []string{"surname", "επωνυμ", "επιθετ"} {
		if strings.Contains(s, kw) {
			return RoleSurname
		}
	}
	return RoleFirstName
}

func parseStressNote(note string) Stress {
	n := Fold(note)
	switch {
	case n == "":
		return StressUnknown
	case strings.Contains(n, "παροξυτον"), strings.Contains(n, "paroxytone"):
		return Paroxytone
	case strings.Contains(n, "οξυτον"), strings.Contains(n, "oxytone"):
		return Oxytone
	default:
		return StressUnknown
	}
}

// suffixPair returns the two- or three-rune endings of nom and form, taking
// the first length at which both are lowercase Greek letters.
func suffixPair(nom, form string) (string, string, bool) {
	ln, lf := []rune(strings.ToLower(nom)), []rune(strings.ToLower(form))
	for _, n := range []int{2, 3} {
		if len(ln) < n || len(lf) < n {
			return "", "", false
		}
		from, to := ln[len(ln)-n:], lf[len(lf)-n:]
		if allGreekLetters(from) && allGreekLetters(to) {
			return string(from), string(to), true
		}
	}
	return "", "", false
}

func allGreekLetters(rs []rune) bool {
	for _, r := range rs {
		if !unicode.Is(unicode.Greek, r) || !unicode.IsLetter(r) || !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
