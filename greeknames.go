// Package greeknames corrects Greek personal names and puts them into the
// genitive, vocative and accusative cases. Built-in name tables cover the
// common cases; markdown rule documents can extend them at run time.
package greeknames

// Corrector holds the rule source and provides the public API. A Corrector
// is safe for concurrent use.
type Corrector struct {
	// rules supplies parsed rule tables; nil means built-in tables only.
	rules RuleSource
}

// New returns a Corrector backed by rules, which may be nil.
func New(rules RuleSource) *Corrector {
	return &Corrector{rules: rules}
}

// builtin serves the package-level functions.
var builtin = New(nil)

// VocativeRules returns the parsed vocative table, or nil.
func (c *Corrector) VocativeRules() *RuleTable {
	if c == nil || c.rules == nil {
		return nil
	}
	return c.rules.VocativeRules()
}

// AccusativeRules returns the parsed accusative table, or nil.
func (c *Corrector) AccusativeRules() *RuleTable {
	if c == nil || c.rules == nil {
		return nil
	}
	return c.rules.AccusativeRules()
}

// Rules returns the parsed table for cs. Only the vocative and accusative
// have rule documents.
func (c *Corrector) Rules(cs Case) *RuleTable {
	switch cs {
	case CaseVocative:
		return c.VocativeRules()
	case CaseAccusative:
		return c.AccusativeRules()
	default:
		return nil
	}
}

// Genitive returns name in the genitive case using the built-in tables.
func Genitive(name string, opts CaseOptions) string {
	return builtin.Genitive(name, opts)
}

// Vocative returns name in the vocative case using the built-in tables.
func Vocative(name string, opts CaseOptions) string {
	return builtin.Vocative(name, opts)
}

// Accusative returns name in the accusative case using the built-in tables.
func Accusative(name string, opts CaseOptions) string {
	return builtin.Accusative(name, opts)
}

// Inflect puts name into case cs using the built-in tables.
func Inflect(name string, cs Case, opts CaseOptions) string {
	return builtin.Inflect(name, cs, opts)
}

// Process runs the correction pipeline with the built-in tables.
func Process(name string, opts Options) (*Result, error) {
	return builtin.Process(name, opts)
}
