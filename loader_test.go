package greeknames

import (
	"testing"
	"testing/iotest"
)

const vocativeDoc = "# Κλητική ονομάτων\n" +
	"\n" +
	"Τα αρσενικά σε -ος αλλάζουν κατάληξη.\n" +
	"\n" +
	"## Μικρά ονόματα σε -ος\n" +
	"- -ος (παροξύτονα) → -ο\n" +
	"- Λάμπρος → Λάμπρο\n" +
	"- **Φίλιππος** → **Φίλιππε**\n" +
	"* Ευάγγελος -> Ευάγγελε\n" +
	"- Νικολός → Νικολός\n" +
	"- Μανολάκος → Μανολάκο\n" +
	"- vocative: Λάμπρο, Φίλιππε\n" +
	"\n" +
	"| Ονομαστική | Κλητική |\n" +
	"|---|---|\n" +
	"| Στέλιος | Στέλιο |\n" +
	"| Αντώνης | Αντώνη |\n" +
	"\n" +
	"## Επώνυμα σε -ος\n" +
	"- -ος (οξύτονα) → -ε\n" +
	"- Σκορδός → Σκορδό\n" +
	"- Καλαμαράκος - Καλαμαράκο\n" +
	"\n" +
	"## Ειδικές περιπτώσεις\n" +
	"**Παύλος** → **Παύλε**\n" +
	"\n" +
	"```\n" +
	"Ζήσης → Ζήση\n" +
	"```\n" +
	"- this line is not a rule\n"

const accusativeDoc = "# Αιτιατική\n" +
	"## Ονόματα σε -ας με κλίση σε -η\n" +
	"- Παντελάκας → Παντελάκη\n" +
	"- Ανδρέας → Ανδρέα\n"

func TestParseRulesLists(t *testing.T) {
	rt, err := ParseRules(vocativeDoc, CaseVocative)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if rt.Case != CaseVocative {
		t.Errorf("Case = %v, want %v", rt.Case, CaseVocative)
	}

	checks := []struct {
		list string
		got  []string
		want string
	}{
		{"FirstNamesInO", rt.FirstNamesInO, "λάμπρος"},
		{"FirstNamesInO", rt.FirstNamesInO, "στέλιος"},
		{"FirstNamesInE", rt.FirstNamesInE, "φίλιππος"},
		{"FirstNamesInE", rt.FirstNamesInE, "ευάγγελος"},
		{"FirstNamesUnchanged", rt.FirstNamesUnchanged, "νικολός"},
		{"SurnamesInO", rt.SurnamesInO, "σκορδός"},
	}
	for _, c := range checks {
		if !newFoldedSet(c.got).has(Fold(c.want)) {
			t.Errorf("%s = %v, missing %q", c.list, c.got, c.want)
		}
	}

	if len(rt.Diminutives) != 2 {
		t.Errorf("Diminutives = %v, want Μανολάκος and Καλαμαράκος", rt.Diminutives)
	}
	if got := rt.SpecialCases["παυλος"]; got != "παύλε" {
		t.Errorf("SpecialCases[παυλος] = %q, want %q", got, "παύλε")
	}
	if got := rt.Samples["vocative"]; len(got) != 2 {
		t.Errorf("Samples[vocative] = %v, want 2 items", got)
	}
}

func TestParseRulesPatterns(t *testing.T) {
	rt, err := ParseRules(vocativeDoc, CaseVocative)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}

	if to, ok := rt.EndingFor("ος", RoleSurname, Oxytone); !ok || to != "ε" {
		t.Errorf("EndingFor(ος, surname, oxytone) = %q, %v; want ε, true", to, ok)
	}
	if to, ok := rt.EndingFor("ος", RoleFirstName, Paroxytone); !ok || to != "ο" {
		t.Errorf("EndingFor(ος, first name, paroxytone) = %q, %v; want ο, true", to, ok)
	}
	if _, ok := rt.EndingFor("ος", RoleSurname, Paroxytone); ok {
		t.Error("EndingFor(ος, surname, paroxytone) matched a pattern the document does not have")
	}

	var derived int
	for _, p := range rt.Patterns {
		if p.Example == nil {
			continue
		}
		derived++
		if p.Example.Nominative == "Λάμπρος" && (p.From != "ος" || p.To != "ρο" || p.Role != RoleFirstName) {
			t.Errorf("pattern from Λάμπρος = %+v, want ος → ρο for a first name", p)
		}
		if p.Example.Nominative == "Σκορδός" && p.Role != RoleSurname {
			t.Errorf("pattern from Σκορδός has role %v, want surname", p.Role)
		}
	}
	if derived == 0 {
		t.Error("no pattern derived from the examples")
	}
}

func TestParseRulesFence(t *testing.T) {
	rt, err := ParseRules(vocativeDoc, CaseVocative)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	for _, ex := range rt.Examples {
		if ex.Nominative == "Ζήσης" && ex.Form == "Ζήση" {
			return
		}
	}
	t.Errorf("fenced mapping Ζήσης → Ζήση not found in %v", rt.Examples)
}

func TestParseRulesAsExceptions(t *testing.T) {
	rt, err := ParseRules(accusativeDoc, CaseAccusative)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if len(rt.AsExceptions) != 1 || rt.AsExceptions[0] != "παντελάκας" {
		t.Errorf("AsExceptions = %v, want [παντελάκας]", rt.AsExceptions)
	}
	if rt.index == nil {
		t.Fatal("ParseRules left the lookup index unbuilt")
	}
	if got := rt.asExceptions(); len(got) != 1 || got[0] != "παντελακας" {
		t.Errorf("asExceptions() = %v, want folded [παντελακας]", got)
	}
	if len(rt.Examples) != 2 {
		t.Errorf("Examples = %v, want 2", rt.Examples)
	}
}

func TestParseRulesSkipsGarbage(t *testing.T) {
	doc := "|||\n- → →\n# \n```\n- -\n"
	rt, err := ParseRules(doc, CaseVocative)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if len(rt.Patterns) != 0 || len(rt.Examples) != 0 || len(rt.SpecialCases) != 0 {
		t.Errorf("garbage produced rules: %+v", rt)
	}
}

func TestParseRuleDocumentReadError(t *testing.T) {
	if _, err := ParseRuleDocument(iotest.ErrReader(iotest.ErrTimeout), CaseVocative); err == nil {
		t.Error("ParseRuleDocument: want error from failing reader")
	}
}

func TestSuffixPair(t *testing.T) {
	tests := []struct {
		nom, form string
		from, to  string
		ok        bool
	}{
		{"Γιώργος", "Γιώργο", "ος", "γο", true},
		{"Στέλιος", "Στέλιο", "ος", "ιο", true},
		{"Α", "Β", "", "", false},
		{"Γιώργος.", "Γιώργο.", "", "", false},
	}
	for _, tt := range tests {
		from, to, ok := suffixPair(tt.nom, tt.form)
		if ok != tt.ok || (ok && (from != tt.from || to != tt.to)) {
			t.Errorf("suffixPair(%q, %q) = %q, %q, %v; want %q, %q, %v",
				tt.nom, tt.form, from, to, ok, tt.from, tt.to, tt.ok)
		}
	}
}
