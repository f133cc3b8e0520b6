package greeknames

import "testing"

func TestIsParticle(t *testing.T) {
	for _, w := range []string{"του", "Του", "ΚΑΙ", "ή", "εκ"} {
		if !IsParticle(w) {
			t.Errorf("IsParticle(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"Γιώργος", "", "τους"} {
		if IsParticle(w) {
			t.Errorf("IsParticle(%q) = true, want false", w)
		}
	}
}

func TestIsTitle(t *testing.T) {
	for _, w := range []string{"Δρ", "δρ.", "ΚΑΘΗΓΗΤΗΣ", "Κος"} {
		if !IsTitle(w) {
			t.Errorf("IsTitle(%q) = false, want true", w)
		}
	}
	if IsTitle("Γιώργος") {
		t.Error("IsTitle(Γιώργος) = true")
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		in        string
		title     string
		remaining string
	}{
		{"δρ. Γιώργος Παπαδόπουλος", "Δρ", "Γιώργος Παπαδόπουλος"},
		{"Καθηγητής Νίκος", "Καθηγητής", "Νίκος"},
		{"Γιώργος Παπαδόπουλος", "", "Γιώργος Παπαδόπουλος"},
		{"Δρ", "Δρ", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		title, rest := ExtractTitle(tt.in)
		if title != tt.title || rest != tt.remaining {
			t.Errorf("ExtractTitle(%q) = %q, %q; want %q, %q", tt.in, title, rest, tt.title, tt.remaining)
		}
	}
}

func TestSuggestCorrection(t *testing.T) {
	got, ok := SuggestCorrection("Γιοργος Παπαδοπουλος")
	if !ok || got != "γιώργος παπαδοπουλος" {
		t.Errorf("SuggestCorrection = %q, %v; want %q, true", got, ok, "γιώργος παπαδοπουλος")
	}
	if got, ok := SuggestCorrection("Γιώργος"); ok {
		t.Errorf("SuggestCorrection(Γιώργος) = %q, want no correction", got)
	}
}

func TestConvertKatharevousa(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Γεώργιον", "Γεώργιο"},
		{"Ευγένιον Παπαδόπουλον", "Ευγένιο Παπαδόπουλον"},
		{"ΓΕΩΡΓΙΟΝ", "ΓΕΩΡΓΙΟ"},
		{"Γιώργος", "Γιώργος"},
	}
	for _, tt := range tests {
		if got := ConvertKatharevousa(tt.in); got != tt.want {
			t.Errorf("ConvertKatharevousa(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectDiminutives(t *testing.T) {
	got := DetectDiminutives("Γιωργάκης Μαρίτσα Παπαδόπουλος")
	want := []Diminutive{
		{Word: "Γιωργάκης", PossibleBase: "Γιωργας/ης", Suffix: "άκης"},
		{Word: "Μαρίτσα", PossibleBase: "Μαρα", Suffix: "ίτσα"},
	}
	if len(got) != len(want) {
		t.Fatalf("DetectDiminutives = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DetectDiminutives[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if d := DetectDiminutives("Γιώργος"); len(d) != 0 {
		t.Errorf("DetectDiminutives(Γιώργος) = %v, want none", d)
	}
}
