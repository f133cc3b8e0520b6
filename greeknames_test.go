package greeknames

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseCase(t *testing.T) {
	tests := []struct {
		in   string
		want Case
	}{
		{"vocative", CaseVocative},
		{" Accusative ", CaseAccusative},
		{"κλητική", CaseVocative},
		{"ΓΕΝΙΚΗ", CaseGenitive},
		{"αιτιατική", CaseAccusative},
		{"", CaseNominative},
		{"none", CaseNominative},
	}
	for _, tt := range tests {
		got, err := ParseCase(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseCase(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseCase("dative"); !errors.Is(err, ErrUnknownCase) {
		t.Errorf("ParseCase(dative) error = %v, want ErrUnknownCase", err)
	}
}

func TestOptionsJSON(t *testing.T) {
	opts := DefaultOptions()
	in := `{"convert_to_case":"vocative","transliterate":"greeklishToGreek","strict_mode":true}`
	if err := json.Unmarshal([]byte(in), &opts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if opts.ConvertToCase != CaseVocative || opts.Transliterate != GreeklishToGreek || !opts.StrictMode {
		t.Errorf("opts = %+v", opts)
	}
	if !opts.HandleParticles {
		t.Error("defaults lost on unmarshal")
	}

	if err := json.Unmarshal([]byte(`{"convert_to_case":"dative"}`), &opts); err == nil {
		t.Error("Unmarshal accepted an unknown case")
	}

	b, err := json.Marshal(DefaultOptions())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m["convert_to_case"] != "nominative" || m["transliterate"] != "none" {
		t.Errorf("encoded options = %v", m)
	}
}

func TestPackageFunctions(t *testing.T) {
	name := "Κωνσταντίνος Παπαδόπουλος"
	opts := CaseOptions{HandleParticles: true}
	tests := []struct {
		fn   func(string, CaseOptions) string
		cs   Case
		want string
	}{
		{Genitive, CaseGenitive, "Κωνσταντίνου Παπαδόπουλου"},
		{Vocative, CaseVocative, "Κωνσταντίνε Παπαδόπουλο"},
		{Accusative, CaseAccusative, "Κωνσταντίνο Παπαδόπουλο"},
	}
	for _, tt := range tests {
		if got := tt.fn(name, opts); got != tt.want {
			t.Errorf("%v(%q) = %q, want %q", tt.cs, name, got, tt.want)
		}
		if got := Inflect(name, tt.cs, opts); got != tt.want {
			t.Errorf("Inflect(%q, %v) = %q, want %q", name, tt.cs, got, tt.want)
		}
	}
}

func TestResultOutput(t *testing.T) {
	r := &Result{Corrected: "Γιώργος", Vocative: "Γιώργο", requested: CaseVocative}
	if r.Output() != "Γιώργο" {
		t.Errorf("Output() = %q, want vocative", r.Output())
	}
	r.requested = CaseAccusative
	if r.Output() != "Γιώργος" {
		t.Errorf("Output() = %q, want corrected name when accusative is empty", r.Output())
	}
}
