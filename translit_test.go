package greeknames

import (
	"errors"
	"testing"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in   string
		mode TranslitMode
		want string
	}{
		{"giorgos papadopoulos", GreeklishToGreek, "γιοργος παπαδοπουλος"},
		{"Christos", GreeklishToGreek, "χριστος"},
		{"Thanasis Psaras", GreeklishToGreek, "θανασις ψαρας"},
		{"Γιώργος", GreekToLatin, "Giorgos"},
		{"Χρήστος Ψαράς", GreekToLatin, "Christos Psaras"},
		{"Χρήστος", GreekToGreeklish, "Xristos"},
		{"Ξένια", GreekToGreeklish, "Ksenia"},
		{"Γιώργος", TranslitNone, "Γιώργος"},
	}
	for _, tt := range tests {
		if got := Transliterate(tt.in, tt.mode); got != tt.want {
			t.Errorf("Transliterate(%q, %v) = %q, want %q", tt.in, tt.mode, got, tt.want)
		}
	}
}

func TestParseTranslitMode(t *testing.T) {
	tests := []struct {
		in   string
		want TranslitMode
	}{
		{"", TranslitNone},
		{"none", TranslitNone},
		{"greeklishToGreek", GreeklishToGreek},
		{"greek-to-latin", GreekToLatin},
		{"GREEK_TO_GREEKLISH", GreekToGreeklish},
	}
	for _, tt := range tests {
		got, err := ParseTranslitMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseTranslitMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseTranslitMode("cyrillic"); !errors.Is(err, ErrUnknownTranslitMode) {
		t.Errorf("ParseTranslitMode(cyrillic) error = %v, want ErrUnknownTranslitMode", err)
	}
}

func TestTranslitModeRoundTrip(t *testing.T) {
	for _, m := range []TranslitMode{TranslitNone, GreeklishToGreek, GreekToLatin, GreekToGreeklish} {
		got, err := ParseTranslitMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseTranslitMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
}
