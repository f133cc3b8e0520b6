package greeknames

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Γιώργος", "γιωργος"},
		{"ΠΑΠΑΔΟΠΟΥΛΟΣ", "παπαδοπουλος"},
		{"ΓΙΑΝΝΗΣ ΞΙΝΟΣ", "γιαννης ξινος"},
		{"Ϊωάννα", "ιωαννα"},
		{"α\u0301λφα", "αλφα"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripAccents(t *testing.T) {
	if got, want := StripAccents("Άννα Ελένη Καΐρη"), "Αννα Ελενη Καιρη"; got != want {
		t.Errorf("StripAccents = %q, want %q", got, want)
	}
}

func TestNormalizeTonotics(t *testing.T) {
	in := "Ν\u1f77κος"
	if got, want := NormalizeTonotics(in), "Ν\u03afκος"; got != want {
		t.Errorf("NormalizeTonotics(%q) = %q, want %q", in, got, want)
	}
}

func TestHandleDiacritics(t *testing.T) {
	in := "Μαρι\u0301α"
	if got, want := HandleDiacritics(in), "Μαρ\u03afα"; got != want {
		t.Errorf("HandleDiacritics(%q) = %q, want %q", in, got, want)
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got, want := CollapseSpaces("  Γιώργος \t  Παπαδόπουλος  "), "Γιώργος Παπαδόπουλος"; got != want {
		t.Errorf("CollapseSpaces = %q, want %q", got, want)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"γιώργος", "Γιώργος"},
		{"ΠΑΠΑΔΟΠΟΥΛΟΣ", "Παπαδοπουλος"},
		{"άννα", "Άννα"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsUpperInitial(t *testing.T) {
	for _, w := range []string{"Άννα", "Γιώργος", "ΈΛΕΝΑ"} {
		if !IsUpperInitial(w) {
			t.Errorf("IsUpperInitial(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"άννα", "", "-Νίκος"} {
		if IsUpperInitial(w) {
			t.Errorf("IsUpperInitial(%q) = true, want false", w)
		}
	}
}

func TestApplyCase(t *testing.T) {
	tests := []struct {
		original, replacement, want string
	}{
		{"ΠΑΥΛΟΣ", "παύλο", "ΠΑΎΛΟ"},
		{"Παύλος", "παύλο", "Παύλο"},
		{"παύλος", "παύλο", "παύλο"},
	}
	for _, tt := range tests {
		if got := applyCase(tt.original, tt.replacement); got != tt.want {
			t.Errorf("applyCase(%q, %q) = %q, want %q", tt.original, tt.replacement, got, tt.want)
		}
	}
}

func TestReplaceEnding(t *testing.T) {
	tests := []struct {
		word   string
		n      int
		ending string
		want   string
	}{
		{"Νικολός", 2, "ου", "Νικολού"},
		{"Νικολός", 2, "ε", "Νικολέ"},
		{"Σατανάς", 2, "α", "Σατανά"},
		{"Γιώργος", 2, "ο", "Γιώργο"},
		{"ΝΙΚΟΛΌΣ", 2, "ου", "ΝΙΚΟΛΟΎ"},
	}
	for _, tt := range tests {
		if got := replaceEnding(tt.word, tt.n, tt.ending); got != tt.want {
			t.Errorf("replaceEnding(%q, %d, %q) = %q, want %q", tt.word, tt.n, tt.ending, got, tt.want)
		}
	}
}
